package usecase

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmail/internal/domain/model"
	"authmail/internal/templates"
)

var providerKey = regexp.MustCompile(`^mailer_(subjects_[a-z_]+|templates_[a-z_]+_content)$`)

func renderedCatalog(t *testing.T) (model.Catalog, []model.RenderedTemplate) {
	t.Helper()
	catalog, err := templates.Catalog()
	require.NoError(t, err)
	return catalog, templates.RenderAll(catalog)
}

func TestAssemblePayloadHasTenProviderKeys(t *testing.T) {
	_, rendered := renderedCatalog(t)

	payload, err := AssemblePayload(rendered)
	require.NoError(t, err)
	require.Len(t, payload, 10)

	for key, value := range payload {
		assert.Regexp(t, providerKey, key)
		assert.NotEmpty(t, value, key)
	}
}

func TestAssemblePayloadKeys(t *testing.T) {
	_, rendered := renderedCatalog(t)

	payload, err := AssemblePayload(rendered)
	require.NoError(t, err)

	want := map[string]string{
		"mailer_subjects_confirmation": "Confirm Your 0nMCP Account",
		"mailer_subjects_invite":       "You're Invited to 0nMCP",
		"mailer_subjects_magic_link":   "Your 0nMCP Login Link",
		"mailer_subjects_recovery":     "Reset Your 0nMCP Password",
		"mailer_subjects_email_change": "Confirm Your New Email",
	}
	subjects := make(map[string]string)
	for key, value := range payload {
		if _, ok := want[key]; ok {
			subjects[key] = value
		}
	}
	if diff := cmp.Diff(want, subjects); diff != "" {
		t.Errorf("subjects mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, rendered[4].HTML, payload["mailer_templates_email_change_content"])
}

func TestAssemblePayloadRejectsIncomplete(t *testing.T) {
	_, rendered := renderedCatalog(t)

	emptySubject := append([]model.RenderedTemplate(nil), rendered...)
	emptySubject[0].Template.Subject = ""

	unknown := append([]model.RenderedTemplate(nil), rendered...)
	unknown = append(unknown, model.RenderedTemplate{
		Template: model.EmailTemplate{Name: "reauthentication", Subject: "s"},
		HTML:     "<html></html>",
	})

	tests := map[string][]model.RenderedTemplate{
		"missing":       rendered[:4],
		"duplicate":     append(append([]model.RenderedTemplate(nil), rendered...), rendered[1]),
		"empty subject": emptySubject,
		"unknown":       unknown,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := AssemblePayload(input)
			assert.ErrorIs(t, err, ErrIncompletePayload)
		})
	}
}
