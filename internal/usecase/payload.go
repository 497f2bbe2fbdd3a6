package usecase

import (
	"errors"
	"fmt"

	"authmail/internal/domain/model"
)

// ErrIncompletePayload means a template required by the endpoint is missing or empty.
var ErrIncompletePayload = errors.New("incomplete payload")

// AssemblePayload maps the rendered templates onto the provider's subject and content
// keys. Every name in model.TemplateNames must be present exactly once.
func AssemblePayload(rendered []model.RenderedTemplate) (model.ConfigPayload, error) {
	known := make(map[string]struct{}, len(model.TemplateNames))
	for _, name := range model.TemplateNames {
		known[name] = struct{}{}
	}

	byName := make(map[string]model.RenderedTemplate, len(rendered))
	for _, r := range rendered {
		if _, ok := known[r.Template.Name]; !ok {
			return nil, fmt.Errorf("%w: unknown template %q", ErrIncompletePayload, r.Template.Name)
		}
		if _, dup := byName[r.Template.Name]; dup {
			return nil, fmt.Errorf("%w: template %q given twice", ErrIncompletePayload, r.Template.Name)
		}
		byName[r.Template.Name] = r
	}

	payload := make(model.ConfigPayload, 2*len(model.TemplateNames))
	for _, name := range model.TemplateNames {
		r, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: template %q missing", ErrIncompletePayload, name)
		}
		if r.Template.Subject == "" || r.HTML == "" {
			return nil, fmt.Errorf("%w: template %q has an empty subject or body", ErrIncompletePayload, name)
		}
		payload[model.SubjectKey(name)] = r.Template.Subject
		payload[model.ContentKey(name)] = r.HTML
	}

	return payload, nil
}
