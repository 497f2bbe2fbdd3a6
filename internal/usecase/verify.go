package usecase

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"authmail/internal/domain/model"
)

// ErrResponseNotJSON means a successful response carried a body that is not a JSON object.
var ErrResponseNotJSON = errors.New("response body is not a JSON object")

// Verify reads the echoed auth config and checks each template for the brand markers.
// It is a substring check only.
func Verify(body []byte, catalog model.Catalog) (*model.VerificationReport, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrResponseNotJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, ErrResponseNotJSON
	}

	report := &model.VerificationReport{
		SiteURL: doc.Get("site_url").String(),
	}

	for _, t := range catalog.Templates {
		report.Subjects = append(report.Subjects, model.SubjectEcho{
			Name:  t.Name,
			Value: doc.Get(gjson.Escape(model.SubjectKey(t.Name))).String(),
		})
	}

	for _, t := range catalog.Templates {
		content := doc.Get(gjson.Escape(model.ContentKey(t.Name))).String()
		report.Checks = append(report.Checks, checkMarkers(t, content, catalog.Brand))
	}

	return report, nil
}

func checkMarkers(t model.EmailTemplate, content string, brand model.BrandMarkers) model.TemplateCheck {
	return model.TemplateCheck{
		Name:    t.Name,
		Label:   t.Label,
		Brand:   strings.Contains(content, brand.Name) && strings.Contains(content, brand.Accent),
		Logo:    strings.Contains(content, brand.Logo),
		Footer:  strings.Contains(content, brand.Footer),
		Outlook: strings.Contains(content, brand.Outlook),
	}
}
