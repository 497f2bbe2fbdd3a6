// Package templates renders the branded auth emails and holds their compiled-in content.
package templates

import (
	_ "embed"

	"github.com/valyala/fasttemplate"

	"authmail/internal/domain/model"
)

//go:embed layout.html
var layoutHTML string

// Placeholders in layout.html use [[name]] so the provider's {{ .ConfirmationURL }}
// tokens pass through untouched.
var layout = fasttemplate.New(layoutHTML, "[[", "]]")

// Render substitutes the params into the email skeleton. Values are inserted verbatim.
func Render(p model.TemplateParams) string {
	return layout.ExecuteString(map[string]any{
		"preheader": p.Preheader,
		"heading":   p.Heading,
		"body":      p.BodyHTML,
		"cta_text":  p.CTAText,
		"cta_url":   p.CTAURL,
	})
}

// RenderAll renders every template of the catalog in order.
func RenderAll(c model.Catalog) []model.RenderedTemplate {
	rendered := make([]model.RenderedTemplate, 0, len(c.Templates))
	for _, t := range c.Templates {
		rendered = append(rendered, model.RenderedTemplate{
			Template: t,
			HTML:     Render(t.Params),
		})
	}
	return rendered
}
