package templates

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"authmail/internal/domain/model"
)

//go:embed content.yaml
var contentYAML []byte

// Catalog decodes the embedded brand markers and the five auth emails.
func Catalog() (model.Catalog, error) {
	return ParseCatalog(contentYAML)
}

// ParseCatalog decodes a content document and checks every template is complete.
func ParseCatalog(data []byte) (model.Catalog, error) {
	var c model.Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return model.Catalog{}, fmt.Errorf("decode content: %w", err)
	}

	b := c.Brand
	if b.Name == "" || b.Accent == "" || b.Logo == "" || b.Footer == "" || b.Outlook == "" {
		return model.Catalog{}, fmt.Errorf("content: brand name, accent, logo, footer and outlook markers are required")
	}

	seen := make(map[string]struct{}, len(c.Templates))
	for i, t := range c.Templates {
		if t.Name == "" {
			return model.Catalog{}, fmt.Errorf("content: template %d has no name", i)
		}
		if _, dup := seen[t.Name]; dup {
			return model.Catalog{}, fmt.Errorf("content: duplicate template %q", t.Name)
		}
		seen[t.Name] = struct{}{}

		if t.Subject == "" || t.Params.Heading == "" || t.Params.CTAURL == "" {
			return model.Catalog{}, fmt.Errorf("content: template %q is incomplete", t.Name)
		}
		if t.Label == "" {
			c.Templates[i].Label = t.Name
		}
	}

	return c, nil
}
