package model

// TemplateParams are the five values substituted into the email skeleton.
type TemplateParams struct {
	Preheader string `yaml:"preheader"`
	Heading   string `yaml:"heading"`
	BodyHTML  string `yaml:"body"`
	CTAText   string `yaml:"cta_text"`
	CTAURL    string `yaml:"cta_url"`
}

// EmailTemplate describes one auth email: its provider name, display label and subject.
type EmailTemplate struct {
	Name    string         `yaml:"name"`
	Label   string         `yaml:"label"`
	Subject string         `yaml:"subject"`
	Params  TemplateParams `yaml:"params"`
}

// RenderedTemplate pairs a template with its rendered HTML document.
type RenderedTemplate struct {
	Template EmailTemplate
	HTML     string
}

// BrandMarkers are the literal fragments every rendered template must carry.
type BrandMarkers struct {
	Name    string `yaml:"name"`
	Accent  string `yaml:"accent"`
	Logo    string `yaml:"logo"`
	Footer  string `yaml:"footer"`
	Outlook string `yaml:"outlook"`
}

// Catalog is the compiled-in content: brand markers plus the five templates in push order.
type Catalog struct {
	Brand     BrandMarkers    `yaml:"brand"`
	Templates []EmailTemplate `yaml:"templates"`
}

// Outline is what a rendered document shows in title, preview text and heading.
type Outline struct {
	Title     string
	Preheader string
	Heading   string
}
