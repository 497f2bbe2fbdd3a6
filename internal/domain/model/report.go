package model

// TemplateCheck holds the marker checks for one template read back from the endpoint.
type TemplateCheck struct {
	Name    string
	Label   string
	Brand   bool
	Logo    bool
	Footer  bool
	Outlook bool
}

// Passed reports whether all four markers were found.
func (c TemplateCheck) Passed() bool {
	return c.Brand && c.Logo && c.Footer && c.Outlook
}

// Status is the summary word printed for the check.
func (c TemplateCheck) Status() string {
	if c.Passed() {
		return "PASS"
	}
	return "WARN"
}

// SubjectEcho is a subject value as returned by the endpoint.
type SubjectEcho struct {
	Name  string
	Value string
}

// VerificationReport summarizes the echoed auth config.
type VerificationReport struct {
	SiteURL  string
	Subjects []SubjectEcho
	Checks   []TemplateCheck
}

// AllPassed reports whether every template check passed.
func (r *VerificationReport) AllPassed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}
