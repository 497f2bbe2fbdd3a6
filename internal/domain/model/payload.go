package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ConfigPayload is the flat key/value body of an auth config update.
type ConfigPayload map[string]string

// Template names accepted by the auth config endpoint, in push order.
var TemplateNames = []string{"confirmation", "invite", "magic_link", "recovery", "email_change"}

// SubjectKey returns the provider key holding the subject of the named template.
func SubjectKey(name string) string {
	return fmt.Sprintf("mailer_subjects_%s", name)
}

// ContentKey returns the provider key holding the HTML body of the named template.
func ContentKey(name string) string {
	return fmt.Sprintf("mailer_templates_%s_content", name)
}

// PushResult is the outcome of one config update request.
type PushResult struct {
	StatusCode   int
	Body         []byte
	PayloadBytes int64
}

// Succeeded reports whether the endpoint accepted the update.
func (r *PushResult) Succeeded() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Encode serializes the payload as the JSON request body, leaving HTML unescaped.
func (p ConfigPayload) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
