package model

// NotificationField is one titled line in a run notification.
type NotificationField struct {
	Name   string
	Value  string
	Inline bool
}

// Notification summarizes one template push for an operator channel.
type Notification struct {
	Title       string
	Description string
	Success     bool
	Fields      []NotificationField
}
