package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects an embedded template rendered by the notify worker; Text
// is the plain fallback when no template is set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "admin_granted"
	Data     map[string]any `json:"data,omitempty"`
}
