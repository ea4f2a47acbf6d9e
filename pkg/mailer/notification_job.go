package mailer

// Template names for notification jobs, one per domain event kind.
const (
	TemplateUserCreated     = "user_created"
	TemplatePasswordUpdated = "password_updated"
	TemplateProjectCreated  = "project_created"
)

// NotificationJob is the JSON payload put on the RabbitMQ queue for sending a
// notification email. Template selects the message body; Data carries the
// denormalized event snapshot so the worker never queries application state.
type NotificationJob struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}
