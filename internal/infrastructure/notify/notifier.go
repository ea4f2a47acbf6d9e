package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/event"
	"github.com/vespasoft/taskhub/pkg/helpers"
	"github.com/vespasoft/taskhub/pkg/mailer"
)

// Notifier is the event bus subscriber. Every event is logged; when a
// RabbitMQ publisher is configured the event is also forwarded to the
// notifications queue as a mailer.NotificationJob for the worker to send.
type Notifier struct {
	Rabbit *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func New(rabbit *helpers.RabbitPublisher, logger *logrus.Logger) *Notifier {
	return &Notifier{Rabbit: rabbit, Logger: logger}
}

// Handle processes one event. It returns promptly so it never stalls the bus
// drain loop for long; a failed queue publish is logged and dropped.
func (n *Notifier) Handle(e event.Event) {
	job, ok := jobFor(e)
	if !ok {
		n.Logger.WithField("event", e.Name()).Warn("no notification mapping for event")
		return
	}
	n.Logger.WithFields(logrus.Fields{
		"event": e.Name(),
		"to":    job.To,
	}).Info("domain event received")

	if n.Rabbit == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.Rabbit.PublishJSON(ctx, job); err != nil {
		n.Logger.WithError(err).WithField("event", e.Name()).Warn("queueing notification failed")
	}
}

func jobFor(e event.Event) (mailer.NotificationJob, bool) {
	switch ev := e.(type) {
	case event.UserCreated:
		return mailer.NotificationJob{
			To:       ev.Email,
			Template: mailer.TemplateUserCreated,
			Data: map[string]any{
				"UserID":   ev.UserID.String(),
				"Username": ev.Username,
			},
		}, true
	case event.UserPasswordUpdated:
		return mailer.NotificationJob{
			To:       ev.Email,
			Template: mailer.TemplatePasswordUpdated,
			Data: map[string]any{
				"UserID":   ev.UserID.String(),
				"Username": ev.Username,
			},
		}, true
	case event.ProjectCreated:
		return mailer.NotificationJob{
			To:       ev.CreatedBy.Email,
			Template: mailer.TemplateProjectCreated,
			Data: map[string]any{
				"Username":  ev.CreatedBy.Username,
				"ProjectID": ev.Project.ID.String(),
				"Title":     ev.Project.Title,
			},
		}, true
	default:
		return mailer.NotificationJob{}, false
	}
}
