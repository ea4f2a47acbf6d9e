package notify

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/internal/domain/event"
	"github.com/vespasoft/taskhub/pkg/mailer"
)

func TestJobForUserCreated(t *testing.T) {
	id := uuid.New()
	job, ok := jobFor(event.UserCreated{UserID: id, Username: "vespasoft", Email: "vespasoft@gmail.com"})
	require.True(t, ok)
	require.Equal(t, "vespasoft@gmail.com", job.To)
	require.Equal(t, mailer.TemplateUserCreated, job.Template)
	require.Equal(t, id.String(), job.Data["UserID"])
	require.Equal(t, "vespasoft", job.Data["Username"])
}

func TestJobForPasswordUpdated(t *testing.T) {
	job, ok := jobFor(event.UserPasswordUpdated{UserID: uuid.New(), Username: "vespasoft", Email: "vespasoft@gmail.com"})
	require.True(t, ok)
	require.Equal(t, mailer.TemplatePasswordUpdated, job.Template)
	require.Equal(t, "vespasoft@gmail.com", job.To)
}

func TestJobForProjectCreated(t *testing.T) {
	creator := entity.User{ID: uuid.New(), Username: "vespasoft", Email: "vespasoft@gmail.com"}
	project := entity.Project{ID: uuid.New(), Title: "Project 000001", CreatedBy: creator}
	job, ok := jobFor(event.ProjectCreated{CreatedBy: creator, Project: project})
	require.True(t, ok)
	require.Equal(t, mailer.TemplateProjectCreated, job.Template)
	require.Equal(t, "vespasoft@gmail.com", job.To)
	require.Equal(t, project.ID.String(), job.Data["ProjectID"])
	require.Equal(t, "Project 000001", job.Data["Title"])
}

type unknownEvent struct{}

func (unknownEvent) Name() string { return "unknown" }

func TestHandleUnknownEventWithoutQueue(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	n := New(nil, logger)

	// neither the unmapped event nor the missing publisher may panic
	n.Handle(unknownEvent{})
	n.Handle(event.UserCreated{UserID: uuid.New(), Username: "vespasoft", Email: "vespasoft@gmail.com"})
}
