package event

import (
	"github.com/google/uuid"

	"github.com/vespasoft/taskhub/internal/domain/entity"
)

// Event is an immutable record of a fact that already happened. Events carry
// denormalized snapshot data so subscribers never re-query application state.
type Event interface {
	Name() string
}

type UserCreated struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

func (UserCreated) Name() string { return "user.created" }

type UserPasswordUpdated struct {
	UserID   uuid.UUID
	Username string
	Email    string
}

func (UserPasswordUpdated) Name() string { return "user.password_updated" }

type ProjectCreated struct {
	CreatedBy entity.User
	Project   entity.Project
}

func (ProjectCreated) Name() string { return "project.created" }
