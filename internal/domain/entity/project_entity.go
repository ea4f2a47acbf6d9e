package entity

import "github.com/google/uuid"

// Project owns a list of tasks. CreatedBy is a snapshot of the creating user
// taken at creation time, not a live reference into the user store.
type Project struct {
	ID          uuid.UUID
	CreatedAt   int64
	CreatedBy   User
	Title       string
	Description string
	Members     []User
	Tasks       []Task
}

func (p *Project) EntityID() uuid.UUID { return p.ID }
