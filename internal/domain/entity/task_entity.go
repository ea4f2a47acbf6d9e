package entity

import "github.com/google/uuid"

// Task belongs to a project. CompletionAt and Deadline are Unix milliseconds,
// zero when unset.
type Task struct {
	ID           uuid.UUID
	CreatedAt    int64
	CompletionAt int64
	Deadline     int64
	CreatedBy    uuid.UUID
	AssignedTo   uuid.UUID
	Title        string
	Description  string
	Priority     Priority
	Status       Status
	SubTasks     []SubTask
	Comments     []Comment
}

func (t *Task) EntityID() uuid.UUID { return t.ID }

type SubTask struct {
	ID         uuid.UUID
	CreatedAt  int64
	TaskID     uuid.UUID
	AssignedTo uuid.UUID
	Content    string
	Comments   []Comment
}

func (s *SubTask) EntityID() uuid.UUID { return s.ID }

type Comment struct {
	ID        uuid.UUID
	CreatedAt int64
	TaskID    uuid.UUID
	UserID    uuid.UUID
	Content   string
}

func (c *Comment) EntityID() uuid.UUID { return c.ID }
