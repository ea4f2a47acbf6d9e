package entity

import "github.com/google/uuid"

// Entity is any record with a unique identifier assigned at creation.
// Creation timestamps are Unix wall-clock milliseconds.
type Entity interface {
	EntityID() uuid.UUID
}

// Priority of a task. OnHold is a legacy value still present in stored data.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityOnHold
)

// Status of a task.
type Status int

const (
	StatusCompleted Status = iota
	StatusInProgress
	StatusOnHold
	StatusCanceled
)

// PriorityFromCode maps a wire-level numeric code to a Priority.
// Unknown codes map to High.
func PriorityFromCode(code int) Priority {
	switch code {
	case 0:
		return PriorityLow
	case 1:
		return PriorityMedium
	case 2:
		return PriorityHigh
	default:
		return PriorityHigh
	}
}

// StatusFromCode maps a wire-level numeric code to a Status. Codes 0 and 2
// both map to InProgress; unknown codes map to OnHold.
func StatusFromCode(code int) Status {
	switch code {
	case 0:
		return StatusInProgress
	case 1:
		return StatusCanceled
	case 2:
		return StatusInProgress
	default:
		return StatusOnHold
	}
}
