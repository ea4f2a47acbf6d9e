package application

import (
	"context"

	"github.com/vespasoft/taskhub/internal/domain/event"
)

// Publisher delivers domain events after a successful mutation. The event bus
// satisfies this; tests substitute a recorder.
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
}
