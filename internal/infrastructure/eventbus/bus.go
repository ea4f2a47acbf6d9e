package eventbus

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/domain/event"
)

// DefaultCapacity is the number of pending events the bus buffers before
// Publish starts blocking.
const DefaultCapacity = 10

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("eventbus: closed")

// Handler processes one event. Handlers run sequentially on the subscriber
// goroutine; a slow handler delays every subsequent delivery.
type Handler func(event.Event)

// Bus is a bounded ordered channel carrying domain events from services to
// one consumer loop. Publish blocks when the buffer is full, creating
// backpressure from slow subscribers to fast producers.
//
// Every bus instance must have at least one running Subscribe loop; without
// one, publishers can block indefinitely once the buffer fills.
type Bus struct {
	ch     chan event.Event
	mu     sync.RWMutex
	closed bool
	logger *logrus.Logger
}

func New(capacity int, logger *logrus.Logger) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{ch: make(chan event.Event, capacity), logger: logger}
}

// Publish enqueues the event, blocking while the buffer is full. The wait is
// aborted when ctx is done. Publishing on a closed bus returns ErrClosed.
func (b *Bus) Publish(ctx context.Context, e event.Event) error {
	// The read lock is held across the send so Close cannot close the
	// channel out from under an in-flight Publish.
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	select {
	case b.ch <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe dequeues events in FIFO order and invokes handler for each, one
// event fully handled before the next is taken. It returns once the bus is
// closed and every pending event has been drained.
func (b *Bus) Subscribe(handler Handler) {
	for e := range b.ch {
		handler(e)
	}
	if b.logger != nil {
		b.logger.Debug("event bus subscriber drained")
	}
}

// Close moves the bus to its terminal state: no further sends are permitted,
// pending events are still delivered to the subscriber. Close waits for
// in-flight Publish calls to finish, which requires an active subscriber.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}
