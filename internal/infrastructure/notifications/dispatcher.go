package notifications

import (
	"context"
	"errors"
	"sync"

	"supplement_tracker/internal/domain/entities"
	"supplement_tracker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQueueFull        = errors.New("notification queue is full")
	ErrDispatcherClosed = errors.New("notification dispatcher is closed")
)

// Sink delivers one notification.
type Sink interface {
	Deliver(ctx context.Context, n entities.Notification) error
}

// Dispatcher queues notifications and delivers them on a single background worker so
// that request handlers never wait on delivery. When the queue is full the notification
// is dropped and the caller gets ErrQueueFull.
type Dispatcher struct {
	sink  Sink
	queue chan entities.Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

func NewDispatcher(sink Sink, queueSize int) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan entities.Notification, queueSize),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Notify(_ context.Context, n entities.Notification) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- n:
		return nil
	default:
		zap.L().Warn("[notification][dispatcher] queue full, dropping",
			zap.String("kind", string(n.Kind)),
			zap.String("claim_id", n.ClaimID),
		)
		return ErrQueueFull
	}
}

// Close stops accepting notifications and waits until the queued ones were delivered
// or ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		if err := d.sink.Deliver(context.Background(), n); err != nil {
			zap.L().Warn("[notification][dispatcher] delivery failed",
				zap.String("kind", string(n.Kind)),
				zap.String("claim_id", n.ClaimID),
				zap.Error(err),
			)
		}
	}
}
