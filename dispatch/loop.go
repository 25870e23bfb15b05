package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Loop runs callbacks one at a time on whichever goroutine drives it. Every
// turn runs to completion before the next one starts.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	logger *zap.Logger
}

func NewLoop(logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Post queues fn for a later turn. Safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunPending runs queued turns, including ones queued by those turns, until
// the queue is empty. It returns the number of turns run.
func (l *Loop) RunPending() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return n
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.turn(fn)
		n++
	}
}

// Run drives the loop until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	return l.RunUntil(ctx, func() bool { return false })
}

// RunUntil drives the loop until done reports true after a batch of turns, or
// until ctx is done.
func (l *Loop) RunUntil(ctx context.Context, done func() bool) error {
	for {
		l.RunPending()
		if done() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *Loop) turn(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Callback panicked", zap.Any("panic", r))
		}
	}()
	fn()
}
