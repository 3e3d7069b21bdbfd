package mapview

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when posting to a stopped loop
var ErrClosed = errors.New("event loop closed")

// Loop runs posted tasks one at a time on a single goroutine, in posting order.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewLoop starts a loop
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func()),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-l.quit:
			return
		}
	}
}

// Post queues fn without waiting for it to run. It reports false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	select {
	case l.tasks <- fn:
		return true
	case <-l.quit:
		return false
	}
}

// Do runs fn on the loop and waits for it to finish. If ctx ends before fn
// is queued, fn never runs and ctx.Err() is returned. Once queued, fn always
// runs to completion and Do waits for it regardless of ctx.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	task := func() {
		fn()
		close(finished)
	}

	select {
	case l.tasks <- task:
	case <-l.quit:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close stops the loop after the running task, if any, completes. Queued tasks are dropped.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.quit) })
	<-l.done
}
