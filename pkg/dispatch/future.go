package dispatch

import (
	"context"
	"sync"
)

// Outcome is the final result of one Send: a decoded body on success, or a
// typed *Error. Exactly one of the two fields is set.
type Outcome struct {
	Body map[string]any
	Err  error
}

// Future is a promise-like handle for one in-flight call. It is resolved
// exactly once by the dispatcher; waiters observe the resolution through the
// closed channel.
type Future struct {
	ch   chan struct{}
	out  Outcome
	once sync.Once
}

func newFuture() *Future {
	return &Future{ch: make(chan struct{})}
}

// resolve completes the future. Duplicate calls are ignored.
func (f *Future) resolve(body map[string]any, err error) {
	f.once.Do(func() {
		f.out = Outcome{Body: body, Err: err}
		close(f.ch)
	})
}

// Done returns a channel closed once the outcome is available, for
// select-based waiting.
func (f *Future) Done() <-chan struct{} {
	return f.ch
}

// Wait blocks until the call completes or ctx is cancelled. Abandoning a
// Wait does not abort the in-flight request.
func (f *Future) Wait(ctx context.Context) (map[string]any, error) {
	select {
	case <-f.ch:
		return f.out.Body, f.out.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Outcome reports the result without blocking. The second return is false
// while the call is still in flight.
func (f *Future) Outcome() (Outcome, bool) {
	select {
	case <-f.ch:
		return f.out, true
	default:
		return Outcome{}, false
	}
}
