package dispatch

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Mode selects the execution strategy a dispatcher uses for its whole
// lifetime.
type Mode int

const (
	// ModeBlocking performs the round trip on the calling goroutine.
	ModeBlocking Mode = iota
	// ModeSuspending performs the round trip in the background and hands
	// the caller an unresolved future.
	ModeSuspending
)

func (m Mode) String() string {
	if m == ModeSuspending {
		return "suspending"
	}
	return "blocking"
}

// DefaultTimeout bounds how long a single call waits for a response.
const DefaultTimeout = 15 * time.Second

// Session owns the transport client shared by all in-flight calls of one
// dispatcher. A session is bound to the execution mode it was created for
// and must never serve a dispatcher of the other mode. Safe for concurrent
// use by multiple calls.
type Session struct {
	client *resty.Client
	mode   Mode
	closed sync.Once
}

// NewSession builds a transport session for the given mode. A non-positive
// timeout falls back to DefaultTimeout.
func NewSession(mode Mode, timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New()
	c.SetTimeout(timeout)
	// Some endpoints accept a JSON body on GET; resty drops it unless told
	// otherwise.
	c.SetAllowGetMethodPayload(true)
	return &Session{client: c, mode: mode}
}

// Mode reports the execution mode the session was created for.
func (s *Session) Mode() Mode { return s.mode }

// Close releases pooled connections. Idempotent, and safe to call before
// any request was sent.
func (s *Session) Close() {
	s.closed.Do(func() {
		s.client.GetClient().CloseIdleConnections()
	})
}
