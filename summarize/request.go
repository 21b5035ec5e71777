package summarize

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Request tracks a single summarization request. It owns the delayed status
// notification: once Finish returns the notification has either completed or
// will never run.
type Request struct {
	ID    string
	Begin time.Time

	mu    sync.Mutex
	timer *time.Timer
	done  bool
}

// NewRequest starts a request at begin.
func NewRequest(begin time.Time) *Request {
	return &Request{ID: uuid.NewString(), Begin: begin}
}

// AfterFunc schedules fn to run after d unless the request finishes first.
// A previously scheduled function is stopped. fn must not call back into r.
func (r *Request) AfterFunc(d time.Duration, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if !r.done {
			fn()
		}
	})
}

// Finish stops any pending status notification and waits for one already
// running. Finish is idempotent.
func (r *Request) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
