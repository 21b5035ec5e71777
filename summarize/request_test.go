package summarize_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/yoola/summarize"
	"github.com/stretchr/testify/assert"
)

func TestRequest(t *testing.T) {
	t.Parallel()

	t.Run("assigns unique IDs", func(t *testing.T) {
		t.Parallel()

		a := summarize.NewRequest(time.Now())
		b := summarize.NewRequest(time.Now())

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("fires when not finished", func(t *testing.T) {
		t.Parallel()

		fired := make(chan struct{})
		req := summarize.NewRequest(time.Now())
		req.AfterFunc(10*time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("status function did not fire")
		}
	})

	t.Run("does not fire after finish", func(t *testing.T) {
		t.Parallel()

		var fired atomic.Bool
		req := summarize.NewRequest(time.Now())
		req.AfterFunc(20*time.Millisecond, func() { fired.Store(true) })
		req.Finish()

		time.Sleep(60 * time.Millisecond)
		assert.False(t, fired.Load())
	})

	t.Run("ignores scheduling after finish", func(t *testing.T) {
		t.Parallel()

		var fired atomic.Bool
		req := summarize.NewRequest(time.Now())
		req.Finish()
		req.AfterFunc(time.Millisecond, func() { fired.Store(true) })
		req.Finish()

		time.Sleep(30 * time.Millisecond)
		assert.False(t, fired.Load())
	})

	t.Run("finish waits for a running notification", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		var completed atomic.Bool
		req := summarize.NewRequest(time.Now())
		req.AfterFunc(time.Millisecond, func() {
			close(started)
			time.Sleep(30 * time.Millisecond)
			completed.Store(true)
		})

		<-started
		req.Finish()

		assert.True(t, completed.Load())
	})
}
