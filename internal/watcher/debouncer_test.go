package watcher

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "only the last trigger fires")
}

func TestDebouncer_CancelDropsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncer_ZeroDurationUsesDefault(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.Duration())
}
