// Package otp implements the resend-OTP countdown: a cancellable
// ticking timer that reports remaining seconds and fires a completion
// callback when the window closes.
package otp

import (
	"sync"
	"time"
)

// Countdown runs a once-per-interval tick until the window elapses or
// Stop is called. Callbacks run on the countdown's own goroutine.
type Countdown struct {
	mu       sync.Mutex
	stopCh   chan struct{}
	stopped  bool
	interval time.Duration
}

// New builds a countdown ticking once per second.
func New() *Countdown {
	return NewWithInterval(time.Second)
}

// NewWithInterval builds a countdown with a custom tick interval;
// tests use a short one.
func NewWithInterval(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{interval: interval}
}

// Start begins a countdown of the given number of ticks. onTick
// receives the remaining count after each tick; onDone fires once when
// the count reaches zero. Either callback may be nil. Starting a
// running countdown resets the window, which is how resend works.
func (c *Countdown) Start(seconds int, onTick func(remaining int), onDone func()) {
	c.mu.Lock()
	if c.stopCh != nil && !c.stopped {
		close(c.stopCh)
	}
	stopCh := make(chan struct{})
	c.stopCh = stopCh
	c.stopped = false
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		remaining := seconds
		for remaining > 0 {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				remaining--
				if onTick != nil {
					onTick(remaining)
				}
			}
		}
		if onDone != nil {
			onDone()
		}
	}()
}

// Stop cancels the countdown. It is idempotent and safe to call after
// the countdown has finished; no callback fires afterwards.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopCh != nil && !c.stopped {
		close(c.stopCh)
		c.stopped = true
	}
}
