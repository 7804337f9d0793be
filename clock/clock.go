package clock

import (
	"sort"
	"sync"
	"time"
)

type Timer interface {
	// Stop prevents the timer from firing. It reports whether the call stopped
	// the timer.
	Stop() bool
}

// Clock is the only time source the scheduler trusts. Now is in seconds and
// never decreases.
type Clock interface {
	Now() float64
	AfterFunc(d time.Duration, f func()) Timer
}

// Seconds converts a span in seconds to a time.Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Wall reads the process's monotonic clock.
type Wall struct {
	start time.Time
}

func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

func (w *Wall) Now() float64 {
	return time.Since(w.start).Seconds()
}

func (w *Wall) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, f)
}

// Fake is a manually advanced clock. Timers fire from Advance, in deadline
// order, on the caller's goroutine.
type Fake struct {
	mu     sync.Mutex
	now    float64
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock *Fake
	at    float64
	seq   int
	f     func()
}

func NewFake(start float64) *Fake {
	return &Fake{now: start}
}

func (c *Fake) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fake) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, at: c.now + d.Seconds(), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending is the number of timers that have not fired or been stopped.
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Fake) Advance(d time.Duration) {
	c.AdvanceTo(c.Now() + d.Seconds())
}

// AdvanceTo moves the clock to t, firing every timer due on the way. Timers
// armed by a firing callback fire too if they fall due before t.
func (c *Fake) AdvanceTo(t float64) {
	for {
		c.mu.Lock()
		next := c.popDue(t)
		if next == nil {
			if t > c.now {
				c.now = t
			}
			c.mu.Unlock()
			return
		}
		if next.at > c.now {
			c.now = next.at
		}
		c.mu.Unlock()
		next.f()
	}
}

func (c *Fake) popDue(t float64) *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	first := c.timers[0]
	if first.at > t {
		return nil
	}
	c.timers = c.timers[1:]
	return first
}

func (t *fakeTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
