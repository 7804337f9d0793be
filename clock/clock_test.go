package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeFiresInDeadlineOrder(t *testing.T) {
	c := NewFake(10)
	var got []string
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.InDelta(t, 10.02, c.Now(), 1e-9)

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeNowDuringCallbackIsDeadline(t *testing.T) {
	c := NewFake(0)
	var at float64
	c.AfterFunc(250*time.Millisecond, func() { at = c.Now() })
	c.Advance(time.Second)
	assert.InDelta(t, 0.25, at, 1e-9)
}

func TestFakeRearmedTimersFireWithinAdvance(t *testing.T) {
	c := NewFake(0)
	count := 0
	var tick func()
	tick = func() {
		count++
		c.AfterFunc(25*time.Millisecond, tick)
	}
	c.AfterFunc(0, tick)

	c.Advance(110 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, c.Pending())
}

func TestFakeStop(t *testing.T) {
	c := NewFake(0)
	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	c.Advance(time.Second)
	assert.False(t, fired)
}

func TestWallIsMonotonic(t *testing.T) {
	w := NewWall()
	a := w.Now()
	b := w.Now()
	assert.GreaterOrEqual(t, b, a)

	done := make(chan struct{})
	w.AfterFunc(-time.Second, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer with negative delay never fired")
	}
}
