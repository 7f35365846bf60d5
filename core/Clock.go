package core

import (
	"sort"
	"time"
)

// TimerEvent is a one-shot callback registered on a Clock.
type TimerEvent struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel stops the event from firing. Cancelling a fired event is a no-op.
func (e *TimerEvent) Cancel() {
	e.cancelled = true
}

func (e *TimerEvent) Fired() bool {
	return e.fired
}

// Clock is a frame-driven scheduler. It never looks at wall time: game time
// only moves when the frame loop calls Advance.
type Clock struct {
	now    time.Duration
	seq    uint64
	events []*TimerEvent
}

func NewClock() *Clock {
	return &Clock{}
}

// Now is the total game time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Add schedules fn to run once, delay after the current game time.
func (c *Clock) Add(delay time.Duration, fn func()) *TimerEvent {
	c.seq++
	e := &TimerEvent{due: c.now + delay, seq: c.seq, fn: fn}
	c.events = append(c.events, e)
	return e
}

// Advance moves game time forward and fires every event that became due,
// earliest first. Events added by a callback wait for a later Advance.
func (c *Clock) Advance(elapsed time.Duration) {
	c.now += elapsed

	var due []*TimerEvent
	rest := c.events[:0]
	for _, e := range c.events {
		switch {
		case e.cancelled:
		case e.due <= c.now:
			due = append(due, e)
		default:
			rest = append(rest, e)
		}
	}
	c.events = rest

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due == due[j].due {
			return due[i].seq < due[j].seq
		}
		return due[i].due < due[j].due
	})

	for _, e := range due {
		if e.cancelled {
			continue
		}
		e.fired = true
		e.fn()
	}
}

// Pending counts events that have neither fired nor been cancelled.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.events {
		if !e.cancelled {
			n++
		}
	}
	return n
}
