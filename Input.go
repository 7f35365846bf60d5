package main

import (
	"time"

	"github.com/gdamore/tcell"
)

type keyPress struct {
	at        time.Time
	repeating bool
}

// KeyTracker turns terminal key presses into held-key state. Terminals only
// report presses, never releases, and start auto-repeating a held key only
// after their repeat delay. A first press therefore counts as down for
// `repeatDelay`; once repeats arrive each one extends it by `hold`.
type KeyTracker struct {
	hold        time.Duration
	repeatDelay time.Duration
	now         time.Time
	pressed     map[string]keyPress
}

func NewKeyTracker(hold, repeatDelay time.Duration) *KeyTracker {
	return &KeyTracker{
		hold:        hold,
		repeatDelay: repeatDelay,
		pressed:     make(map[string]keyPress),
	}
}

func (k *KeyTracker) window(p keyPress) time.Duration {
	if p.repeating {
		return k.hold
	}
	return k.repeatDelay
}

func (k *KeyTracker) Press(name string, at time.Time) {
	prev, ok := k.pressed[name]
	repeating := ok && at.Sub(prev.at) < k.window(prev)
	k.pressed[name] = keyPress{at: at, repeating: repeating}
	if at.After(k.now) {
		k.now = at
	}
}

// PressEvent records a tcell key event under its key name ("Up", "Rune[w]", ...).
func (k *KeyTracker) PressEvent(ev *tcell.EventKey) {
	k.Press(ev.Name(), ev.When())
}

// Tick sets the time IsDown is evaluated at and forgets expired presses.
func (k *KeyTracker) Tick(now time.Time) {
	k.now = now
	for name, p := range k.pressed {
		if now.Sub(p.at) >= k.window(p) {
			delete(k.pressed, name)
		}
	}
}

func (k *KeyTracker) IsDown(name string) bool {
	p, ok := k.pressed[name]
	return ok && k.now.Sub(p.at) < k.window(p)
}
