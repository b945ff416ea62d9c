// Package sim stands in for the Pico's pins, clock and scheduler loop so
// the game can be played in a terminal.
package sim

import "time"

// Clock is a wrapping millisecond counter, like a microcontroller's
type Clock struct {
	start  time.Time
	offset uint32
	now    func() time.Time
}

// NewClock starts a counter at offset. A large offset makes the counter
// wrap shortly after start.
func NewClock(offset uint32) *Clock {
	return newClock(offset, time.Now)
}

func newClock(offset uint32, now func() time.Time) *Clock {
	return &Clock{start: now(), offset: offset, now: now}
}

func (c *Clock) Millis() uint32 {
	return c.offset + uint32(c.now().Sub(c.start).Milliseconds())
}

// Key is a button driven by terminal key presses. Terminals report no
// key release, so a press reads as held for the hold window.
type Key struct {
	hold      time.Duration
	pressedAt time.Time
	pressed   bool
	now       func() time.Time
}

func NewKey(hold time.Duration, now func() time.Time) *Key {
	return &Key{hold: hold, now: now}
}

// Press records a key press that happened at when
func (k *Key) Press(when time.Time) {
	k.pressedAt = when
	k.pressed = true
}

// Get reads the key like a pin: high while the last press is in its window
func (k *Key) Get() bool {
	return k.pressed && k.now().Sub(k.pressedAt) < k.hold
}

// Lamp is an LED drawn on screen
type Lamp struct {
	on bool
}

func (l *Lamp) Set(on bool) {
	l.on = on
}

func (l *Lamp) On() bool {
	return l.on
}
