/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @version     0.1.0
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package game

import "time"

/*
 * CONSTANTS
 */
const (
	// Get-ready ramp: each toggle waits 8ms longer than the last,
	// until the wait reaches 224ms
	RampStepMS    uint32 = 8
	RampCeilingMS uint32 = 224

	// Both LEDs flash for this long before play starts
	FlashWindowMS uint32 = 50

	// The result stays on show for this long
	StopDwellMS uint32 = 2000
)

// StopMode selects how the Stop phase waits out its dwell
type StopMode uint8

const (
	// StopBlocking sleeps through the dwell inside a single tick.
	// Nothing is polled until the sleep returns.
	StopBlocking StopMode = iota
	// StopCooperative keeps ticking through the dwell and ignores
	// the buttons until it has elapsed
	StopCooperative
)

// Channel is a player's button and LED as seen by the controller.
// *player.Player satisfies it.
type Channel interface {
	Poll()
	IsPressed() bool
	TurnOn()
	TurnOff()
	Toggle()
}

// ramp is the get-ready timer state. It is zeroed on every entry
// into GetReady.
type ramp struct {
	delay   uint32
	off     bool
	flashed bool
	last    uint32
}

// Controller runs the game's phase state machine. It is not safe for
// concurrent use: one loop owns it and calls Tick.
type Controller struct {
	one   Channel
	two   Channel
	phase Phase
	ramp  ramp

	// Phase entry timestamps
	playAt uint32
	stopAt uint32

	result    Result
	hasResult bool

	stopMode StopMode
	sleep    func(time.Duration)
	observer func(Transition)
}

// Option configures a Controller
type Option func(*Controller)

func WithStopMode(mode StopMode) Option {

	return func(c *Controller) {
		c.stopMode = mode
	}
}

// WithSleep replaces time.Sleep for the blocking Stop dwell
func WithSleep(sleep func(time.Duration)) Option {

	return func(c *Controller) {
		c.sleep = sleep
	}
}

// WithObserver registers a function called on every phase change.
// It runs on the ticking goroutine and must not call Tick.
func WithObserver(observer func(Transition)) Option {

	return func(c *Controller) {
		c.observer = observer
	}
}

// New returns a controller in the Reset phase
func New(one, two Channel, opts ...Option) *Controller {

	c := &Controller{
		one:      one,
		two:      two,
		phase:    Reset,
		stopMode: StopBlocking,
		sleep:    time.Sleep,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller) Phase() Phase {

	return c.phase
}

// Result returns the outcome of the most recent round, if any
func (c *Controller) Result() (Result, bool) {

	return c.result, c.hasResult
}

// Tick polls both buttons, then runs the current phase once.
// now is a wrapping millisecond counter.
func (c *Controller) Tick(now uint32) {

	c.one.Poll()
	c.two.Poll()

	switch c.phase {
	case Reset:
		c.reset(now)
	case GetReady:
		c.getReady(now)
	case Play:
		c.play(now)
	case Stop:
		c.stop(now)
	}
}

/*
 *  Phase handlers
 */
func (c *Controller) reset(now uint32) {

	// Player 1 lit, player 2 dark: the ramp toggles
	// both, so the light chases between them
	c.one.TurnOn()
	c.two.TurnOff()
	c.enter(GetReady, now)
}

func (c *Controller) getReady(now uint32) {

	// Pressing before play starts hands the round to the other
	// player. Player 1 is checked first, so a simultaneous press
	// counts as player 1's false start.
	if c.one.IsPressed() {
		c.one.TurnOff()
		c.two.TurnOn()
		c.finish(Result{Winner: PlayerTwo, FalseStart: true}, now)
		return
	} else if c.two.IsPressed() {
		c.two.TurnOff()
		c.one.TurnOn()
		c.finish(Result{Winner: PlayerOne, FalseStart: true}, now)
		return
	}

	r := &c.ramp

	// Unsigned subtraction survives the counter wrapping
	elapsed := now - r.last

	if r.delay < RampCeilingMS {
		if elapsed < r.delay {
			return
		}

		c.one.Toggle()
		c.two.Toggle()
		r.delay += RampStepMS
		r.last = now
		return
	}

	// Blackout...
	if elapsed < r.delay {
		if !r.off {
			c.one.TurnOff()
			c.two.TurnOff()
			r.off = true
			r.flashed = false
		}
		return
	}

	// ...flash...
	if elapsed < r.delay+FlashWindowMS {
		if !r.flashed {
			c.one.TurnOn()
			c.two.TurnOn()
			r.flashed = true
		}
		return
	}

	// ...and go
	c.one.TurnOff()
	c.two.TurnOff()
	r.off = false
	c.enter(Play, now)
}

func (c *Controller) play(now uint32) {

	// First press wins; player 1 is checked first
	if c.one.IsPressed() {
		c.one.TurnOn()
		c.finish(Result{Winner: PlayerOne, ReactionMS: now - c.playAt}, now)
	} else if c.two.IsPressed() {
		c.two.TurnOn()
		c.finish(Result{Winner: PlayerTwo, ReactionMS: now - c.playAt}, now)
	}
}

func (c *Controller) stop(now uint32) {

	if c.stopMode == StopBlocking {
		c.sleep(time.Duration(StopDwellMS) * time.Millisecond)
		c.enter(Reset, now+StopDwellMS)
		return
	}

	if now-c.stopAt < StopDwellMS {
		return
	}

	c.enter(Reset, now)
}

/*
 *  Transitions
 */
func (c *Controller) finish(result Result, now uint32) {

	c.result = result
	c.hasResult = true
	c.enter(Stop, now)
}

func (c *Controller) enter(to Phase, now uint32) {

	from := c.phase
	c.phase = to

	// Entry actions
	switch to {
	case GetReady:
		c.ramp = ramp{last: now}
	case Play:
		c.playAt = now
	case Stop:
		c.stopAt = now
	}

	if c.observer == nil {
		return
	}

	t := Transition{From: from, To: to, At: now}
	if to == Stop {
		result := c.result
		t.Result = &result
	}

	c.observer(t)
}
