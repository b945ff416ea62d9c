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
package player

// Level is the logical state of a player's LED
type Level uint8

const (
	Off Level = iota
	On
)

// Toggle returns the opposite level
func (l Level) Toggle() Level {

	if l == On {
		return Off
	}

	return On
}

func (l Level) String() string {

	if l == On {
		return "on"
	}

	return "off"
}

// Button is a digital input. machine.Pin satisfies it.
type Button interface {
	Get() bool
}

// Light is a digital output. machine.Pin satisfies it.
type Light interface {
	Set(bool)
}

// Player pairs one button with one LED
type Player struct {
	// Hardware
	button Button
	led    Light
	// Logic level at which the button reads as pressed
	active bool
	// Last sampled button state and last LED level written
	sample bool
	level  Level
}

// New returns a player whose button reads pressed when the pin is high,
// ie. a button wired to 3V3 with a pull-down input.
func New(button Button, led Light) *Player {

	return &Player{button: button, led: led, active: true, level: Off}
}

// NewActiveLow returns a player whose button reads pressed when the pin is
// low, ie. a button wired to GND with a pull-up input.
func NewActiveLow(button Button, led Light) *Player {

	return &Player{button: button, led: led, active: false, sample: true, level: Off}
}

// Poll samples the button pin. Call it once per tick before IsPressed.
func (p *Player) Poll() {

	p.sample = p.button.Get()
}

// IsPressed reports the state recorded by the last Poll
func (p *Player) IsPressed() bool {

	return p.sample == p.active
}

func (p *Player) SetLed(level Level) {

	// Write the pin first, then remember what we wrote
	p.led.Set(level == On)
	p.level = level
}

func (p *Player) TurnOn() {

	p.SetLed(On)
}

func (p *Player) TurnOff() {

	p.SetLed(Off)
}

// Toggle flips the LED relative to the last level written through SetLed
func (p *Player) Toggle() {

	p.SetLed(p.level.Toggle())
}

func (p *Player) Level() Level {

	return p.level
}
