//go:build rp2040

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
package main

import (
	"machine"
	"time"

	"reaction/game"
	"reaction/player"
)

func main() {

	// Set up the hardware
	setup()

	// Don't start with a false start baked in
	waitForRelease()

	// Play the game: one tick per pass
	for {
		controller.Tick(millis())
	}
}

/*
 *  Initialisation Functions
 */
func setup() {

	// Set up the buttons: pressed pulls the pin high
	PIN_BUTTON_1.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	PIN_BUTTON_2.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})

	// Set up the LEDs, dark to start
	PIN_LED_1.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LED_1.Low()
	PIN_LED_2.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LED_2.Low()

	playerOne = player.New(PIN_BUTTON_1, PIN_LED_1)
	playerTwo = player.New(PIN_BUTTON_2, PIN_LED_2)

	// Keep the Stop phase's blocking 2s dwell
	controller = game.New(playerOne, playerTwo,
		game.WithStopMode(game.StopBlocking),
		game.WithObserver(report))

	bootTime = time.Now()
}

func waitForRelease() {

	// Flash the Pico LED while either button is held:
	// a stuck button or a wiring fault
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for PIN_BUTTON_1.Get() || PIN_BUTTON_2.Get() {
		led.High()
		time.Sleep(time.Millisecond * time.Duration(HELD_FLASH_PERIOD_MS))
		led.Low()
		time.Sleep(time.Millisecond * time.Duration(HELD_FLASH_PERIOD_MS))
	}
}

/*
 *  Misc Functions
 */
func millis() uint32 {

	// Truncation gives a counter that wraps after ~49.7 days
	return uint32(time.Since(bootTime).Milliseconds())
}

func report(t game.Transition) {

	// Round results go out over the USB serial console
	if t.Result != nil {
		println(t.Result.String())
	}
}
