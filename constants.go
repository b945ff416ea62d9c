//go:build rp2040

/*
 * Reaction for Raspberry Pi Pico
 * Go version
 *
 * @authors     smittytone
 * @copyright   2023, Tony Smith
 * @licence     MIT
 *
 */
package main

import (
	"machine"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_BUTTON_1 machine.Pin = machine.GP3
	PIN_LED_1    machine.Pin = machine.GP5
	PIN_BUTTON_2 machine.Pin = machine.GP2
	PIN_LED_2    machine.Pin = machine.GP4

	// Onboard LED flash period while the buttons are held at boot
	HELD_FLASH_PERIOD_MS int64 = 100
)
