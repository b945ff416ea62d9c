//go:build rp2040

package main

import (
	"time"

	"reaction/game"
	"reaction/player"
)

/*
 * GLOBALS
 */
// Player button/LED pairs
var playerOne *player.Player
var playerTwo *player.Player

// The game
var controller *game.Controller

// Millisecond counter origin
var bootTime time.Time
