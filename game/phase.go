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

import "fmt"

// Phase is one of the four mutually exclusive game states
type Phase uint8

const (
	Reset Phase = iota
	GetReady
	Play
	Stop
)

func (p Phase) String() string {

	switch p {
	case Reset:
		return "reset"
	case GetReady:
		return "get-ready"
	case Play:
		return "play"
	case Stop:
		return "stop"
	}

	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Seat identifies one of the two players
type Seat uint8

const (
	PlayerOne Seat = 1
	PlayerTwo Seat = 2
)

func (s Seat) String() string {

	return fmt.Sprintf("player %d", uint8(s))
}

// Result describes how a round ended
type Result struct {
	Winner Seat
	// FalseStart is set when the loser pressed before play began
	FalseStart bool
	// ReactionMS is the winner's time from the start of play.
	// Zero for false starts.
	ReactionMS uint32
}

func (r Result) String() string {

	if r.FalseStart {
		return fmt.Sprintf("%s wins: false start by %s", r.Winner, r.Winner.other())
	}

	return fmt.Sprintf("%s wins in %dms", r.Winner, r.ReactionMS)
}

func (s Seat) other() Seat {

	if s == PlayerOne {
		return PlayerTwo
	}

	return PlayerOne
}

// Transition is reported to the observer on every phase change
type Transition struct {
	From Phase
	To   Phase
	At   uint32
	// Result is set when To is Stop
	Result *Result
}
