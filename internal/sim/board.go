package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"reaction/game"
	"reaction/player"
)

const (
	lampOn  = '●'
	lampOff = '○'
)

var (
	styleText  = tcell.StyleDefault
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLamps = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	}
)

// Board is the simulated hardware: two keys, two lamps and a screen
type Board struct {
	screen   tcell.Screen
	log      *slog.Logger
	bindings [2]rune
	keys     [2]*Key
	lamps    [2]*Lamp

	// Shown under the lamps
	phase  game.Phase
	result string
	round  string
}

// NewBoard binds one key per player. Presses read as held for hold.
func NewBoard(screen tcell.Screen, bindings [2]rune, hold time.Duration, log *slog.Logger) *Board {
	return newBoard(screen, bindings, hold, log, time.Now)
}

func newBoard(screen tcell.Screen, bindings [2]rune, hold time.Duration, log *slog.Logger, now func() time.Time) *Board {
	b := &Board{screen: screen, log: log, bindings: bindings}
	for i := range b.keys {
		b.keys[i] = NewKey(hold, now)
		b.lamps[i] = &Lamp{}
	}
	return b
}

// Players wires each key and lamp pair up as a player
func (b *Board) Players() (*player.Player, *player.Player) {
	return player.New(b.keys[0], b.lamps[0]), player.New(b.keys[1], b.lamps[1])
}

// Observe tracks phase changes for display and logging. Pass it to
// game.WithObserver.
func (b *Board) Observe(t game.Transition) {
	if t.To == game.GetReady && t.From == game.Reset {
		b.round = uuid.NewString()
	}
	b.phase = t.To

	attrs := []any{"round", b.round, "from", t.From.String(), "to", t.To.String(), "at", t.At}
	if t.Result != nil {
		b.result = t.Result.String()
		attrs = append(attrs, "winner", t.Result.Winner.String(),
			"false_start", t.Result.FalseStart, "reaction_ms", t.Result.ReactionMS)
		b.log.Info("round over", attrs...)
		return
	}
	b.log.Debug("phase change", attrs...)
}

// HandleEvent applies one terminal event and reports whether to quit
func (b *Board) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
			for i, r := range b.bindings {
				if ev.Rune() == r {
					b.keys[i].Press(ev.When())
				}
			}
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
	return false
}

// Draw renders the lamps and status lines
func (b *Board) Draw() {
	b.screen.Clear()
	b.text(1, 0, "REACTION", styleText.Bold(true))

	for i, lamp := range b.lamps {
		x := 2 + i*8
		glyph, style := lampOff, styleDim
		if lamp.On() {
			glyph, style = lampOn, styleLamps[i]
		}
		b.text(x, 2, "[ ]", styleDim)
		b.screen.SetContent(x+1, 2, glyph, nil, style)
		b.text(x+1, 3, string(b.bindings[i]), styleText)
	}

	b.text(1, 5, "phase: "+b.phase.String(), styleText)
	b.text(1, 6, b.result, styleText)
	b.text(1, 8, fmt.Sprintf("press %c / %c, q to quit", b.bindings[0], b.bindings[1]), styleDim)
	b.screen.Show()
}

func (b *Board) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run is the scheduler loop: it ticks ctl every interval, handling key
// events in between, until ctx ends or the player quits.
func (b *Board) Run(ctx context.Context, ctl *game.Controller, clock *Clock, interval time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go b.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	b.log.Info("simulator started", "tick", interval.String(), "clock", clock.Millis())
	b.Draw()
	for {
		select {
		case <-ctx.Done():
			b.log.Info("simulator stopped", "reason", ctx.Err())
			return nil
		case ev, ok := <-events:
			if !ok {
				return errors.New("screen closed")
			}
			if b.HandleEvent(ev) {
				b.log.Info("simulator stopped", "reason", "quit")
				return nil
			}
		case <-ticker.C:
			ctl.Tick(clock.Millis())
			b.Draw()
		}
	}
}
