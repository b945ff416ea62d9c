// Command reactsim plays the reaction game in a terminal, with keys
// standing in for the buttons and on-screen lamps for the LEDs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"reaction/game"
	"reaction/internal/config"
	"reaction/internal/logger"
	"reaction/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "reactsim:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The screen belongs to the game, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.Init(logFile, cfg.LogLevel, cfg.LogJSON)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	board := sim.NewBoard(screen, cfg.Keys(), cfg.KeyHold, log)
	one, two := board.Players()
	ctl := game.New(one, two,
		game.WithStopMode(cfg.GameStopMode()),
		game.WithObserver(board.Observe))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := board.Run(ctx, ctl, sim.NewClock(cfg.ClockOffsetMS), cfg.TickInterval); err != nil {
		log.Error("simulator failed", "err", err)
		return err
	}
	return nil
}
