// Package config loads the terminal simulator's settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"reaction/game"
)

const (
	StopModeBlocking    = "blocking"
	StopModeCooperative = "cooperative"
)

// Config holds the simulator's runtime settings. Game timing is fixed
// and not configurable here.
type Config struct {
	TickInterval  time.Duration `env:"REACTION_TICK_INTERVAL"   envDefault:"1ms"`
	StopMode      string        `env:"REACTION_STOP_MODE"       envDefault:"blocking"`
	KeyHold       time.Duration `env:"REACTION_KEY_HOLD"        envDefault:"150ms"`
	Player1Key    string        `env:"REACTION_PLAYER1_KEY"     envDefault:"a"`
	Player2Key    string        `env:"REACTION_PLAYER2_KEY"     envDefault:"l"`
	ClockOffsetMS uint32        `env:"REACTION_CLOCK_OFFSET_MS" envDefault:"0"`

	LogLevel string `env:"REACTION_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"REACTION_LOG_JSON"  envDefault:"false"`
	LogFile  string `env:"REACTION_LOG_FILE"  envDefault:"reactsim.log"`
}

// Load reads the given .env files (default ".env") if present, then
// parses the environment. Variables already set win over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("key hold must be positive, got %s", c.KeyHold)
	}
	if c.StopMode != StopModeBlocking && c.StopMode != StopModeCooperative {
		return fmt.Errorf("stop mode must be %q or %q, got %q", StopModeBlocking, StopModeCooperative, c.StopMode)
	}
	for _, k := range []string{c.Player1Key, c.Player2Key} {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("player key must be a single character, got %q", k)
		}
	}
	if c.Player1Key == c.Player2Key {
		return fmt.Errorf("players share the key %q", c.Player1Key)
	}
	if c.Player1Key == "q" || c.Player2Key == "q" {
		return errors.New("q is reserved for quit")
	}
	return nil
}

func (c Config) GameStopMode() game.StopMode {
	if c.StopMode == StopModeCooperative {
		return game.StopCooperative
	}
	return game.StopBlocking
}

// Keys returns the two player bindings. Call after Validate.
func (c Config) Keys() [2]rune {
	one, _ := utf8.DecodeRuneInString(c.Player1Key)
	two, _ := utf8.DecodeRuneInString(c.Player2Key)
	return [2]rune{one, two}
}
