package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reaction/game"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		TickInterval: time.Millisecond,
		StopMode:     StopModeBlocking,
		KeyHold:      150 * time.Millisecond,
		Player1Key:   "a",
		Player2Key:   "l",
		LogLevel:     "info",
		LogFile:      "reactsim.log",
	}
	if cfg != want {
		t.Fatalf("Load() = %+v; want %+v", cfg, want)
	}
	if cfg.GameStopMode() != game.StopBlocking {
		t.Fatalf("GameStopMode() = %v; want blocking", cfg.GameStopMode())
	}
	if cfg.Keys() != [2]rune{'a', 'l'} {
		t.Fatalf("Keys() = %q", cfg.Keys())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REACTION_STOP_MODE", "cooperative")
	t.Setenv("REACTION_TICK_INTERVAL", "5ms")
	t.Setenv("REACTION_CLOCK_OFFSET_MS", "4294966296")
	t.Setenv("REACTION_PLAYER2_KEY", "é")

	cfg, err := Load(missingEnvFile(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GameStopMode() != game.StopCooperative {
		t.Fatalf("GameStopMode() = %v; want cooperative", cfg.GameStopMode())
	}
	if cfg.TickInterval != 5*time.Millisecond {
		t.Fatalf("TickInterval = %v", cfg.TickInterval)
	}
	if cfg.ClockOffsetMS != 4294966296 {
		t.Fatalf("ClockOffsetMS = %d", cfg.ClockOffsetMS)
	}
	if cfg.Keys()[1] != 'é' {
		t.Fatalf("Keys() = %q", cfg.Keys())
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("REACTION_PLAYER1_KEY=z\nREACTION_LOG_JSON=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("REACTION_PLAYER1_KEY")
		os.Unsetenv("REACTION_LOG_JSON")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player1Key != "z" || !cfg.LogJSON {
		t.Fatalf("Load() = %+v; want values from %s", cfg, path)
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("REACTION_KEY_HOLD", "soon")
	if _, err := Load(missingEnvFile(t)); err == nil {
		t.Fatal("Load() accepted a bad duration")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		TickInterval: time.Millisecond,
		StopMode:     StopModeBlocking,
		KeyHold:      time.Millisecond,
		Player1Key:   "a",
		Player2Key:   "l",
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() on base config = %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative hold", func(c *Config) { c.KeyHold = -time.Millisecond }},
		{"unknown stop mode", func(c *Config) { c.StopMode = "sometimes" }},
		{"empty key", func(c *Config) { c.Player1Key = "" }},
		{"long key", func(c *Config) { c.Player2Key = "ll" }},
		{"shared key", func(c *Config) { c.Player2Key = "a" }},
		{"quit key", func(c *Config) { c.Player1Key = "q" }},
	}

	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate() = nil; want error", tc.name)
		}
	}
}
