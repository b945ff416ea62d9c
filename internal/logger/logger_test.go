package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestInitText(t *testing.T) {
	var buf bytes.Buffer
	log := Init(&buf, "warn", false)

	log.Info("hidden")
	log.Warn("shown", "round", "r1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "round=r1") {
		t.Fatalf("unexpected output %q", out)
	}
	if Get() != log {
		t.Fatal("Get() does not return the initialised logger")
	}
}

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "debug", true).Debug("tick", "phase", "play")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["msg"] != "tick" || line["phase"] != "play" {
		t.Fatalf("line = %v", line)
	}
}
