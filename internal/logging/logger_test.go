package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/handiism/timecrawl/internal/config"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("visible", "run_id", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "run_id=abc") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, ".go:") {
		t.Errorf("expected no source information at info level, got %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "JSON", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("cycle done", "cycle", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record %q: %v", buf.String(), err)
	}
	if record["msg"] != "cycle done" {
		t.Errorf("msg = %v, want cycle done", record["msg"])
	}
	if record["cycle"] != float64(3) {
		t.Errorf("cycle = %v, want 3", record["cycle"])
	}
	if _, ok := record["source"]; !ok {
		t.Error("expected source at debug level")
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromSettings(t *testing.T) {
	var buf bytes.Buffer
	s := config.DefaultSettings()
	s.LogLevel = "warn"

	logger, err := NewFromSettings(s, &buf)
	if err != nil {
		t.Fatalf("NewFromSettings returned error: %v", err)
	}
	logger.Info("skipped")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "skipped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
