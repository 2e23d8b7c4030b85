package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Adda-Baaj/swapi-client/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestInitWritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := initWithWriter(&config.Config{AppName: "swapi-client", LogLevel: "warn"}, &buf); err != nil {
		t.Fatalf("initWithWriter: %v", err)
	}
	t.Cleanup(func() { S = nil })

	InfoObj("suppressed", "k", "v")
	WarnObj("character fetch failed", "fetch_error", map[string]any{"character": "Luke Skywalker"})
	_ = Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "character fetch failed" {
		t.Fatalf("unexpected msg %v", entry["msg"])
	}
	if entry["app"] != "swapi-client" {
		t.Fatalf("missing app field: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("missing ts field: %v", entry)
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestHelpersAreSafeBeforeInit(t *testing.T) {
	S = nil
	InfoObj("msg", "k", 1)
	ErrorObj("msg", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close before Init: %v", err)
	}
}
