package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"WARN":   slog.LevelWarn,
		" error": slog.LevelError,
		"":       slog.LevelInfo,
		"chatty": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupToJSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	l := SetupTo(&buf)
	l.Info("hidden")
	l.Warn("strip_patch_rejected", "count", 2)

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("output %q is not one JSON record: %v", line, err)
	}
	if rec["msg"] != "strip_patch_rejected" || rec["count"] != float64(2) {
		t.Errorf("record = %v", rec)
	}
	if L() != l {
		t.Error("L() did not return the configured logger")
	}
}
