package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var keys = []string{
	"STRIP_PATH", "STRIP_REVERSE", "METRICS_ADDR", "RACING_LINE_WIDTH",
	"WINDOW_WIDTH", "WINDOW_HEIGHT", "TRAINING_SPEED", "PROBE_LENGTH",
}

func clearEnv(t *testing.T) {
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	got := Load(filepath.Join(t.TempDir(), "missing.env"))
	want := Config{
		StripPath:       DefaultStripPath,
		RacingLineWidth: DefaultRacingLineWidth,
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		TrainingSpeed:   DefaultTrainingSpeed,
		ProbeLength:     DefaultProbeLength,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvAndBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRIP_PATH", "tracks/monza.trk")
	t.Setenv("STRIP_REVERSE", "true")
	t.Setenv("WINDOW_WIDTH", "-3")
	t.Setenv("RACING_LINE_WIDTH", "wide")
	got := Load(filepath.Join(t.TempDir(), "missing.env"))
	if got.StripPath != "tracks/monza.trk" || !got.StripReverse {
		t.Errorf("Load() = %+v", got)
	}
	if got.WindowWidth != DefaultWindowWidth || got.RacingLineWidth != DefaultRacingLineWidth {
		t.Errorf("bad values not replaced by defaults: %+v", got)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("METRICS_ADDR")
	t.Cleanup(func() { os.Unsetenv("METRICS_ADDR") })
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("METRICS_ADDR=:9100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Load(path).MetricsAddr; got != ":9100" {
		t.Errorf("MetricsAddr = %q, want :9100", got)
	}
}
