// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"roadstrip/internal/logger"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultStripPath       = "assets/oval.trk"
	DefaultRacingLineWidth = 1.5
	DefaultWindowWidth     = 1200
	DefaultWindowHeight    = 800
	DefaultTrainingSpeed   = 20 // Ticks per frame in fast mode
	DefaultProbeLength     = 4.0
)

// Config holds everything the binaries read from the environment.
type Config struct {
	StripPath       string
	StripReverse    bool
	MetricsAddr     string // empty disables the /metrics listener
	RacingLineWidth float64
	WindowWidth     int
	WindowHeight    int
	TrainingSpeed   int
	ProbeLength     float64 // Wheel ray length below the car
}

// Load reads .env files (missing ones are ignored) and the environment.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}
	return Config{
		StripPath:       str("STRIP_PATH", DefaultStripPath),
		StripReverse:    boolean("STRIP_REVERSE", false),
		MetricsAddr:     str("METRICS_ADDR", ""),
		RacingLineWidth: float("RACING_LINE_WIDTH", DefaultRacingLineWidth),
		WindowWidth:     integer("WINDOW_WIDTH", DefaultWindowWidth),
		WindowHeight:    integer("WINDOW_HEIGHT", DefaultWindowHeight),
		TrainingSpeed:   integer("TRAINING_SPEED", DefaultTrainingSpeed),
		ProbeLength:     float("PROBE_LENGTH", DefaultProbeLength),
	}
}

func str(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func boolean(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.L().Warn("config_bad_value", "key", key, "value", v)
		return def
	}
	return b
}

func integer(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.L().Warn("config_bad_value", "key", key, "value", v)
		return def
	}
	return n
}

func float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		logger.L().Warn("config_bad_value", "key", key, "value", v)
		return def
	}
	return f
}
