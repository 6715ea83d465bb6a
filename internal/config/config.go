// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/mentalmath/internal/mathrand"
)

// Environment variable names.
const (
	EnvDB            = "MENTALMATH_DB"
	EnvLogLevel      = "MENTALMATH_LOG_LEVEL"
	EnvLogFile       = "MENTALMATH_LOG_FILE"
	EnvSeed          = "MENTALMATH_SEED"
	EnvScoring       = "MENTALMATH_SCORING"
	EnvSessionLength = "MENTALMATH_SESSION_LENGTH"
	EnvWordProblems  = "MENTALMATH_WORD_PROBLEMS"
)

// DefaultSessionLength is the number of problems in a play session.
const DefaultSessionLength = 10

// Config holds runtime settings.
type Config struct {
	DBPath        string // empty means the XDG default
	LogLevel      string
	LogFile       string
	Seed          int64
	HasSeed       bool
	Scoring       string
	SessionLength int
	WordProblems  bool
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:        os.Getenv(EnvDB),
		LogLevel:      strings.ToLower(envOr(EnvLogLevel, "info")),
		LogFile:       os.Getenv(EnvLogFile),
		Scoring:       envOr(EnvScoring, "five-tier"),
		SessionLength: envIntOr(EnvSessionLength, DefaultSessionLength),
		WordProblems:  envBool(EnvWordProblems),
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed, cfg.HasSeed = seed, true
		}
	}
	return cfg
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, ok := levels[c.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error; got %q", EnvLogLevel, c.LogLevel))
	}
	if c.Scoring != "five-tier" && c.Scoring != "two-tier" {
		errs = append(errs, fmt.Errorf("%s must be five-tier or two-tier; got %q", EnvScoring, c.Scoring))
	}
	if c.SessionLength < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive; got %d", EnvSessionLength, c.SessionLength))
	}
	return errors.Join(errs...)
}

// Source returns the random source for a run: seeded when a seed is set,
// otherwise seeded from the clock.
func (c Config) Source() mathrand.Source {
	if c.HasSeed {
		return mathrand.New(uint64(c.Seed))
	}
	return mathrand.NewTimeSeeded()
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process logger: text to stderr, or to LogFile when
// set so a full-screen UI is not disturbed. The returned closer releases
// the file.
func (c Config) NewLogger(stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, ok := levels[c.LogLevel]
	if !ok {
		level = slog.LevelInfo
	}
	w, closer := stderr, io.Closer(nopCloser{})
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
