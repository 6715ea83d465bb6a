package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mentalmath/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvDB, config.EnvLogLevel, config.EnvLogFile, config.EnvSeed,
		config.EnvScoring, config.EnvSessionLength, config.EnvWordProblems,
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load()
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "five-tier", cfg.Scoring)
	assert.Equal(t, config.DefaultSessionLength, cfg.SessionLength)
	assert.False(t, cfg.WordProblems)
	assert.False(t, cfg.HasSeed)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvDB, "/tmp/x.db")
	t.Setenv(config.EnvLogLevel, "DEBUG")
	t.Setenv(config.EnvSeed, "42")
	t.Setenv(config.EnvScoring, "two-tier")
	t.Setenv(config.EnvSessionLength, "25")
	t.Setenv(config.EnvWordProblems, "true")

	cfg := config.Load()
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "two-tier", cfg.Scoring)
	assert.Equal(t, 25, cfg.SessionLength)
	assert.True(t, cfg.WordProblems)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSeed, "abc")
	t.Setenv(config.EnvSessionLength, "ten")
	cfg := config.Load()
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, config.DefaultSessionLength, cfg.SessionLength)
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := config.Config{LogLevel: "loud", Scoring: "three-tier", SessionLength: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvLogLevel)
	assert.Contains(t, err.Error(), config.EnvScoring)
	assert.Contains(t, err.Error(), config.EnvSessionLength)
}

func TestSource_Seeded(t *testing.T) {
	cfg := config.Config{Seed: 7, HasSeed: true}
	a, b := cfg.Source(), cfg.Source()
	for range 5 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := config.Config{LogLevel: "warn"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	path := filepath.Join(t.TempDir(), "mm.log")
	logger, closer, err = config.Config{LogLevel: "info", LogFile: path}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closer.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
