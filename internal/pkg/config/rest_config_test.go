//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, DefaultEngineSettings(), cfg.Engine)
	assert.Equal(t, 10*time.Minute, cfg.KeyCache.DefaultTTL)
}

func TestInitializeRestConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
engine:
  strategy: coprime
  p: 61
  q: 53
key_cache:
  default_ttl: 2m
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, StrategyCoprime, cfg.Engine.Strategy)
	assert.Equal(t, 2*time.Minute, cfg.KeyCache.DefaultTTL)
	// untouched keys keep their defaults
	assert.Equal(t, uint64(DefaultFixedExponent), cfg.Engine.FixedExponent)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TOYRSA_PORT", "7070")
	t.Setenv("TOYRSA_P", "11")
	t.Setenv("TOYRSA_Q", "13")
	t.Setenv("TOYRSA_STRATEGY", "COPRIME")
	t.Setenv("TOYRSA_STRICT_PRIVATE_KEY", "true")
	t.Setenv("TOYRSA_MAX_PRIME", "101")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, uint64(11), cfg.Engine.P)
	assert.Equal(t, uint64(13), cfg.Engine.Q)
	assert.Equal(t, StrategyCoprime, cfg.Engine.Strategy)
	assert.True(t, cfg.Engine.StrictPrivateKey)
	assert.Equal(t, uint64(101), cfg.Engine.MaxPrime)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfigFile(t, "port: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("non numeric prime override", func(t *testing.T) {
		t.Setenv("TOYRSA_P", "sixty-one")
		_, err := InitializeRestConfig("")
		assert.Error(t, err)
	})

	t.Run("coprime strategy with zero fixed exponent", func(t *testing.T) {
		t.Setenv("TOYRSA_STRATEGY", "coprime")
		t.Setenv("TOYRSA_FIXED_EXPONENT", "0")
		_, err := InitializeRestConfig("")
		assert.Error(t, err)
	})

	t.Run("unknown strategy", func(t *testing.T) {
		t.Setenv("TOYRSA_STRATEGY", "random")
		_, err := InitializeRestConfig("")
		assert.Error(t, err)
	})

	t.Run("non numeric port", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfigFile(t, `port: "http"`))
		assert.Error(t, err)
	})
}
