package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// KeyCacheSettings controls how long derived key states are reused.
type KeyCacheSettings struct {
	DefaultTTL      time.Duration `yaml:"default_ttl" validate:"gte=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gte=0"`
}

// RestConfig holds the settings of the REST API server
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	Engine   EngineSettings   `yaml:"engine"`
	KeyCache KeyCacheSettings `yaml:"key_cache"`
}

// DefaultRestConfig returns the configuration used when no file is given.
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port:     "8080",
		Logger:   DefaultLoggerSettings(),
		Database: DefaultDatabaseSettings(),
		Engine:   DefaultEngineSettings(),
		KeyCache: KeyCacheSettings{
			DefaultTTL:      10 * time.Minute,
			CleanupInterval: time.Minute,
		},
	}
}

// InitializeRestConfig reads the YAML file at configPath (skipped when empty or
// missing), loads an optional .env file and applies TOYRSA_* overrides.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	cfg := DefaultRestConfig()

	if configPath != "" {
		b, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the REST config and all nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := validate.Struct(&c.KeyCache); err != nil {
		return fmt.Errorf("validation failed for KeyCacheSettings: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Engine.Validate()
}

func (c *RestConfig) applyEnvOverrides() error {
	if v, ok := getEnvStr("TOYRSA_PORT"); ok {
		c.Port = v
	}
	if v, ok := getEnvStr("TOYRSA_LOG_LEVEL"); ok {
		c.Logger.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvStr("TOYRSA_DB_TYPE"); ok {
		c.Database.Type = v
	}
	if v, ok := getEnvStr("TOYRSA_DB_DSN"); ok {
		c.Database.DSN = v
	}
	if v, ok := getEnvStr("TOYRSA_DB_NAME"); ok {
		c.Database.Name = v
	}
	if v, ok := getEnvStr("TOYRSA_STRATEGY"); ok {
		c.Engine.Strategy = strings.ToLower(v)
	}

	uintOverrides := []struct {
		key    string
		target *uint64
	}{
		{"TOYRSA_P", &c.Engine.P},
		{"TOYRSA_Q", &c.Engine.Q},
		{"TOYRSA_FIXED_EXPONENT", &c.Engine.FixedExponent},
		{"TOYRSA_MAX_PRIME", &c.Engine.MaxPrime},
	}
	for _, o := range uintOverrides {
		v, ok, err := getEnvUint(o.key)
		if err != nil {
			return err
		}
		if ok {
			*o.target = v
		}
	}

	if v, ok := getEnvBool("TOYRSA_VALIDATE_PRIMES"); ok {
		c.Engine.ValidatePrimes = v
	}
	if v, ok := getEnvBool("TOYRSA_STRICT_PRIVATE_KEY"); ok {
		c.Engine.StrictPrivateKey = v
	}
	return nil
}

func getEnvStr(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func getEnvUint(key string) (uint64, bool, error) {
	s, ok := getEnvStr(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, true, nil
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b, true
		}
	}
	return false, false
}
