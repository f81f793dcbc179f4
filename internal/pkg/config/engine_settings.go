package config

import (
	"fmt"

	"github.com/MGTheTrain/toy-rsa/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Exponent strategy names accepted in settings and flags
const (
	StrategyFixed   = "fixed"
	StrategyCoprime = "coprime"
)

// Reference key material of the toy engine
const (
	DefaultPrimeP        = 61
	DefaultPrimeQ        = 53
	DefaultFixedExponent = 17
	// DefaultMaxPrime bounds p and q accepted from callers
	DefaultMaxPrime = 10007
)

// EngineSettings selects the key material and exponent strategy of the toy RSA engine.
type EngineSettings struct {
	Strategy         string `yaml:"strategy" validate:"required,exponentStrategy"`
	FixedExponent    uint64 `yaml:"fixed_exponent" validate:"gt=1"`
	P                uint64 `yaml:"p" validate:"required,gt=1"`
	Q                uint64 `yaml:"q" validate:"required,gt=1"`
	MaxPrime         uint64 `yaml:"max_prime" validate:"lte=2147483647"`
	ValidatePrimes   bool   `yaml:"validate_primes"`
	StrictPrivateKey bool   `yaml:"strict_private_key"`
}

// DefaultEngineSettings returns p=61, q=53 with the fixed exponent 17.
// MaxPrime bounds caller supplied primes; 0 leaves only the engine's own limit.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		Strategy:       StrategyFixed,
		FixedExponent:  DefaultFixedExponent,
		P:              DefaultPrimeP,
		Q:              DefaultPrimeQ,
		MaxPrime:       DefaultMaxPrime,
		ValidatePrimes: true,
	}
}

// Validate checks the engine settings, including the strategy/exponent pairing
func (s *EngineSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("exponentStrategy", validators.ExponentStrategyValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for EngineSettings: %w", err)
	}
	if s.MaxPrime > 0 && (s.P > s.MaxPrime || s.Q > s.MaxPrime) {
		return fmt.Errorf("validation failed for EngineSettings: p=%d q=%d exceed max_prime %d", s.P, s.Q, s.MaxPrime)
	}
	return nil
}
