package toyrsa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExponentStrategy selects how the public exponent is chosen during key derivation.
type ExponentStrategy int

const (
	// StrategyFixed uses a caller supplied constant (17 by default) without a coprimality check.
	StrategyFixed ExponentStrategy = iota
	// StrategySmallestCoprime scans upward from 2 for the first value coprime to phi.
	StrategySmallestCoprime
)

// String returns the configuration name of the strategy.
func (s ExponentStrategy) String() string {
	switch s {
	case StrategyFixed:
		return "fixed"
	case StrategySmallestCoprime:
		return "coprime"
	default:
		return fmt.Sprintf("ExponentStrategy(%d)", int(s))
	}
}

// ParseExponentStrategy maps a configuration name to an ExponentStrategy.
func ParseExponentStrategy(name string) (ExponentStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return StrategyFixed, nil
	case "coprime":
		return StrategySmallestCoprime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// KeyState is a complete toy RSA key pair. N and Phi are always derived from
// P and Q together; D is NoInverse when E has no inverse modulo Phi.
type KeyState struct {
	P   uint64 `json:"p" validate:"required"`
	Q   uint64 `json:"q" validate:"required"`
	N   uint64 `json:"n" validate:"required"`
	Phi uint64 `json:"phi"`
	E   uint64 `json:"e" validate:"required"`
	D   int64  `json:"d" validate:"gte=-1"`
}

// NewKeyState builds a KeyState from the primes and exponents, computing n and phi.
func NewKeyState(p, q, e uint64, d int64) *KeyState {
	return &KeyState{
		P:   p,
		Q:   q,
		N:   p * q,
		Phi: (p - 1) * (q - 1),
		E:   e,
		D:   d,
	}
}

// HasPrivateKey reports whether a private exponent was found.
func (k *KeyState) HasPrivateKey() bool {
	return k.D != NoInverse
}

// PublicKey renders the public pair the way it is annotated in artifacts.
func (k *KeyState) PublicKey() string {
	return fmt.Sprintf("%d, %d", k.N, k.E)
}

// Validate checks field constraints and the n/phi/d invariants.
func (k *KeyState) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	if k.N != k.P*k.Q {
		return fmt.Errorf("validation failed: n=%d is not p*q for p=%d q=%d", k.N, k.P, k.Q)
	}
	if k.Phi != (k.P-1)*(k.Q-1) {
		return fmt.Errorf("validation failed: phi=%d is not (p-1)(q-1) for p=%d q=%d", k.Phi, k.P, k.Q)
	}
	if k.HasPrivateKey() {
		if k.D == 0 || k.Phi == 0 || MulMod(k.E%k.Phi, uint64(k.D), k.Phi) != 1 {
			return fmt.Errorf("validation failed: d=%d is not the inverse of e=%d modulo %d", k.D, k.E, k.Phi)
		}
	}
	return nil
}
