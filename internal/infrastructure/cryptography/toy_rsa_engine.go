package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
)

// EngineOptions configures a toy RSA engine.
type EngineOptions struct {
	Strategy         toyrsa.ExponentStrategy
	FixedExponent    uint64
	ValidatePrimes   bool
	StrictPrivateKey bool
}

// DefaultEngineOptions returns the fixed exponent 17 with prime validation enabled.
func DefaultEngineOptions() EngineOptions {
	return EngineOptions{
		Strategy:       toyrsa.StrategyFixed,
		FixedExponent:  config.DefaultFixedExponent,
		ValidatePrimes: true,
	}
}

// EngineOptionsFromSettings converts validated engine settings into engine options.
func EngineOptionsFromSettings(settings config.EngineSettings) (EngineOptions, error) {
	strategy, err := toyrsa.ParseExponentStrategy(settings.Strategy)
	if err != nil {
		return EngineOptions{}, err
	}
	return EngineOptions{
		Strategy:         strategy,
		FixedExponent:    settings.FixedExponent,
		ValidatePrimes:   settings.ValidatePrimes,
		StrictPrivateKey: settings.StrictPrivateKey,
	}, nil
}

// toyRSAEngine implements toyrsa.Engine with textbook arithmetic on machine words
type toyRSAEngine struct {
	opts   EngineOptions
	logger logger.Logger
}

// NewToyRSAEngine creates a new toy RSA engine
func NewToyRSAEngine(opts EngineOptions, logger logger.Logger) (toyrsa.Engine, error) {
	switch opts.Strategy {
	case toyrsa.StrategyFixed:
		if opts.FixedExponent < 2 {
			return nil, fmt.Errorf("fixed exponent must be at least 2, got %d", opts.FixedExponent)
		}
	case toyrsa.StrategySmallestCoprime:
	default:
		return nil, fmt.Errorf("%w: %v", toyrsa.ErrUnknownStrategy, opts.Strategy)
	}

	return &toyRSAEngine{
		opts:   opts,
		logger: logger,
	}, nil
}

// Strategy returns the exponent strategy of the engine.
func (r *toyRSAEngine) Strategy() toyrsa.ExponentStrategy {
	return r.opts.Strategy
}

// DeriveKeys computes a full key state from p and q.
// The fixed strategy does not check gcd(e, phi); a non-coprime e yields d == NoInverse.
func (r *toyRSAEngine) DeriveKeys(p, q uint64) (*toyrsa.KeyState, error) {
	if err := r.checkKeyMaterial(p, q); err != nil {
		return nil, err
	}

	phi := (p - 1) * (q - 1)

	var e uint64
	switch r.opts.Strategy {
	case toyrsa.StrategyFixed:
		e = r.opts.FixedExponent
	case toyrsa.StrategySmallestCoprime:
		if phi <= 2 {
			return nil, fmt.Errorf("%w: phi=%d leaves no exponent to search", toyrsa.ErrDegenerateTotient, phi)
		}
		e, _ = toyrsa.SmallestCoprime(phi)
	}

	d := toyrsa.ModInverse(e, phi)
	ks := toyrsa.NewKeyState(p, q, e, d)

	if !ks.HasPrivateKey() {
		r.logger.Warn(fmt.Sprintf("No inverse of e=%d modulo phi=%d, decryption will not round-trip", e, phi))
	}
	r.logger.Debug(fmt.Sprintf("Derived toy RSA keys p=%d q=%d n=%d e=%d", p, q, ks.N, e))
	return ks, nil
}

// EncryptUnit computes m^e mod n with e sequential multiply-and-reduce steps.
func (r *toyRSAEngine) EncryptUnit(m uint64, ks *toyrsa.KeyState) uint64 {
	return repeatedMulMod(m, ks.E, ks.N)
}

// DecryptUnit computes c^d mod n with d sequential multiply-and-reduce steps.
// With d == NoInverse the loop runs zero times and 1 is returned, unless the engine is strict.
func (r *toyRSAEngine) DecryptUnit(c uint64, ks *toyrsa.KeyState) (uint64, error) {
	if !ks.HasPrivateKey() {
		if r.opts.StrictPrivateKey {
			return 0, fmt.Errorf("%w (e=%d, phi=%d)", toyrsa.ErrNoPrivateKey, ks.E, ks.Phi)
		}
		return repeatedMulMod(c, 0, ks.N), nil
	}
	return repeatedMulMod(c, uint64(ks.D), ks.N), nil
}

func (r *toyRSAEngine) checkKeyMaterial(p, q uint64) error {
	for _, v := range [...]uint64{p, q} {
		if v == 0 || v > toyrsa.MaxPrime {
			return fmt.Errorf("%w: %d is outside [1, %d]", toyrsa.ErrInvalidKeyMaterial, v, toyrsa.MaxPrime)
		}
		if r.opts.ValidatePrimes && !toyrsa.IsPrime(v) {
			return fmt.Errorf("%w: %d is not prime", toyrsa.ErrInvalidKeyMaterial, v)
		}
	}
	return nil
}

// repeatedMulMod multiplies an accumulator starting at 1 by base, exp times, reducing modulo n.
// No square-and-multiply: the cost is linear in exp.
func repeatedMulMod(base, exp, n uint64) uint64 {
	// a zero modulus only comes from a hand-built KeyState
	if n == 0 {
		return 0
	}
	acc := uint64(1)
	for i := uint64(0); i < exp; i++ {
		acc = toyrsa.MulMod(acc, base, n)
	}
	return acc
}
