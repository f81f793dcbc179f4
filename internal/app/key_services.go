package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/logger"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/metrics"
)

// keyService implements the toyrsa.KeyService interface on top of one engine per strategy
type keyService struct {
	engines  map[toyrsa.ExponentStrategy]toyrsa.Engine
	defaults config.EngineSettings
	cache    toyrsa.KeyCache
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewKeyService creates a key service. defaults supplies p, q and the strategy for
// requests that leave them out. cache and m may be nil.
func NewKeyService(
	engines []toyrsa.Engine,
	defaults config.EngineSettings,
	cache toyrsa.KeyCache,
	m *metrics.Metrics,
	logger logger.Logger,
) (toyrsa.KeyService, error) {
	byStrategy := make(map[toyrsa.ExponentStrategy]toyrsa.Engine, len(engines))
	for _, engine := range engines {
		byStrategy[engine.Strategy()] = engine
	}

	strategy, err := toyrsa.ParseExponentStrategy(defaults.Strategy)
	if err != nil {
		return nil, err
	}
	if _, ok := byStrategy[strategy]; !ok {
		return nil, fmt.Errorf("no engine for default strategy %s", strategy)
	}

	return &keyService{
		engines:  byStrategy,
		defaults: defaults,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}, nil
}

// resolve fills unset request fields from the defaults and picks the engine
func (s *keyService) resolve(req *toyrsa.KeyRequest) (toyrsa.Engine, uint64, uint64, error) {
	if req == nil {
		req = &toyrsa.KeyRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %w", toyrsa.ErrInvalidKeyMaterial, err)
	}

	p, q := req.P, req.Q
	if p == 0 {
		p = s.defaults.P
	}
	if q == 0 {
		q = s.defaults.Q
	}
	if limit := s.defaults.MaxPrime; limit > 0 && (p > limit || q > limit) {
		return nil, 0, 0, fmt.Errorf("%w: p=%d q=%d exceeds the configured maximum %d", toyrsa.ErrInvalidKeyMaterial, p, q, limit)
	}

	name := req.Strategy
	if name == "" {
		name = s.defaults.Strategy
	}
	strategy, err := toyrsa.ParseExponentStrategy(name)
	if err != nil {
		return nil, 0, 0, err
	}
	engine, ok := s.engines[strategy]
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: %s is not enabled", toyrsa.ErrUnknownStrategy, strategy)
	}
	return engine, p, q, nil
}

func (s *keyService) cacheKey(strategy toyrsa.ExponentStrategy, p, q uint64) string {
	return fmt.Sprintf("%s/e=%d/validate=%t/%d/%d", strategy, s.defaults.FixedExponent, s.defaults.ValidatePrimes, p, q)
}

func (s *keyService) derive(ctx context.Context, req *toyrsa.KeyRequest) (toyrsa.Engine, *toyrsa.KeyState, error) {
	engine, p, q, err := s.resolve(req)
	if err != nil {
		return nil, nil, err
	}
	strategy := engine.Strategy()

	key := s.cacheKey(strategy, p, q)
	if s.cache != nil {
		if ks, ok := s.cache.Get(key); ok {
			s.metrics.KeyDerivation(strategy.String(), metrics.DerivationHit)
			return engine, ks, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	ks, err := engine.DeriveKeys(p, q)
	if err != nil {
		s.metrics.KeyDerivation(strategy.String(), metrics.DerivationError)
		return nil, nil, fmt.Errorf("failed to derive keys for p=%d q=%d: %w", p, q, err)
	}
	s.metrics.KeyDerivation(strategy.String(), metrics.DerivationMiss)

	if s.cache != nil {
		s.cache.Set(key, ks)
	}
	s.logger.Debug("Derived keys n=", ks.N, " e=", ks.E, " strategy=", strategy)
	return engine, ks, nil
}

// Derive returns the key state for req
func (s *keyService) Derive(ctx context.Context, req *toyrsa.KeyRequest) (*toyrsa.KeyState, error) {
	_, ks, err := s.derive(ctx, req)
	return ks, err
}

// Session returns a fresh session owning its own copy of the key state
func (s *keyService) Session(ctx context.Context, req *toyrsa.KeyRequest) (*toyrsa.KeySession, error) {
	engine, ks, err := s.derive(ctx, req)
	if err != nil {
		return nil, err
	}
	return toyrsa.NewKeySessionWithState(engine, ks), nil
}
