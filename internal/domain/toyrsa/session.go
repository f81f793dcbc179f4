package toyrsa

import (
	"fmt"
	"sync"
)

// KeySession owns the key state of one logical session. Re-deriving keys takes the
// write lock; encryption and decryption share the read lock.
type KeySession struct {
	mu     sync.RWMutex
	engine Engine
	state  *KeyState
}

// NewKeySession derives the initial key state from p and q.
func NewKeySession(engine Engine, p, q uint64) (*KeySession, error) {
	ks, err := engine.DeriveKeys(p, q)
	if err != nil {
		return nil, fmt.Errorf("failed to derive initial keys: %w", err)
	}
	return &KeySession{engine: engine, state: ks}, nil
}

// NewKeySessionWithState wraps an already derived key state.
func NewKeySessionWithState(engine Engine, ks *KeyState) *KeySession {
	state := *ks
	return &KeySession{engine: engine, state: &state}
}

// SetPrimes replaces the whole key state. On error the previous state is kept.
func (s *KeySession) SetPrimes(p, q uint64) error {
	ks, err := s.engine.DeriveKeys(p, q)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = ks
	s.mu.Unlock()
	return nil
}

// State returns a copy of the current key state.
func (s *KeySession) State() KeyState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.state
}

// Encrypt encrypts a single code unit with the current key state.
func (s *KeySession) Encrypt(m uint64) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.EncryptUnit(m, s.state)
}

// Decrypt decrypts a single code unit with the current key state.
func (s *KeySession) Decrypt(c uint64) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.DecryptUnit(c, s.state)
}

var _ UnitCipher = (*KeySession)(nil)

// Strategy returns the exponent strategy of the session's engine.
func (s *KeySession) Strategy() ExponentStrategy {
	return s.engine.Strategy()
}
