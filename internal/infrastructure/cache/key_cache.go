// Package cache keeps derived key states in process memory.
package cache

import (
	"time"

	"github.com/MGTheTrain/toy-rsa/internal/domain/toyrsa"
	"github.com/MGTheTrain/toy-rsa/internal/pkg/config"
	gocache "github.com/patrickmn/go-cache"
)

// KeyCache is a go-cache backed toyrsa.KeyCache. Entries are copied on the way
// in and out so callers never share a KeyState.
type KeyCache struct{ c *gocache.Cache }

// NewKeyCache creates a cache whose entries expire after defaultTTL; zero keeps them forever.
func NewKeyCache(defaultTTL, cleanupInterval time.Duration) *KeyCache {
	if defaultTTL == 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &KeyCache{c: gocache.New(defaultTTL, cleanupInterval)}
}

// NewKeyCacheFromSettings creates a cache from the REST key cache settings.
func NewKeyCacheFromSettings(settings config.KeyCacheSettings) *KeyCache {
	return NewKeyCache(settings.DefaultTTL, settings.CleanupInterval)
}

func (k *KeyCache) Get(key string) (*toyrsa.KeyState, bool) {
	v, ok := k.c.Get(key)
	if !ok {
		return nil, false
	}
	ks, ok := v.(toyrsa.KeyState)
	if !ok {
		return nil, false
	}
	return &ks, true
}

func (k *KeyCache) Set(key string, ks *toyrsa.KeyState) {
	k.c.SetDefault(key, *ks)
}

// Len returns the number of entries, expired ones included until cleanup.
func (k *KeyCache) Len() int { return k.c.ItemCount() }

var _ toyrsa.KeyCache = (*KeyCache)(nil)
