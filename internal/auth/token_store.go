package auth

import (
	"context"
	"sync"
	"time"

	"duesmanager/internal/cache"
)

const revokedTokenKeyPrefix = "revoked:session:"

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore records revoked session tokens in Redis. Revocations are also
// kept in process so logout holds on a single instance without Redis.
type TokenStore struct {
	cache *cache.Client
	// token ID -> expiry
	local sync.Map
	now   func() time.Time
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache, now: time.Now}
}

// RevokeToken marks a session token as revoked until it would have expired.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.local.Store(tokenID, s.now().Add(ttl))
	s.sweep()

	key := revokedTokenKeyPrefix + tokenID
	// Store a simple marker
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsRevoked checks if a session token was revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if v, ok := s.local.Load(tokenID); ok && s.now().Before(v.(time.Time)) {
		return true, nil
	}

	key := revokedTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil // Not revoked if error (fail safe)
	}
	return data != nil, nil
}

// sweep drops local revocations that have expired.
func (s *TokenStore) sweep() {
	now := s.now()
	s.local.Range(func(k, v interface{}) bool {
		if !now.Before(v.(time.Time)) {
			s.local.Delete(k)
		}
		return true
	})
}
