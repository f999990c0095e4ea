package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers revoked token ids until their tokens expire.
// Revoke reports false when tokenID was already revoked, so exactly one
// caller wins a race to revoke the same id.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedTokenKeyPrefix = "copydesk:revoked_token:"

// RedisRevocationStore keeps revoked token ids as expiring Redis keys
type RedisRevocationStore struct {
	rc *redis.Client
}

// NewRedisRevocationStore creates a revocation store backed by rc
func NewRedisRevocationStore(rc *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{rc: rc}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) (bool, error) {
	set, err := s.rc.SetNX(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx revoked token: %w", err)
	}
	return set, nil
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rc.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists revoked token: %w", err)
	}
	return n > 0, nil
}

// MemoryRevocationStore is used when no cache is configured. Revocations do not
// survive a restart and are not shared between instances.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore creates an empty in-process revocation store
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expiresAt := range s.revoked {
		if !now.Before(expiresAt) {
			delete(s.revoked, id)
		}
	}
	if _, ok := s.revoked[tokenID]; ok {
		return false, nil
	}
	s.revoked[tokenID] = now.Add(ttl)
	return true, nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.revoked[tokenID]
	return ok && s.now().Before(expiresAt), nil
}
