package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// TokenRevoker is the denylist behind logout. Tokens are otherwise
// stateless, so revocation is keyed by token id with a TTL equal to the
// token's remaining lifetime; after that the entry is useless anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type memoryRevoker struct {
	entries *cache.Cache
}

// NewMemoryRevoker keeps the denylist in process memory. Revocations
// are lost on restart, which only shortens a revoked token's ban, never
// extends its validity.
func NewMemoryRevoker() TokenRevoker {
	return &memoryRevoker{
		entries: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (r *memoryRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.entries.Set(tokenID, struct{}{}, ttl)
	return nil
}

func (r *memoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, found := r.entries.Get(tokenID)
	return found, nil
}

type redisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker shares the denylist across restarts and replicas.
func NewRedisRevoker(url string) (TokenRevoker, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &redisRevoker{client: redis.NewClient(opts)}, nil
}

func (r *redisRevoker) key(tokenID string) string {
	return "revoked_token:" + tokenID
}

func (r *redisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *redisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
