// Package cache holds the redis-backed revoked-token store. Revocations
// live in a shared store with explicit expiry, so they survive restarts and
// are visible to every instance.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platemate/deliverycore/internal/core/port"
)

type TokenBlacklist struct {
	client      *redis.Client
	serviceName string
}

func NewTokenBlacklist(addr, serviceName string) port.TokenBlacklist {
	return &TokenBlacklist{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (b *TokenBlacklist) key(token string) string {
	return fmt.Sprintf("%s:revoked:%s", b.serviceName, token)
}

func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return b.client.Set(ctx, b.key(token), "1", ttl).Err()
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	_, err := b.client.Get(ctx, b.key(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
