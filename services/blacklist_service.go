package services

import (
	"context"
	"sync"
	"time"

	"sanskruti-travels-service/config"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// InterfaceTokenBlacklist records session tokens revoked by logout so they
// stop working before their natural expiry.
type InterfaceTokenBlacklist interface {
	Revoke(token string, until time.Time)
	IsRevoked(token string) bool
}

// MemoryBlacklist keeps revoked tokens in process memory. It matches the
// durability of the rest of the system: a restart forgets revocations along
// with every session that could have been revoked.
type MemoryBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryBlacklist creates an empty in-memory blacklist
func NewMemoryBlacklist() *MemoryBlacklist {
	return &MemoryBlacklist{
		revoked: make(map[string]time.Time),
	}
}

// Revoke marks a token revoked until the given time. Expired entries are
// pruned opportunistically on each call.
func (b *MemoryBlacklist) Revoke(token string, until time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	for t, expiry := range b.revoked {
		if expiry.Before(now) {
			delete(b.revoked, t)
		}
	}
	b.revoked[token] = until
}

// IsRevoked reports whether a token has been revoked and not yet expired
func (b *MemoryBlacklist) IsRevoked(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	until, ok := b.revoked[token]
	return ok && until.After(time.Now())
}

// RedisBlacklist keeps revoked tokens in Redis so revocations survive a
// process restart and are shared across instances. Enabled by
// REDIS_ENABLED=true.
type RedisBlacklist struct {
	client *redis.Client
	ctx    context.Context
}

const blacklistKeyPrefix = "session_blacklist:"

// NewRedisBlacklist creates a blacklist backed by the given Redis client
func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{
		client: client,
		ctx:    context.Background(),
	}
}

// NewRedisClient builds a Redis client from config
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})
}

// Revoke marks a token revoked; the Redis TTL handles expiry.
func (b *RedisBlacklist) Revoke(token string, until time.Time) {
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	if err := b.client.Set(b.ctx, blacklistKeyPrefix+token, "revoked", ttl).Err(); err != nil {
		logrus.Errorf("failed to blacklist session token: %v", err)
	}
}

// IsRevoked reports whether a token has been revoked
func (b *RedisBlacklist) IsRevoked(token string) bool {
	n, err := b.client.Exists(b.ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		logrus.Errorf("failed to check session blacklist: %v", err)
		return false
	}
	return n > 0
}
