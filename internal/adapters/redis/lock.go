// Package redis provides a Redis-backed distributed lock so that multiple
// provisioner replicas never mutate the same domain concurrently.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/provtools/wlsprov/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

var (
	// ErrLockAcquire is returned when the lock cannot be acquired.
	ErrLockAcquire = errors.New("failed to acquire provisioning lock")
)

// Locker implements ports.DistributedLocker using Redis.
type Locker struct {
	client *backend.Client
	prefix string
}

var _ ports.DistributedLocker = (*Locker)(nil)

// New creates a Redis locker for the given address.
func New(address string) *Locker {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: address}))
}

// NewFromClient creates a Redis locker from an existing client.
func NewFromClient(client *backend.Client) *Locker {
	return &Locker{
		client: client,
		prefix: "wlsprov:",
	}
}

// Lock acquires a distributed lock for the given key using Redis SET NX PX.
// It polls with backoff until the lock is acquired or the context is canceled.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	val := fmt.Sprintf("%d", time.Now().UnixNano())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		// Try immediately, then on every tick.
		success, err := l.client.SetNX(ctx, lockKey, val, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error acquiring lock: %w", err)
		}
		if success {
			return func(ctx context.Context) error {
				// Safe unlock: delete only if we still own the value.
				script := `
					if redis.call("get", KEYS[1]) == ARGV[1] then
						return redis.call("del", KEYS[1])
					else
						return 0
					end
				`
				return l.client.Eval(ctx, script, []string{lockKey}, val).Err()
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrLockAcquire, ctx.Err())
		case <-ticker.C:
		}
	}
}

// Close closes the underlying redis client.
func (l *Locker) Close() error {
	return l.client.Close()
}
