package ports

import (
	"context"
	"time"
)

// UnlockFunc is a function that releases a distributed lock.
type UnlockFunc func(ctx context.Context) error

// DistributedLocker defines the interface for distributed concurrency control.
// It lets the runner guarantee that two provisioner replicas never mutate the
// same domain concurrently.
type DistributedLocker interface {
	// Lock attempts to acquire a distributed lock for the given key (e.g. the
	// domain name). It blocks until the lock is acquired or the context is
	// canceled. Returns an UnlockFunc that MUST be called to release the lock.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
