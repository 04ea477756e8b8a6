package queue

import (
	"context"
	"sync"
	"time"
)

// Lease grants exclusive use of a periodic job for a bounded time, so that
// only one replica runs it per window.
type Lease interface {
	Acquire(ctx context.Context, ttl time.Duration) (bool, error)
}

// LocalLease is a single-process Lease.
type LocalLease struct {
	mu    sync.Mutex
	until time.Time
	now   func() time.Time
}

func NewLocalLease() *LocalLease {
	return &LocalLease{now: time.Now}
}

func (l *LocalLease) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Before(l.until) {
		return false, nil
	}
	l.until = now.Add(ttl)
	return true, nil
}
