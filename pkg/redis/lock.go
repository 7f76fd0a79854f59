package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// unlockScript deletes the lock key only when it still holds our token.
const unlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`

// refreshScript extends the TTL only when the lock still holds our token.
const refreshScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end`

// LockOptions represents options for distributed locking.
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between acquisition attempts
	RetryDelay time.Duration
	// MaxRetries is the maximum number of acquisition attempts after the first
	MaxRetries int
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
	// LockNamespace prefixes the lock key as namespace::key
	LockNamespace string
}

// NewLockOptions creates lock options with default values.
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		MaxRetries:      10,
		RefreshInterval: 10 * time.Second,
	}
}

// Lock represents a distributed lock backed by a single Redis key.
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock.
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  generateLockToken(),
		opts:   opts,
	}
}

// NewScheduledTaskLock creates a lock suited for guarding a recurring task:
// a single acquisition attempt and an auto-refresh that keeps the lock for
// the lifetime of the process holding it.
func NewScheduledTaskLock(client *Client, key string, ttl, refreshInterval time.Duration, namespace string) *Lock {
	opts := NewLockOptions()
	opts.TTL = ttl
	opts.RefreshInterval = refreshInterval
	opts.MaxRetries = 0
	opts.LockNamespace = namespace
	return NewLock(client, key, opts)
}

// buildLockKey constructs the full lock key using the namespace::key format.
func (l *Lock) buildLockKey() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock, retrying per the configured options.
func (l *Lock) Lock(ctx context.Context) error {
	fullKey := l.buildLockKey()
	for attempt := 0; attempt <= l.opts.MaxRetries; attempt++ {
		acquired, err := l.client.GetClient().SetNX(ctx, fullKey, l.value, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if acquired {
			return nil
		}

		if attempt < l.opts.MaxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(l.opts.RetryDelay):
			}
		}
	}
	return fmt.Errorf("lock %s is held by another owner", fullKey)
}

// Unlock releases the lock if this instance still owns it.
func (l *Lock) Unlock(ctx context.Context) error {
	released, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.buildLockKey()}, l.value).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if released == 0 {
		return fmt.Errorf("lock %s is not held by this owner", l.buildLockKey())
	}
	return nil
}

// Refresh extends the lock TTL if this instance still owns it.
func (l *Lock) Refresh(ctx context.Context) error {
	refreshed, err := l.client.GetClient().Eval(ctx, refreshScript,
		[]string{l.buildLockKey()}, l.value, l.opts.TTL.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if refreshed == 0 {
		return fmt.Errorf("lock %s is no longer held by this owner", l.buildLockKey())
	}
	return nil
}

// AutoRefresh keeps refreshing the lock until the context is canceled or a
// refresh fails. The returned channel yields the terminating error (nil on
// context cancellation) exactly once.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)
	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()
	return errChan
}

func generateLockToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
