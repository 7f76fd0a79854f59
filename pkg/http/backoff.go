package http

import "time"

// BackoffConfig controls retry behavior for a request. Requests without a
// backoff configuration execute exactly once.
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration
	// Multiplier scales the delay after each retry. Values below 1 are treated as 1.
	Multiplier float64
	// MaxDelay caps the delay between retries; zero means uncapped.
	MaxDelay time.Duration
	// RetryableStatuses restricts retries to the listed HTTP statuses.
	// Empty means retry on any failed attempt, including transport errors.
	RetryableStatuses []int
}

// NewBackoffConfig creates a backoff configuration with sensible defaults.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     5 * time.Second,
	}
}

// WithMaxRetries sets the number of retries.
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

// WithInitialDelay sets the wait before the first retry.
func (b *BackoffConfig) WithInitialDelay(delay time.Duration) *BackoffConfig {
	b.InitialDelay = delay
	return b
}

// WithMultiplier sets the delay growth factor.
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	b.Multiplier = multiplier
	return b
}

// WithRetryableStatuses restricts retries to the given HTTP statuses.
func (b *BackoffConfig) WithRetryableStatuses(statuses ...int) *BackoffConfig {
	b.RetryableStatuses = statuses
	return b
}

func (b *BackoffConfig) nextDelay(current time.Duration) time.Duration {
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	next := time.Duration(float64(current) * multiplier)
	if b.MaxDelay > 0 && next > b.MaxDelay {
		next = b.MaxDelay
	}
	return next
}

// retryableStatus reports whether a failed attempt with the given status
// should be retried. Status 0 marks a transport error, always retryable.
func (b *BackoffConfig) retryableStatus(status int) bool {
	if status == 0 || len(b.RetryableStatuses) == 0 {
		return true
	}
	for _, s := range b.RetryableStatuses {
		if s == status {
			return true
		}
	}
	return false
}
