// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for content-repository
// calls and other I/O in HTTP handlers. Using centralized values ensures
// consistency and makes it easy to adjust timeouts across the application.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-record lookups and small writes
//   - Medium: list fetches, the four-collection catalog load
//   - Long: multi-step flows (OAuth exchange + userinfo + upsert)
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used unless overridden from the environment).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple operations like single-record reads.
// Examples: lookup by email, create a suggestion, patch a consent flag.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for moderate operations like list fetches.
// Examples: the per-request catalog load across four collections.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for multi-step flows against remote services.
// Examples: the OAuth code exchange plus userinfo fetch plus user upsert.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
}

// ConfigureFromEnv reads timeout overrides from environment variables:
// TIMEOUT_PING, TIMEOUT_SHORT, TIMEOUT_MEDIUM, TIMEOUT_LONG, each a
// time.ParseDuration string like "2s" or "500ms". Unset or invalid values
// keep the defaults. Returns the number of timeouts overridden.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	for _, ent := range []struct {
		env string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
		{"TIMEOUT_LONG", &long},
	} {
		v := os.Getenv(ent.env)
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*ent.dst = d
			configured++
		}
	}

	return configured
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "catalog load")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
