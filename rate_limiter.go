// rate_limiter.go
// ----------------
// This file defines the rate limit tracker, which stores the most recent
// quota state reported by the service. The service attaches X-RateLimit-*
// headers to every response; the dispatcher feeds them here so callers can
// inspect the standing quota without spending a request.
//
// The tracker never throttles or delays anything. It is bookkeeping only;
// pacing is the caller's decision.
package zenhubbridge

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/opengovern/zenhub-bridge/internal/timeutil"
)

// quotaInfo is one observation of the service's quota headers.
type quotaInfo struct {
	limit   int
	used    int
	resetAt time.Time
}

func (q *quotaInfo) toRateLimit() *RateLimit {
	remaining := q.limit - q.used
	if remaining < 0 {
		remaining = 0
	}
	return &RateLimit{
		Limit:     q.limit,
		Used:      q.used,
		Remaining: remaining,
		ResetAt:   q.resetAt,
	}
}

// rateLimitTracker keeps the latest quota observation. Safe for concurrent
// use; operations invoked concurrently share only this and the read-only
// client configuration.
type rateLimitTracker struct {
	mu     sync.Mutex
	latest *quotaInfo
}

func (t *rateLimitTracker) update(info *quotaInfo) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = info
}

// snapshot returns a copy of the latest observation, or nil if no response
// carrying quota headers has been seen yet.
func (t *rateLimitTracker) snapshot() *RateLimit {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.latest == nil {
		return nil
	}
	return t.latest.toRateLimit()
}

// parseRateLimitHeaders extracts quota state from a response's headers.
// Returns nil when the response carries no quota headers at all; individual
// missing or malformed values degrade to -1 rather than failing the call.
func parseRateLimitHeaders(h http.Header) *quotaInfo {
	limitVal := h.Get("X-RateLimit-Limit")
	usedVal := h.Get("X-RateLimit-Used")
	resetVal := h.Get("X-RateLimit-Reset")
	if limitVal == "" && usedVal == "" && resetVal == "" {
		return nil
	}

	info := &quotaInfo{limit: -1, used: -1}
	if n, err := strconv.Atoi(limitVal); err == nil {
		info.limit = n
	}
	if n, err := strconv.Atoi(usedVal); err == nil {
		info.used = n
	}
	if sec, err := strconv.ParseInt(resetVal, 10, 64); err == nil {
		info.resetAt = timeutil.FromUnix(sec)
	}
	return info
}
