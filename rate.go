package zenhubbridge

import (
	"context"
	"fmt"
)

// RateLimit queries the service for the current API quota. It always issues
// a fresh request; nothing is cached on this path. repoID can be any
// repository the token can see, since the quota is account-wide.
func (c *Client) RateLimit(ctx context.Context, repoID int) (*RateLimit, error) {
	ep, path, err := c.resolve(OpGetRateLimit, Params{"repo_id": repoID})
	if err != nil {
		return nil, err
	}
	return c.fetchRateLimit(ctx, ep, path)
}

// fetchRateLimit performs the quota probe. The quota travels in response
// headers, not a body, so this bypasses the materializer.
func (c *Client) fetchRateLimit(ctx context.Context, ep endpoint, path string) (*RateLimit, error) {
	resp, err := c.execute(ctx, requestEnvelope{
		method: ep.method,
		url:    c.cfg.BaseURL + path,
	})
	if err != nil {
		return nil, err
	}
	info := parseRateLimitHeaders(resp.header)
	if info == nil {
		return nil, &SchemaError{Shape: ep.shape.name, Err: fmt.Errorf("response carries no X-RateLimit headers")}
	}
	return info.toRateLimit(), nil
}

// rawRateLimit is the raw-mode rendering of the quota probe, used by Invoke.
func (c *Client) rawRateLimit(ctx context.Context, ep endpoint, path string) (any, error) {
	rl, err := c.fetchRateLimit(ctx, ep, path)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"limit":     rl.Limit,
		"used":      rl.Used,
		"remaining": rl.Remaining,
		"reset_at":  rl.ResetAt,
	}, nil
}

// LastRateLimit returns the quota state most recently observed on any
// response, without a network call. Returns nil before the first response.
func (c *Client) LastRateLimit() *RateLimit {
	return c.rateLimits.snapshot()
}
