// dispatcher.go
// -------------
// The request dispatcher: given a resolved endpoint and caller arguments it
// builds the concrete HTTP request (full URL, auth header, serialized body),
// issues exactly one round trip through the transport collaborator, and
// classifies the outcome.
//
// Header construction is deterministic: the authentication token header is
// always present, Content-Type is set only when a body exists. No retries
// are performed here; callers wanting retry or backoff wrap their calls.
//
// As a side channel, quota headers on every response are recorded in the
// client's rate limit tracker.
package zenhubbridge

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

const (
	authHeader = "X-Authentication-Token"
	userAgent  = "zenhub-bridge/1.0 (+https://github.com/opengovern/zenhub-bridge)"
)

// requestEnvelope is a fully built request, created per call and discarded
// after dispatch.
type requestEnvelope struct {
	method string
	url    string
	body   []byte
}

// responseEnvelope is the successful outcome of a dispatch.
type responseEnvelope struct {
	statusCode int
	header     http.Header
	body       []byte
}

// execute performs one round trip. It returns a TransportError if the round
// trip itself failed, an APIError carrying the status and the verbatim body
// for any non-2xx response, and the response envelope otherwise.
func (c *Client) execute(ctx context.Context, env requestEnvelope) (*responseEnvelope, error) {
	var reader io.Reader
	if env.body != nil {
		reader = bytes.NewReader(env.body)
	}
	req, err := http.NewRequestWithContext(ctx, env.method, env.url, reader)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	token, err := c.authToken()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set(authHeader, token)
	req.Header.Set("User-Agent", userAgent)
	if env.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.debugf("%s %s\n", env.method, env.url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if info := parseRateLimitHeaders(resp.Header); info != nil {
		c.rateLimits.update(info)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.debugf("%s %s -> %d\n", env.method, env.url, resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	return &responseEnvelope{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       body,
	}, nil
}

// authToken picks the per-request token: the configured TokenSource when one
// is set, the static token otherwise.
func (c *Client) authToken() (string, error) {
	if c.cfg.TokenSource != nil {
		tok, err := c.cfg.TokenSource.Token()
		if err != nil {
			return "", err
		}
		return tok.AccessToken, nil
	}
	return c.cfg.Token, nil
}
