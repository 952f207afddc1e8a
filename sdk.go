// sdk.go
// ------
// The sdk.go file contains the core Client struct and its constructor.
// This is the main entry point of the library for users.
//
// Key functionalities include:
// - Initializing the client with NewClient()
// - Invoking any catalogued operation generically via Invoke()
// - The typed operation surface spread across issues.go, epics.go,
//   workspaces.go, milestones.go, dependencies.go, release_reports.go,
//   release_report_issues.go, and rate.go
//
// Every operation is one resolve -> dispatch -> materialize pass. The client
// holds no mutable state across calls beyond the rate limit tracker; the
// configuration is read-only after construction.
package zenhubbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Client is the typed binding to one deployment of the service.
type Client struct {
	cfg        Config
	httpClient Doer
	rateLimits *rateLimitTracker

	Debug bool // If true, print debug info
}

// NewClient builds a client from cfg. An empty base URL means the public
// cloud. Enterprise 3 installations running under their own base URL serve
// the API under an /api prefix, which is applied here once.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Enterprise == 0 {
		cfg.Enterprise = Enterprise2
	}
	if cfg.Enterprise == Enterprise3 && cfg.BaseURL != DefaultBaseURL {
		cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/") + "/api"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		rateLimits: &rateLimitTracker{},
	}
}

// SetDebug enables or disables debug logging for the client.
func (c *Client) SetDebug(enabled bool) {
	c.Debug = enabled
}

// Invoke resolves op against the endpoint catalog, dispatches it, and
// returns the parsed response document (a map or a slice) unchanged apart
// from required-field checking. This is the plain-mapping counterpart of the
// typed methods, which run the same pipeline with model output.
func (c *Client) Invoke(ctx context.Context, op Operation, params Params, body any) (any, error) {
	ep, path, err := c.resolve(op, params)
	if err != nil {
		return nil, err
	}
	// The quota operation answers through response headers, so its document
	// is built from those instead of a body.
	if op == OpGetRateLimit {
		return c.rawRateLimit(ctx, ep, path)
	}
	data, err := c.call(ctx, ep, path, body)
	if err != nil {
		return nil, err
	}
	return materializeRaw(data, ep.shape)
}

func (c *Client) resolve(op Operation, params Params) (endpoint, string, error) {
	return resolveEndpoint(op, c.cfg.Enterprise, params)
}

// call serializes body (when present) and dispatches one request, returning
// the raw success body.
func (c *Client) call(ctx context.Context, ep endpoint, path string, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}
	resp, err := c.execute(ctx, requestEnvelope{
		method: ep.method,
		url:    c.cfg.BaseURL + path,
		body:   payload,
	})
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

// callModel runs the full pipeline with typed output.
func (c *Client) callModel(ctx context.Context, op Operation, params Params, body, out any) error {
	ep, path, err := c.resolve(op, params)
	if err != nil {
		return err
	}
	data, err := c.call(ctx, ep, path, body)
	if err != nil {
		return err
	}
	return materializeModel(data, ep.shape, out)
}

// callEmpty runs the pipeline for operations whose success response is an
// empty acknowledgement.
func (c *Client) callEmpty(ctx context.Context, op Operation, params Params, body any) error {
	ep, path, err := c.resolve(op, params)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, ep, path, body)
	return err
}

// debugf prints debug messages if Debug mode is enabled.
func (c *Client) debugf(format string, args ...any) {
	if c.Debug {
		fmt.Printf("[DEBUG] "+format, args...)
	}
}
