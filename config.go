// config.go
// ----------
// This file defines the Config structure, which carries everything the client
// needs to talk to a deployment: the authentication token (or a token
// source), the base URL, the enterprise version selector, and the transport
// collaborator.
//
// A Config is created once, handed to NewClient, and read-only afterwards.
// Nothing in this package keeps ambient or global state.
package zenhubbridge

import "golang.org/x/oauth2"

// DefaultBaseURL is the public cloud deployment of the service.
const DefaultBaseURL = "https://api.zenhub.com"

// Enterprise selects the deployment variant of the remote service. The two
// enterprise API versions differ in which base path their endpoints live
// under; endpoint shapes are otherwise constant.
type Enterprise int

const (
	// Enterprise2 is the default API version, also used by the public cloud.
	Enterprise2 Enterprise = 2
	// Enterprise3 installs serve the API under an /api prefix on the
	// installation's own base URL.
	Enterprise3 Enterprise = 3
)

// Config carries the per-client settings.
type Config struct {
	// Token is the API authentication token, sent on every request.
	Token string

	// TokenSource, if set, is consulted per request instead of Token.
	// Useful when tokens are rotated or minted externally.
	TokenSource oauth2.TokenSource

	// BaseURL overrides DefaultBaseURL for enterprise installations.
	BaseURL string

	// Enterprise selects the deployment variant. Zero means Enterprise2.
	Enterprise Enterprise

	// HTTPClient is the transport collaborator. Defaults to a plain
	// http.Client. TLS, timeouts, and connection reuse are its concern.
	HTTPClient Doer
}
