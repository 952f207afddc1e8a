package zenhubbridge

import "net/http"

// Doer is the transport collaborator: anything that can carry out a single
// HTTP round trip. *http.Client satisfies it; tests substitute a recording
// implementation from the mock package.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
