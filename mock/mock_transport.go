package mock

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is a canned-response transport collaborator for tests. It
// records every request it receives and never touches the network.
type Transport struct {
	StatusCode int         // Status to answer with; 0 means 200
	Body       []byte      // Response body
	Header     http.Header // Response headers
	Err        error       // If set, Do fails with this error instead

	Requests []*http.Request // Every request received, in order
	Bodies   [][]byte        // The request bodies, same order
}

func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	t.Requests = append(t.Requests, req)
	t.Bodies = append(t.Bodies, body)

	if t.Err != nil {
		return nil, t.Err
	}

	status := t.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	header := t.Header
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(t.Body)),
		Request:    req,
	}, nil
}

// Calls returns how many requests the transport has seen.
func (t *Transport) Calls() int {
	return len(t.Requests)
}

// LastRequest returns the most recent request, or nil if none were made.
func (t *Transport) LastRequest() *http.Request {
	if len(t.Requests) == 0 {
		return nil
	}
	return t.Requests[len(t.Requests)-1]
}

// LastBody returns the most recent request body, or nil if none were made.
func (t *Transport) LastBody() []byte {
	if len(t.Bodies) == 0 {
		return nil
	}
	return t.Bodies[len(t.Bodies)-1]
}
