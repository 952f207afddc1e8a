// errors.go
// ---------
// Error taxonomy for the client. Every failure mode is a distinct,
// inspectable value so callers can differentiate recovery strategies
// (re-auth on 401, backoff on 403/429, and so on).
//
// - ErrUnknownOperation:     the operation has no catalog entry.
// - MissingParameterError:   a required path parameter was not supplied.
// - InvalidReportStateError: a release report state outside the enum.
//   These are caller misuse and are detected before any network I/O.
// - TransportError:          the round trip itself failed.
// - APIError:                the service answered with a non-2xx status.
// - SchemaError:             the response body does not match the declared
//   response shape.
package zenhubbridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnknownOperation is returned when an operation name has no entry in the
// endpoint catalog for the configured enterprise version.
var ErrUnknownOperation = errors.New("unknown operation")

// MissingParameterError reports a required path parameter that was absent
// from the caller-supplied arguments. No request is sent in this case.
type MissingParameterError struct {
	Operation Operation
	Parameter string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("operation %s: missing required parameter %q", e.Operation, e.Parameter)
}

// TransportError wraps a network-level failure from the transport
// collaborator. The request may or may not have reached the service; it is
// never retried automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the service. Body holds the raw error
// body verbatim; no interpretation is attempted beyond extracting an optional
// "message" field for the error string.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Message returns the "message" field of the error body, if the body is a
// JSON object carrying one.
func (e *APIError) Message() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// InvalidReportStateError reports a release report state that is neither
// "open" nor "closed". No request is sent in this case.
type InvalidReportStateError struct {
	State ReportState
}

func (e *InvalidReportStateError) Error() string {
	return fmt.Sprintf("state must be %q or %q, got %q", ReportStateOpen, ReportStateClosed, e.State)
}

// SchemaError reports a response body that does not match the declared
// response shape. It is surfaced as-is, never silently coerced into a
// partially populated value.
type SchemaError struct {
	Shape string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response does not match %s shape: %v", e.Shape, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsInvalidToken reports whether err is an APIError caused by a rejected
// authentication token.
func IsInvalidToken(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsAPILimit reports whether err is an APIError caused by the API request
// limit being reached.
func IsAPILimit(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsNotFound reports whether err is an APIError for a resource that does not
// exist.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
