package cfapi

import (
	"fmt"
	"net/http"
	"strings"
)

// FailureKind classifies an API call failure so callers can decide whether
// a failure is fatal (bad credential) or just a per-zone problem.
type FailureKind string

const (
	KindUnauthorized      FailureKind = "unauthorized"
	KindNotFound          FailureKind = "not_found"
	KindRateLimited       FailureKind = "rate_limited"
	KindServerError       FailureKind = "server_error"
	KindNetworkError      FailureKind = "network_error"
	KindMalformedResponse FailureKind = "malformed_response"
)

// Message is a single error or informational message in the Cloudflare
// response envelope.
type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is the classified failure returned by every Client call.
type APIError struct {
	Kind       FailureKind
	StatusCode int       // 0 for network / decode failures
	Messages   []Message // messages reported in the response envelope
	Err        error     // underlying transport or decode error, if any
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case len(e.Messages) > 0:
		parts := make([]string, 0, len(e.Messages))
		for _, m := range e.Messages {
			parts = append(parts, fmt.Sprintf("%d: %s", m.Code, m.Message))
		}
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, strings.Join(parts, "; "))
	default:
		return fmt.Sprintf("%s (HTTP %d)", e.Kind, e.StatusCode)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is an APIError caused by a rejected
// credential. Used to distinguish a fatal bad token from per-zone failures.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindUnauthorized
}

// classifyStatus maps an HTTP status to a FailureKind. Anything the API
// rejects that is not an auth, missing-resource, or rate-limit problem is
// reported as a server-side failure.
func classifyStatus(status int) FailureKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindServerError
	}
}
