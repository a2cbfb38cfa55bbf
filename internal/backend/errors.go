package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies backend failures so callers can switch on error kind rather
// than matching message strings.
type Kind int

const (
	KindGeneric Kind = iota
	KindRateLimited
	KindNetworkUnreachable
	KindUnauthorized
	KindInvalidResponseShape
	KindEndpointNotFound
	KindAllEndpointsExhausted
	KindTimeout
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidResponseShape:
		return "invalid_response_shape"
	case KindEndpointNotFound:
		return "endpoint_not_found"
	case KindAllEndpointsExhausted:
		return "all_endpoints_exhausted"
	case KindTimeout:
		return "timeout"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "generic"
	}
}

// Error is the typed failure surface of every backend strategy.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("backend %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the Kind of a backend error, defaulting to KindGeneric for
// anything else.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindGeneric
}

// kindFromStatus maps HTTP status codes onto the taxonomy.
func kindFromStatus(status int) Kind {
	switch status {
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindEndpointNotFound
	default:
		return KindGeneric
	}
}

// transportError classifies a failed round trip: a cancelled or expired
// context is a timeout, everything else is unreachable network.
func transportError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newError(KindTimeout, "request timed out", err)
	}
	return newError(KindNetworkUnreachable, "request failed", err)
}
