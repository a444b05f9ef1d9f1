package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call. The web layer shows the same
// generic "failed to <op>" message for every kind, but the distinction is
// available for guard decisions (an unauthorized call means the session's
// bearer token is no longer accepted).
type Kind int

const (
	// KindNetwork covers transport failures: the request never produced
	// an HTTP response.
	KindNetwork Kind = iota
	// KindUnauthorized covers 401 and 403 responses.
	KindUnauthorized
	// KindNotFound covers 404 responses.
	KindNotFound
	// KindValidation covers 400 and 422 responses.
	KindValidation
	// KindInternal covers every other non-2xx response.
	KindInternal
)

// Error is the typed failure returned by every backend call.
type Error struct {
	Kind   Kind
	Op     string // e.g. "fetch products"
	Status int    // HTTP status, 0 for transport failures
	err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s", e.Op)
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsUnauthorized reports whether err is a backend error with
// KindUnauthorized.
func IsUnauthorized(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindUnauthorized
}

// IsNotFound reports whether err is a backend error with KindNotFound.
func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == KindNotFound
}

func kindForStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 400 || status == 422:
		return KindValidation
	default:
		return KindInternal
	}
}
