// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Category sentinels. Every rejection returned by a service unwraps to
// exactly one of these; store-layer errors (connection loss, bad SQL)
// deliberately unwrap to none of them so callers can tell them apart.
var (
	// ErrValidation indicates malformed input (username/email/password/domain/ip).
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation (username/email/domain taken).
	ErrConflict = errors.New("already exists")

	// ErrUnauthorized indicates bad credentials, an unrecognized token, or a
	// token that does not own the requested domain.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpstream indicates the external DNS-provider call failed.
	ErrUpstream = errors.New("upstream provider failed")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// Rejection is a caller-facing failure carrying the historical reason string
// ("username invalid." etc.) expected by existing clients. It unwraps to its
// category sentinel so tests and callers can match with errors.Is.
type Rejection struct {
	Kind   error
	Reason string
}

// Reject builds a Rejection of the given category.
func Reject(kind error, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}

func (r *Rejection) Error() string { return r.Reason }

func (r *Rejection) Unwrap() error { return r.Kind }
