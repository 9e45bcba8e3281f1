// Package errs defines the single error sentinel the xpatch core surfaces.
//
// Decode/get-tag failures carry no dynamic payload and no stack context:
// every failure is errors.Is-comparable to ErrMalformedDelta, and
// distinguished only by a short static reason string identifying the first
// parse step that failed. This mirrors the sentinel-error shape used by
// go-git's packfile delta codec (ErrInvalidDelta, ErrDeltaCmd) and the
// fmt.Errorf("...: %w", err) wrapping idiom used throughout this module
// (e.g. compress/zstd_pure.go).
package errs

import (
	"errors"
	"fmt"
)

// ErrMalformedDelta is returned (wrapped) whenever Decode or GetTag cannot
// make sense of a delta buffer: a truncated header, a truncated or
// overflowing varint, an out-of-range copy instruction, a body whose
// declared length contract doesn't add up, or an unknown algorithm code.
var ErrMalformedDelta = errors.New("malformed delta")

// Malformed wraps ErrMalformedDelta with a static reason, keeping
// errors.Is(err, ErrMalformedDelta) true for every failure the core returns.
func Malformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedDelta, reason)
}
