/*
Package llxconf contains conflict representation and alternative set utilities
used by predictive parsers to describe ambiguity between grammar alternatives.

Consists of subpackages:
  - bitset: capacity-bounded bitmap of alternative indices;
  - interval: sparse sets of closed integer ranges built from bitmaps;
  - conflict: immutable conflict records and a deduplicating registry;
  - compact: stable in-place removal of sequence elements;
  - queue: generic ring-buffer queue usable as a forward-only sequence;
  - configset: summary of a configuration set producing conflict records;
  - cmd/llxconf: console utility printing conflict reports.

Typical usage is:

1. Collect configurations of a prediction step into configset.Set.

2. Prune stale configurations using Prune or compact functions.

3. Get conflict record and its interval representation for diagnostics.
*/
package llxconf

import (
	"fmt"
)

// Error codes used by subpackages:
const (
	InvalidArgumentError = 1 // nil predicate or sequence, malformed input
	OutOfRangeError      = 2 // bitmap index outside of capacity
)

// Error is the error type used by llxconf subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message.
	Message string
}

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidArgument = &Error{InvalidArgumentError, "invalid argument"}
	ErrOutOfRange      = &Error{OutOfRangeError, "index out of range"}
)

// NewError creates new Error structure.
func NewError(code int, msg string) *Error {
	return &Error{code, msg}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	te, valid := target.(*Error)
	return valid && te.Code == e.Code
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg)
}
