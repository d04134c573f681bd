package ivtree

import "errors"

// Sentinel errors returned by this package. Wrap them with fmt.Errorf and
// %w at call sites rather than introducing new error types.
var (
	// ErrInvalidInterval is returned when a caller supplies a null
	// interval (Begin >= End) to a constructor or mutator. Queries given a
	// null range return no results rather than this error.
	ErrInvalidInterval = errors.New("ivtree: invalid interval")

	// ErrNotFound is returned by Remove when the interval is not present
	// in the tree.
	ErrNotFound = errors.New("ivtree: interval not found")

	// ErrInvariantViolation indicates a bug in this package, never a
	// caller error. It is only ever produced by Verify, and is also used
	// as the panic value for defensive assertions reached by correct
	// callers.
	ErrInvariantViolation = errors.New("ivtree: invariant violation")
)
