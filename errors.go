package tracker

import "fmt"

// MalformedInputError reports an ingest-time validation failure: a missing
// field, an unparseable timestamp, or a detection with non-positive w/h.
type MalformedInputError struct {
	Timestamp string // offending timestamp, if known; may be empty
	Field     string // offending field name, if known; may be empty
	Reason    string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Timestamp != "" && e.Field != "":
		return fmt.Sprintf("malformed input at %s (%s): %s", e.Timestamp, e.Field, e.Reason)
	case e.Timestamp != "":
		return fmt.Sprintf("malformed input at %s: %s", e.Timestamp, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("malformed input (%s): %s", e.Field, e.Reason)
	default:
		return fmt.Sprintf("malformed input: %s", e.Reason)
	}
}

// IOFailureError reports that an input could not be read or an output
// location could not be created/written.
type IOFailureError struct {
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("io failure at %s: %v", e.Path, e.Err)
}

func (e *IOFailureError) Unwrap() error {
	return e.Err
}

// InvariantViolation is a fatal, non-recoverable programming error: the
// assignment solver returned something other than a permutation, or a
// non-finite value reached the cost matrix. The engine never continues
// past one; callers should treat it like a panic (it is one, see engine.go).
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation (fatal): %s", e.Reason)
}
