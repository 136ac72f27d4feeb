package hnsw

import "fmt"

// Kind identifies a category of error the index can return, so callers
// can match on it with errors.Is against the sentinel values below.
type Kind int

const (
	// KindDuplicateID means Add was called with an id already present.
	KindDuplicateID Kind = iota
	// KindDimensionMismatch means an item or query's vector length
	// differs from the dimension established by the first insert.
	KindDimensionMismatch
	// KindInvalidVector means a vector has a non-finite component.
	KindInvalidVector
	// KindInternalInvariantViolation means a stored neighbor id could
	// not be resolved in the node table. This should never happen as
	// long as neighbor lists and the node table stay in sync; if it
	// does, it's a bug.
	KindInternalInvariantViolation
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateID:
		return "duplicate_id"
	case KindDimensionMismatch:
		return "dimension_mismatch"
	case KindInvalidVector:
		return "invalid_vector"
	case KindInternalInvariantViolation:
		return "internal_invariant_violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the index. It carries a Kind so
// callers can branch on failure category without parsing strings.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Is lets errors.Is(err, hnsw.ErrDuplicateID) and friends work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors for errors.Is comparisons. Only Kind is compared, so
// these can be used as targets regardless of message content.
var (
	ErrDuplicateID                = &Error{Kind: KindDuplicateID, msg: "duplicate id"}
	ErrDimensionMismatch          = &Error{Kind: KindDimensionMismatch, msg: "dimension mismatch"}
	ErrInvalidVector              = &Error{Kind: KindInvalidVector, msg: "invalid vector"}
	ErrInternalInvariantViolation = &Error{Kind: KindInternalInvariantViolation, msg: "internal invariant violation"}
)
