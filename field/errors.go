package field

import (
	"errors"
	"fmt"
)

// Contract violations reported by field operations. Every error returned by
// this package wraps exactly one of these, match them with errors.Is.
var (
	ErrInvalidSize        = errors.New("invalid size")
	ErrInvalidDomain      = errors.New("invalid domain")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrIncompatibleFields = errors.New("incompatible fields")
	ErrInvalidCallable    = errors.New("invalid callable")
)

// Error carries the failing operation along with the violated contract
type Error struct {
	Op     string // Operation name, e.g. "add", "at"
	Err    error  // One of the Err* sentinels
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("field: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("field: %s: %v: %s", e.Op, e.Err, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, sentinel error, format string, args ...any) *Error {
	return &Error{Op: op, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}
