package namespace

import (
	"errors"
	"fmt"
)

// Sentinel errors for package namespace.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("path not found")
	ErrNotDirectory    = errors.New("not a directory")
	ErrEmptyCursor     = errors.New("cursor has no nodes")
	ErrSessionNotFound = errors.New("session not found")
)

// NotFoundError is returned by the resolver when a segment can not be walked.
// It always matches ErrNotFound; Err carries the finer cause, if any.
type NotFoundError struct {
	Segment string // segment that could not be resolved
	Partial string // absolute path resolved before the failure
	Err     error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("can not find path %q in %s: %v", e.Segment, e.Partial, e.Err)
	}
	return fmt.Sprintf("can not find path %q in %s", e.Segment, e.Partial)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
