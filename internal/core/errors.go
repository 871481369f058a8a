package core

import (
	"errors"
	"fmt"
)

// Reason classifies a PathError.
type Reason int

const (
	// NotFound means an object member or array index that had to exist did
	// not.
	NotFound Reason = iota + 1
	// IndexOutOfRange means an array insertion position lies past the append
	// position.
	IndexOutOfRange
	// MalformedPath means the path cannot be tokenized or uses a segment where
	// it is not allowed.
	MalformedPath
)

var (
	ErrNotFound        = errors.New("path not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMalformedPath   = errors.New("malformed path")
)

func (r Reason) sentinel() error {
	switch r {
	case NotFound:
		return ErrNotFound
	case IndexOutOfRange:
		return ErrIndexOutOfRange
	case MalformedPath:
		return ErrMalformedPath
	}
	return nil
}

func (r Reason) String() string {
	if err := r.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// PathError reports a path that could not be parsed or resolved against a
// tree.
type PathError struct {
	Reason Reason
	// Path is the offending path as given by the caller.
	Path string
	// Detail optionally names the segment or bound that failed.
	Detail string
}

func (e *PathError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Path)
	}
	return fmt.Sprintf("%s: %q: %s", e.Reason, e.Path, e.Detail)
}

// Unwrap returns the sentinel error matching the reason so that
// errors.Is(err, ErrNotFound) and friends work.
func (e *PathError) Unwrap() error {
	return e.Reason.sentinel()
}

func newPathError(r Reason, path string, format string, args ...any) *PathError {
	return &PathError{
		Reason: r,
		Path:   path,
		Detail: fmt.Sprintf(format, args...),
	}
}

// NotFoundError returns a NotFound PathError for path.
func NotFoundError(path string, format string, args ...any) *PathError {
	return newPathError(NotFound, path, format, args...)
}

// OutOfRangeError returns an IndexOutOfRange PathError for path.
func OutOfRangeError(path string, format string, args ...any) *PathError {
	return newPathError(IndexOutOfRange, path, format, args...)
}

// MalformedError returns a MalformedPath PathError for path.
func MalformedError(path string, format string, args ...any) *PathError {
	return newPathError(MalformedPath, path, format, args...)
}
