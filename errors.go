package jpatch

import (
	"errors"

	"github.com/brunoga/jpatch/internal/core"
)

// PathError reports a path that could not be parsed or resolved. It is the
// only error a well formed operation can fail with.
type PathError = core.PathError

// Reason classifies a PathError.
type Reason = core.Reason

const (
	NotFound        = core.NotFound
	IndexOutOfRange = core.IndexOutOfRange
	MalformedPath   = core.MalformedPath
)

// Sentinels matched by errors.Is against a *PathError of the same reason.
var (
	ErrNotFound        = core.ErrNotFound
	ErrIndexOutOfRange = core.ErrIndexOutOfRange
	ErrMalformedPath   = core.ErrMalformedPath
)

var (
	// ErrUnknownOperation is returned for an operation whose type is none of
	// the six RFC 6902 types.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrInvalidValue is returned when an operation value cannot be turned
	// into a tree value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNilRoot is returned when Apply is given a nil root pointer.
	ErrNilRoot = errors.New("nil root")
)
