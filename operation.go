package jpatch

import (
	"fmt"

	"github.com/brunoga/jpatch/internal/core"
)

// OperationType defines the allowed JSON Patch operation types.
type OperationType string

const (
	OperationTypeAdd     OperationType = "add"
	OperationTypeRemove  OperationType = "remove"
	OperationTypeReplace OperationType = "replace"
	OperationTypeMove    OperationType = "move"
	OperationTypeCopy    OperationType = "copy"
	OperationTypeTest    OperationType = "test"
)

// OperationTypes lists every operation type in RFC 6902 order.
var OperationTypes = []OperationType{
	OperationTypeAdd,
	OperationTypeRemove,
	OperationTypeReplace,
	OperationTypeMove,
	OperationTypeCopy,
	OperationTypeTest,
}

// Valid reports whether t is one of the six operation types.
func (t OperationType) Valid() bool {
	switch t {
	case OperationTypeAdd, OperationTypeRemove, OperationTypeReplace,
		OperationTypeMove, OperationTypeCopy, OperationTypeTest:
		return true
	}
	return false
}

// HasValue reports whether operations of type t carry a value.
func (t OperationType) HasValue() bool {
	return t == OperationTypeAdd || t == OperationTypeReplace || t == OperationTypeTest
}

// HasFrom reports whether operations of type t carry a source path.
func (t OperationType) HasFrom() bool {
	return t == OperationTypeMove || t == OperationTypeCopy
}

// Operation represents a single operation in a Patch. Operations are never
// modified by Apply.
type Operation struct {
	Op    OperationType `json:"op"`
	Path  string        `json:"path"`
	Value any           `json:"value,omitempty"` // Used for "add", "replace", "test"
	From  string        `json:"from,omitempty"`  // Used for "move", "copy"
}

func (o Operation) String() string {
	if o.Op.HasFrom() {
		return fmt.Sprintf("%s %s -> %s", o.Op, o.From, o.Path)
	}
	return fmt.Sprintf("%s %s", o.Op, o.Path)
}

// Validate checks that the operation type is known and that its paths are
// well formed for it. It does not look at any tree.
func (o Operation) Validate() error {
	if !o.Op.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, o.Op)
	}

	var opts core.ParseOptions
	if o.Op.HasFrom() {
		if _, err := core.ParsePath(o.From, core.Target, opts); err != nil {
			return err
		}
	}
	if _, err := core.ParsePath(o.Path, pathContext(o.Op), opts); err != nil {
		return err
	}
	return nil
}

// pathContext returns how an operation of type t uses its path.
func pathContext(t OperationType) core.Context {
	switch t {
	case OperationTypeAdd, OperationTypeMove, OperationTypeCopy:
		return core.Destination
	case OperationTypeTest:
		return core.Test
	}
	return core.Target
}
