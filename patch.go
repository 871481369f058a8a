// Package jpatch applies JSON Patch (RFC 6902) documents to in-memory JSON
// trees built with the tree package.
//
// Besides the six standard operations, test paths may contain "*" segments
// that stand for any index of an array: the test succeeds when at least one
// element matches.
//
// Operations are applied in order and commit as they go. A failing operation
// stops the run and leaves the effects of the operations before it in place.
package jpatch

import (
	"fmt"

	"github.com/brunoga/jpatch/internal/core"
)

// Patch is an ordered list of operations.
type Patch []Operation

// New creates a new empty Patch.
func New() Patch {
	return Patch{}
}

// mustParse panics if path is malformed for operations of type t.
func mustParse(t OperationType, path string, ctx core.Context) {
	if _, err := core.ParsePath(path, ctx, core.ParseOptions{}); err != nil {
		panic(fmt.Sprintf("invalid %s operation: %v", t, err))
	}
}

// Add creates a new operation to add a value at the specified path.
func (p Patch) Add(path string, value any) Patch {
	mustParse(OperationTypeAdd, path, core.Destination)
	return append(p, Operation{Op: OperationTypeAdd, Path: path, Value: value})
}

// Remove creates a new operation to remove the value at the specified path.
func (p Patch) Remove(path string) Patch {
	mustParse(OperationTypeRemove, path, core.Target)
	return append(p, Operation{Op: OperationTypeRemove, Path: path})
}

// Replace creates a new operation to replace the value at the specified path.
func (p Patch) Replace(path string, value any) Patch {
	mustParse(OperationTypeReplace, path, core.Target)
	return append(p, Operation{Op: OperationTypeReplace, Path: path, Value: value})
}

// Move creates a new operation to move a value from one path to another.
func (p Patch) Move(from, to string) Patch {
	mustParse(OperationTypeMove, from, core.Target)
	mustParse(OperationTypeMove, to, core.Destination)
	return append(p, Operation{Op: OperationTypeMove, Path: to, From: from})
}

// Copy creates a new operation to copy a value from one path to another.
func (p Patch) Copy(from, to string) Patch {
	mustParse(OperationTypeCopy, from, core.Target)
	mustParse(OperationTypeCopy, to, core.Destination)
	return append(p, Operation{Op: OperationTypeCopy, Path: to, From: from})
}

// Test creates a new operation to test the value at the specified path.
func (p Patch) Test(path string, value any) Patch {
	mustParse(OperationTypeTest, path, core.Test)
	return append(p, Operation{Op: OperationTypeTest, Path: path, Value: value})
}

// Validate checks every operation of the patch.
func (p Patch) Validate() error {
	for i, op := range p {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("operation %d (%s): %w", i, op, err)
		}
	}
	return nil
}

// Apply applies the patch to the tree rooted at *root, in order. The tree is
// modified in place; operations addressing the empty path replace *root.
//
// The returned boolean is the outcome of the last operation: for add,
// remove, replace, move and copy whether the tree changed, for test whether
// the values matched. An empty patch returns false.
//
// The first failing operation aborts the run. Its error wraps a *PathError
// for path problems. Operations applied before it are not rolled back.
func (p Patch) Apply(root *any, opts ...Option) (bool, error) {
	if root == nil {
		return false, ErrNilRoot
	}

	cfg := newConfig(opts)
	x := &executor{cfg: cfg}

	result := false
	for i, op := range p {
		outcome, err := x.apply(root, op)
		if err != nil {
			cfg.debug("operation failed", "index", i, "op", op.Op, "path", op.Path, "from", op.From, "error", err)
			return false, fmt.Errorf("operation %d (%s): %w", i, op, err)
		}
		cfg.debug("operation applied", "index", i, "op", op.Op, "path", op.Path, "from", op.From, "outcome", outcome)
		result = outcome
	}
	return result, nil
}

// Apply applies ops to the tree rooted at *root. See Patch.Apply.
func Apply(root *any, ops ...Operation) (bool, error) {
	return Patch(ops).Apply(root)
}
