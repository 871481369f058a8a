package jpatch

import (
	"fmt"

	"github.com/brunoga/jpatch/internal/core"
	"github.com/brunoga/jpatch/tree"
)

// executor applies single operations to a tree.
type executor struct {
	cfg *config
}

// apply runs op against the tree rooted at *root and returns its outcome: for
// mutating operations whether the tree changed, for test whether the values
// matched.
func (x *executor) apply(root *any, op Operation) (bool, error) {
	switch op.Op {
	case OperationTypeAdd:
		return x.add(root, op)
	case OperationTypeRemove:
		return x.remove(root, op)
	case OperationTypeReplace:
		return x.replace(root, op)
	case OperationTypeMove:
		return x.move(root, op)
	case OperationTypeCopy:
		return x.copy(root, op)
	case OperationTypeTest:
		return x.test(root, op)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Op)
	}
}

func (x *executor) parse(path string, ctx core.Context) (core.Path, error) {
	return core.ParsePath(path, ctx, x.cfg.parse)
}

// value turns an operation value into a tree value the tree can own, so that
// later operations never modify the operation itself.
func value(v any) (any, error) {
	tv, err := tree.FromGo(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return tree.Clone(tv), nil
}

// add implements the "add" operation.
func (x *executor) add(root *any, op Operation) (bool, error) {
	p, err := x.parse(op.Path, core.Destination)
	if err != nil {
		return false, err
	}
	v, err := value(op.Value)
	if err != nil {
		return false, err
	}
	return insert(root, p, v, true)
}

// remove implements the "remove" operation.
func (x *executor) remove(root *any, op Operation) (bool, error) {
	p, err := x.parse(op.Path, core.Target)
	if err != nil {
		return false, err
	}
	if len(p) == 0 {
		return false, core.MalformedError(op.Path, "cannot remove the root")
	}
	if _, err := detach(*root, p); err != nil {
		return false, err
	}
	return true, nil
}

// replace implements the "replace" operation. The value is written even when
// it equals the current one.
func (x *executor) replace(root *any, op Operation) (bool, error) {
	p, err := x.parse(op.Path, core.Target)
	if err != nil {
		return false, err
	}
	v, err := value(op.Value)
	if err != nil {
		return false, err
	}
	if len(p) == 0 {
		*root = v
		return true, nil
	}

	parent, last, err := core.Resolve(*root, p)
	if err != nil {
		return false, err
	}
	switch tree.KindOf(parent) {
	case tree.ArrayKind:
		if last.Kind == core.Index && parent.(*tree.Array).Set(last.Index, v) {
			return true, nil
		}
	case tree.ObjectKind:
		obj := parent.(*tree.Object)
		if obj.Has(last.Key) {
			obj.Set(last.Key, v)
			return true, nil
		}
	}
	return false, core.MissingError(parent, p, last)
}

// move implements the "move" operation as a remove followed by an add. If
// the add fails the value stays removed.
func (x *executor) move(root *any, op Operation) (bool, error) {
	from, err := x.parse(op.From, core.Target)
	if err != nil {
		return false, err
	}
	p, err := x.parse(op.Path, core.Destination)
	if err != nil {
		return false, err
	}
	if len(from) == 0 {
		return false, core.MalformedError(op.From, "cannot move the root")
	}

	v, err := detach(*root, from)
	if err != nil {
		return false, err
	}
	return insert(root, p, v, false)
}

// copy implements the "copy" operation. The source is left untouched and the
// destination receives a deep copy.
func (x *executor) copy(root *any, op Operation) (bool, error) {
	from, err := x.parse(op.From, core.Target)
	if err != nil {
		return false, err
	}
	p, err := x.parse(op.Path, core.Destination)
	if err != nil {
		return false, err
	}

	v, err := core.Lookup(*root, from)
	if err != nil {
		return false, err
	}
	return insert(root, p, tree.Clone(v), false)
}

// test implements the "test" operation. With a wildcard in the path it
// succeeds when any of the values found matches; finding none is a mismatch,
// not an error.
func (x *executor) test(root *any, op Operation) (bool, error) {
	p, err := x.parse(op.Path, core.Test)
	if err != nil {
		return false, err
	}
	want, err := tree.FromGo(op.Value)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	if !p.HasWildcard() {
		got, err := core.Lookup(*root, p)
		if err != nil {
			return false, err
		}
		return tree.Equal(got, want), nil
	}

	matches, err := core.Collect(*root, p)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if tree.Equal(m.Value, want) {
			return true, nil
		}
	}
	return false, nil
}

// insert places v at p. With skipEqual an object member, or the root, that
// already holds a value equal to v is left alone and reported as unchanged.
// Array insertions always count as a change.
func insert(root *any, p core.Path, v any, skipEqual bool) (bool, error) {
	if len(p) == 0 {
		if skipEqual && tree.Equal(*root, v) {
			return false, nil
		}
		*root = v
		return true, nil
	}

	parent, last, err := core.Resolve(*root, p)
	if err != nil {
		return false, err
	}

	switch tree.KindOf(parent) {
	case tree.ArrayKind:
		arr := parent.(*tree.Array)
		switch last.Kind {
		case core.AppendMarker:
			arr.Append(v)
			return true, nil
		case core.Index:
			if !arr.Insert(last.Index, v) {
				return false, core.OutOfRangeError(p.String(), "index %d out of bounds [0:%d]", last.Index, arr.Len())
			}
			return true, nil
		}
	case tree.ObjectKind:
		obj := parent.(*tree.Object)
		if skipEqual {
			if cur, ok := obj.Get(last.Key); ok && tree.Equal(cur, v) {
				return false, nil
			}
		}
		obj.Set(last.Key, v)
		return true, nil
	}
	return false, core.MissingError(parent, p, last)
}

// detach removes the value at p, which must not be the root, and returns it.
func detach(root any, p core.Path) (any, error) {
	parent, last, err := core.Resolve(root, p)
	if err != nil {
		return nil, err
	}

	switch tree.KindOf(parent) {
	case tree.ArrayKind:
		if last.Kind == core.Index {
			if v, ok := parent.(*tree.Array).RemoveAt(last.Index); ok {
				return v, nil
			}
		}
	case tree.ObjectKind:
		obj := parent.(*tree.Object)
		if v, ok := obj.Get(last.Key); ok {
			obj.Delete(last.Key)
			return v, nil
		}
	}
	return nil, core.MissingError(parent, p, last)
}
