package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/brunoga/jpatch"
	"github.com/brunoga/jpatch/tree"
)

// ErrInvalidPatch is wrapped by errors about patch documents that are not an
// array of well formed operation objects.
var ErrInvalidPatch = errors.New("invalid patch document")

// DecodePatch reads a JSON Patch document from r.
func DecodePatch(r io.Reader) (jpatch.Patch, error) {
	v, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return ToPatch(v)
}

// ToPatch converts a decoded patch document into a Patch. Every operation
// must name its "op" and "path"; move and copy also need "from", while add,
// replace and test need a "value", which may be null. Operation values stay
// tree values. Each operation is validated.
func ToPatch(v any) (jpatch.Patch, error) {
	arr, ok := v.(*tree.Array)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array, got %s", ErrInvalidPatch, tree.KindOf(v))
	}

	p := make(jpatch.Patch, 0, arr.Len())
	for i, e := range arr.Items() {
		op, err := toOperation(e)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operation %d (%s): %w", i, op, err)
		}
		p = append(p, op)
	}
	return p, nil
}

func toOperation(v any) (jpatch.Operation, error) {
	var op jpatch.Operation
	obj, ok := v.(*tree.Object)
	if !ok {
		return op, fmt.Errorf("%w: expected an object, got %s", ErrInvalidPatch, tree.KindOf(v))
	}

	typ, err := stringMember(obj, "op")
	if err != nil {
		return op, err
	}
	op.Op = jpatch.OperationType(typ)
	if !op.Op.Valid() {
		return op, fmt.Errorf("%w: %q", jpatch.ErrUnknownOperation, typ)
	}
	if op.Path, err = stringMember(obj, "path"); err != nil {
		return op, err
	}
	if op.Op.HasFrom() {
		if op.From, err = stringMember(obj, "from"); err != nil {
			return op, err
		}
	}
	if op.Op.HasValue() {
		value, ok := obj.Get("value")
		if !ok {
			return op, fmt.Errorf("%w: missing \"value\"", ErrInvalidPatch)
		}
		op.Value = value
	}
	return op, nil
}

func stringMember(obj *tree.Object, key string) (string, error) {
	v, ok := obj.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrInvalidPatch, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %s", ErrInvalidPatch, key, tree.KindOf(v))
	}
	return s, nil
}

// ApplyJSON applies the JSON Patch document patch to the JSON document doc
// and returns the patched document in compact form together with the
// outcome of the last operation.
func ApplyJSON(doc, patch []byte, opts ...jpatch.Option) ([]byte, bool, error) {
	root, err := DecodeBytes(doc)
	if err != nil {
		return nil, false, err
	}
	p, err := DecodePatchBytes(patch)
	if err != nil {
		return nil, false, err
	}
	result, err := p.Apply(&root, opts...)
	if err != nil {
		return nil, false, err
	}
	out, err := EncodeBytes(root)
	if err != nil {
		return nil, false, err
	}
	return out, result, nil
}

// DecodePatchBytes is like DecodePatch but reads from data.
func DecodePatchBytes(data []byte) (jpatch.Patch, error) {
	v, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	return ToPatch(v)
}
