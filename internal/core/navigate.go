package core

import (
	"slices"
	"strconv"

	"github.com/brunoga/jpatch/tree"
)

// Resolve walks every segment of p but the last and returns the container
// that should hold the final segment, together with that segment unresolved.
func Resolve(root any, p Path) (any, Segment, error) {
	if len(p) == 0 {
		return nil, Segment{}, MalformedError("", "the root has no parent")
	}
	parent, err := walk(root, p, len(p)-1)
	if err != nil {
		return nil, Segment{}, err
	}
	return parent, p.Last(), nil
}

// Lookup returns the value p points at.
func Lookup(root any, p Path) (any, error) {
	return walk(root, p, len(p))
}

// Match is a value found by Collect together with the concrete path leading
// to it, wildcards replaced by the index that matched.
type Match struct {
	Path  Path
	Value any
}

// Collect returns every value reachable through p. Each Wildcard segment
// fans out over all indices of the array found at its depth; branches that
// fail to resolve below a wildcard are dropped, so the result may be empty.
// The part of p before the first wildcard must resolve.
func Collect(root any, p Path) ([]Match, error) {
	i := p.wildcardIndex()
	if i < 0 {
		v, err := Lookup(root, p)
		if err != nil {
			return nil, err
		}
		return []Match{{Path: p, Value: v}}, nil
	}

	start, err := walk(root, p, i)
	if err != nil {
		return nil, err
	}
	var out []Match
	prefix := make(Path, i, len(p))
	copy(prefix, p[:i])
	collect(start, prefix, p[i:], &out)
	return out, nil
}

func collect(v any, at, rest Path, out *[]Match) {
	if len(rest) == 0 {
		*out = append(*out, Match{Path: slices.Clone(at), Value: v})
		return
	}

	seg := rest[0]
	if seg.Kind == Wildcard {
		arr, ok := v.(*tree.Array)
		if !ok {
			return
		}
		for i, e := range arr.Items() {
			token := strconv.Itoa(i)
			idx := Segment{Kind: Index, Token: token, Key: token, Index: i}
			collect(e, append(at, idx), rest[1:], out)
		}
		return
	}

	next, ok := Child(v, seg)
	if !ok {
		return
	}
	collect(next, append(at, seg), rest[1:], out)
}

// walk follows the first n segments of p.
func walk(root any, p Path, n int) (any, error) {
	current := root
	for _, seg := range p[:n] {
		next, ok := Child(current, seg)
		if !ok {
			return nil, MissingError(current, p, seg)
		}
		current = next
	}
	return current, nil
}

// Child returns the value seg addresses inside container.
func Child(container any, seg Segment) (any, bool) {
	switch c := container.(type) {
	case *tree.Object:
		return c.Get(seg.Key)
	case *tree.Array:
		if seg.Kind != Index {
			return nil, false
		}
		return c.Get(seg.Index)
	}
	return nil, false
}

// MissingError returns the NotFound error for seg failing to address a value
// inside container while resolving p.
func MissingError(container any, p Path, seg Segment) error {
	switch c := container.(type) {
	case *tree.Object:
		return NotFoundError(p.String(), "member %q does not exist", seg.Key)
	case *tree.Array:
		if seg.Kind != Index {
			return NotFoundError(p.String(), "%s %q cannot address an array", seg.Kind, seg.Token)
		}
		return NotFoundError(p.String(), "index %d out of bounds [0:%d]", seg.Index, c.Len())
	}
	return NotFoundError(p.String(), "cannot descend into %s with %q", tree.KindOf(container), seg.Token)
}
