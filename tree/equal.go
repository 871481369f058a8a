package tree

import (
	"encoding/json"
	"math/big"
)

// Equal performs a deep structural comparison of two tree values.
//
// Numbers compare by numeric value whatever their Go representation, arrays
// compare element-wise in order and objects compare member-wise regardless of
// member order. Values of different kinds are never equal, and neither are
// values that are not tree values at all.
func Equal(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case Null:
		return true
	case Bool:
		return a.(bool) == b.(bool)
	case String:
		return a.(string) == b.(string)
	case Number:
		return numberEqual(a, b)
	case ArrayKind:
		x, y := a.(*Array), b.(*Array)
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for i, xv := range x.items {
			if !Equal(xv, y.items[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		x, y := a.(*Object), b.(*Object)
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for _, k := range x.keys {
			yv, ok := y.members[k]
			if !ok || !Equal(x.members[k], yv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numberEqual compares exactly unless a binary float is involved, in which
// case both sides are compared as float64 so that 0.1 equals "0.10".
func numberEqual(a, b any) bool {
	if isFloat(a) || isFloat(b) {
		fa, okA := toFloat(a)
		fb, okB := toFloat(b)
		return okA && okB && fa == fb
	}
	ra, okA := toRat(a)
	rb, okB := toRat(b)
	return okA && okB && ra.Cmp(rb) == 0
}

func isFloat(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}

func toRat(v any) (*big.Rat, bool) {
	r := new(big.Rat)
	switch n := v.(type) {
	case json.Number:
		return r.SetString(string(n))
	case int:
		return r.SetInt64(int64(n)), true
	case int8:
		return r.SetInt64(int64(n)), true
	case int16:
		return r.SetInt64(int64(n)), true
	case int32:
		return r.SetInt64(int64(n)), true
	case int64:
		return r.SetInt64(n), true
	case uint:
		return r.SetUint64(uint64(n)), true
	case uint8:
		return r.SetUint64(uint64(n)), true
	case uint16:
		return r.SetUint64(uint64(n)), true
	case uint32:
		return r.SetUint64(uint64(n)), true
	case uint64:
		return r.SetUint64(n), true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if r, ok := toRat(v); ok {
		f, _ := r.Float64()
		return f, true
	}
	return 0, false
}
