// Package tree holds the JSON-like value model patched by jpatch.
//
// A tree value is an any holding one of: nil, bool, a number (json.Number or
// any Go integer or float kind), string, *Array or *Object. Containers are
// pointers so that patches can mutate them in place.
package tree

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the JSON kind of a tree value.
type Kind int

const (
	Invalid Kind = iota
	Null
	Bool
	Number
	String
	ArrayKind
	ObjectKind
)

var kindNames = [...]string{
	Invalid:    "invalid",
	Null:       "null",
	Bool:       "boolean",
	Number:     "number",
	String:     "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf returns the kind of v, or Invalid if v is not a tree value.
func KindOf(v any) Kind {
	switch v := v.(type) {
	case nil:
		return Null
	case bool:
		return Bool
	case string:
		return String
	case json.Number, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Number
	case *Array:
		if v == nil {
			return Null
		}
		return ArrayKind
	case *Object:
		if v == nil {
			return Null
		}
		return ObjectKind
	default:
		return Invalid
	}
}

// IsContainer reports whether v is an array or an object.
func IsContainer(v any) bool {
	k := KindOf(v)
	return k == ArrayKind || k == ObjectKind
}
