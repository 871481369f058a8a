package tree

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// FromGo converts plain Go values into tree values. Maps with string keys
// become objects (members sorted by key, since Go maps have no order), slices
// and arrays become arrays, and pointers are followed. Values that are
// already tree values are returned unchanged.
func FromGo(v any) (any, error) {
	switch v := v.(type) {
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, nil
	case *Array, *Object:
		return v, nil
	case []any:
		if v == nil {
			return nil, nil
		}
		arr := &Array{items: make([]any, len(v))}
		for i, e := range v {
			tv, err := FromGo(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.items[i] = tv
		}
		return arr, nil
	case map[string]any:
		if v == nil {
			return nil, nil
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject(len(keys))
		for _, k := range keys {
			tv, err := FromGo(v[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj.Set(k, tv)
		}
		return obj, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

// MustFromGo is like FromGo but panics on failure.
func MustFromGo(v any) any {
	tv, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return tv
}

func fromReflect(rv reflect.Value) (any, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return FromGo(rv.Elem().Interface())
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return FromGo(items)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %v", rv.Type().Key())
		}
		if rv.IsNil() {
			return nil, nil
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromGo(m)
	}
	return nil, fmt.Errorf("unsupported type %v", rv.Type())
}

// ToGo converts a tree value into plain Go values: objects become
// map[string]any and arrays become []any. Member order is lost.
func ToGo(v any) any {
	switch v := v.(type) {
	case *Object:
		if v == nil {
			return nil
		}
		m := make(map[string]any, v.Len())
		v.Range(func(k string, e any) bool {
			m[k] = ToGo(e)
			return true
		})
		return m
	case *Array:
		if v == nil {
			return nil
		}
		items := make([]any, v.Len())
		for i, e := range v.items {
			items[i] = ToGo(e)
		}
		return items
	}
	return v
}
