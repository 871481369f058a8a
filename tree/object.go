package tree

import "slices"

// Object is a string-keyed mapping that remembers the order in which its
// members were first inserted. The zero value is an empty object.
type Object struct {
	keys    []string
	members map[string]any
}

// NewObject returns an empty object with room for n members.
func NewObject(n int) *Object {
	return &Object{
		keys:    make([]string, 0, n),
		members: make(map[string]any, n),
	}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in insertion order. The returned slice is a
// copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Get returns the member named key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.members[key]
	return v, ok
}

// Has reports whether the object has a member named key.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. A new key is appended to the member order, an
// existing one keeps its position.
func (o *Object) Set(key string, v any) *Object {
	if o.members == nil {
		o.members = make(map[string]any)
	}
	if _, ok := o.members[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.members[key] = v
	return o
}

// Delete removes the member named key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.members[key]; !ok {
		return false
	}
	delete(o.members, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

// Range calls fn for every member in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.members[k]) {
			return
		}
	}
}

// Equal reports whether o and other hold structurally equal members. Member
// order is not significant.
func (o *Object) Equal(other *Object) bool {
	return Equal(o, other)
}
