package tree

import "slices"

// Array is an ordered sequence of tree values that can grow and shrink in
// place.
type Array struct {
	items []any
}

// NewArray returns an array holding items.
func NewArray(items ...any) *Array {
	return &Array{items: items}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Items returns the elements. The returned slice is shared with the array and
// must not be modified.
func (a *Array) Items() []any {
	if a == nil {
		return nil
	}
	return a.items
}

// Get returns the element at i.
func (a *Array) Get(i int) (any, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.items[i], true
}

// Set overwrites the element at i and reports whether i was in range.
func (a *Array) Set(i int, v any) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	a.items[i] = v
	return true
}

// Append adds v after the last element.
func (a *Array) Append(v any) *Array {
	a.items = append(a.items, v)
	return a
}

// Insert places v before the element at i, shifting the following elements
// right. i == Len() appends. It reports whether i was a valid position.
func (a *Array) Insert(i int, v any) bool {
	if i < 0 || i > a.Len() {
		return false
	}
	a.items = slices.Insert(a.items, i, v)
	return true
}

// RemoveAt deletes the element at i, shifting the following elements left, and
// returns it.
func (a *Array) RemoveAt(i int) (any, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	v := a.items[i]
	a.items = slices.Delete(a.items, i, i+1)
	return v, true
}

// Equal reports whether a and other hold pairwise equal elements in the same
// order.
func (a *Array) Equal(other *Array) bool {
	return Equal(a, other)
}
