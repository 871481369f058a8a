package tree

import (
	clone "github.com/huandu/go-clone"
)

// Clone returns a deep copy of v. Scalars are returned as is; arrays and
// objects are copied recursively so that the result shares no container with
// v.
func Clone(v any) any {
	if !IsContainer(v) {
		return v
	}
	return clone.Clone(v)
}
