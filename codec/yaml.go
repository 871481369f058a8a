package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/brunoga/jpatch/tree"
)

// DecodeYAML decodes a YAML document into a tree value. Mapping order is
// kept. Mapping keys that are not strings are converted with their YAML
// scalar spelling.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	tv, err := fromYAML(v)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return tv, nil
}

func fromYAML(v any) (any, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		obj := tree.NewObject(len(v))
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			tv, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(key, tv)
		}
		return obj, nil
	case []any:
		arr := tree.NewArray()
		for i, e := range v {
			tv, err := fromYAML(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(tv)
		}
		return arr, nil
	}
	return tree.FromGo(v)
}
