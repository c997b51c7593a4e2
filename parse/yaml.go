package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/nihil-go/nihil/ucl"
)

// parseYAML decodes a YAML document, keeping mapping order.
func parseYAML(d []byte) (ucl.Object, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return ucl.Object{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	obj, err := fromYAML(v)
	if err != nil {
		return ucl.Object{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return obj, nil
}

func fromYAML(v any) (ucl.Object, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := ucl.NewObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return ucl.Object{}, fmt.Errorf("%s: %w", k, err)
			}
			m.Insert(k, val)
		}
		return m.Object(), nil
	case []any:
		arr := ucl.NewArray[ucl.Object]()
		for i, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return ucl.Object{}, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.PushBack(val)
		}
		return arr.Object(), nil
	}
	return ucl.FromAny(v)
}
