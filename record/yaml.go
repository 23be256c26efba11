package record

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	gorecord "github.com/reoring/gorecord"
)

// ParseYAML decodes a YAML document into a primitive tree and constructs an
// instance of t from it. YAML integers arrive as int and pass through the
// numeric normalizer exactly like JSON numbers.
func ParseYAML(ctx context.Context, t *Type, data []byte) (*Instance, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: err.Error(), Cause: err}}
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected mapping document, got %T", node)}}
	}
	return t.Construct(ctx, m)
}

// yamlAnyToStringMap normalizes decoded YAML mappings to map[string]any,
// recursively. Mappings with non-string keys yield nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, mv := range m {
			out[k] = yamlNormalizeValue(mv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, mv := range m {
			ks, ok := k.(string)
			if !ok {
				return nil
			}
			out[ks] = yamlNormalizeValue(mv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlNormalizeValue(e)
		}
		return out
	default:
		return v
	}
}
