package record

import (
	"bytes"
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	gorecord "github.com/reoring/gorecord"
)

// FromJSON constructs an instance of t from an already-decoded JSON-primitive
// tree: mappings, sequences, text, numbers (json.Number preferred), booleans,
// null. Numeric fields pass through the exact-precision normalizer inside
// their descriptors' coercion step.
func FromJSON(ctx context.Context, t *Type, v any) (*Instance, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected mapping, got %T", v)}}
	}
	return t.Construct(ctx, m)
}

// ParseJSON decodes JSON text and constructs an instance of t. The decoder
// runs with UseNumber so numeric literals reach the descriptors as
// json.Number, never pre-rounded through float64.
func ParseJSON(ctx context.Context, t *Type, data []byte) (*Instance, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: err.Error(), Cause: err}}
	}
	return FromJSON(ctx, t, v)
}

// JSONData exports the instance as a pure JSON-primitive tree. Nested records
// become their own JSONData result, sequences are exported elementwise into
// fresh slices. Fields that were never set are omitted; defaulted fields are
// set at construction and therefore always exported.
func (i *Instance) JSONData() map[string]any {
	out := make(map[string]any, len(i.values))
	for _, f := range i.typ.fields {
		v, ok := i.values[f.name]
		if !ok {
			continue
		}
		out[f.name] = exportValue(v)
	}
	return out
}

func exportValue(v any) any {
	switch t := v.(type) {
	case *Instance:
		return t.JSONData()
	case []any:
		out := make([]any, len(t))
		for n, e := range t {
			out[n] = exportValue(e)
		}
		return out
	default:
		return v
	}
}

// MarshalJSON encodes the exported JSON-primitive tree.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.JSONData())
}
