package record

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"math/big"

	gorecord "github.com/reoring/gorecord"
)

func init() {
	gob.Register(map[string]any{})
	gob.Register([]any{})
	gob.Register(&big.Int{})
}

// Capture serializes the instance's coerced field values into an opaque byte
// form understood only by Restore of the same codec version. Descriptors are
// type-level metadata and are not part of the state.
func Capture(inst *Instance) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(captureValue(inst).(map[string]any)); err != nil {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: err.Error(), Cause: err}}
	}
	return buf.Bytes(), nil
}

func captureValue(v any) any {
	switch t := v.(type) {
	case *Instance:
		m := make(map[string]any, len(t.values))
		for k, fv := range t.values {
			m[k] = captureValue(fv)
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = captureValue(e)
		}
		return out
	default:
		return v
	}
}

// Restore reconstructs an instance of t from captured state. The captured
// values are already coerced and valid, so restore rebuilds instances
// descriptor by descriptor without re-deriving them from raw input; read-only
// fields are sealed again on the result.
func Restore(ctx context.Context, t *Type, data []byte) (*Instance, error) {
	var m map[string]any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: err.Error(), Cause: err}}
	}
	return restoreInstance(ctx, t, m)
}

func restoreInstance(ctx context.Context, t *Type, m map[string]any) (*Instance, error) {
	inst := &Instance{typ: t, values: make(map[string]any, len(t.fields))}
	for i := range t.fields {
		f := &t.fields[i]
		v, ok := m[f.name]
		if !ok {
			continue
		}
		rv, err := restoreValue(ctx, f.coercer, v)
		if err != nil {
			return nil, gorecord.PrefixIssues("/"+f.name, gorecord.CodeCoercion, err)
		}
		inst.values[f.name] = rv
	}
	inst.sealed = true
	return inst, nil
}

func restoreValue(ctx context.Context, c Coercer, v any) (any, error) {
	switch co := c.(type) {
	case recordCoercer:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
				Message: fmt.Sprintf("corrupt state: expected mapping for %s record, got %T", co.typ.name, v)}}
		}
		return restoreInstance(ctx, co.typ, m)
	case listCoercer:
		src, ok := v.([]any)
		if !ok {
			return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
				Message: fmt.Sprintf("corrupt state: expected sequence, got %T", v)}}
		}
		out := make([]any, len(src))
		for i, e := range src {
			ev, err := restoreValue(ctx, co.elem, e)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	default:
		return v, nil
	}
}
