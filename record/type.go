package record

import (
	"context"
	"fmt"
	"sort"

	gorecord "github.com/reoring/gorecord"
)

// field is one property descriptor: metadata plus the coercion/validation
// pipeline for a named slot. Descriptors belong to the type, never to an
// instance, and are immutable once the type is built.
type field struct {
	name      string
	coercer   Coercer
	required  bool
	readOnly  bool
	check     func(v any) bool
	defaultFn func() any
}

// Type is an ordered collection of property descriptors defining a
// constructible, validated aggregate. Types are safe to share across
// concurrent constructions.
type Type struct {
	name          string
	fields        []field
	index         map[string]int
	unknownStrict bool
}

// Name returns the type's declared name.
func (t *Type) Name() string { return t.name }

// FieldNames returns the property names in declaration order.
func (t *Type) FieldNames() []string {
	names := make([]string, len(t.fields))
	for i, f := range t.fields {
		names[i] = f.name
	}
	return names
}

// Construct coerces and validates the raw mapping into a new instance,
// walking descriptors in declaration order. The first failure aborts; no
// partially-built instance is ever observable. A JSON null is treated the
// same as an absent key.
func (t *Type) Construct(ctx context.Context, raw map[string]any) (*Instance, error) {
	inst := &Instance{typ: t, values: make(map[string]any, len(t.fields))}
	for i := range t.fields {
		f := &t.fields[i]
		v, exists := raw[f.name]
		if v == nil {
			exists = false
		}
		if !exists {
			if f.required {
				return nil, gorecord.Issues{{Path: "/" + f.name, Code: gorecord.CodeMissingField,
					Message: "required field missing"}}
			}
			if f.defaultFn != nil {
				dv, err := coerceField(ctx, f, f.defaultFn())
				if err != nil {
					return nil, gorecord.PrefixIssues("/"+f.name, gorecord.CodeCoercion, err)
				}
				inst.values[f.name] = dv
			}
			continue
		}
		cv, err := coerceField(ctx, f, v)
		if err != nil {
			return nil, gorecord.PrefixIssues("/"+f.name, gorecord.CodeCoercion, err)
		}
		inst.values[f.name] = cv
	}
	if t.unknownStrict {
		if err := t.rejectUnknown(raw); err != nil {
			return nil, err
		}
	}
	inst.sealed = true
	return inst, nil
}

// rejectUnknown reports the first unknown key, in key-sorted order so the
// error is deterministic.
func (t *Type) rejectUnknown(raw map[string]any) error {
	var unknown []string
	for k := range raw {
		if _, known := t.index[k]; !known {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return gorecord.Issues{{Path: "/" + unknown[0], Code: gorecord.CodeUnknownKey,
		Message: "unknown key"}}
}

// coerceField runs the descriptor pipeline: type coercion, then the check
// predicate over the coerced value.
func coerceField(ctx context.Context, f *field, v any) (any, error) {
	cv := v
	if f.coercer != nil {
		var err error
		cv, err = f.coercer.Coerce(ctx, v)
		if err != nil {
			return nil, err
		}
	}
	if f.check != nil && !f.check(cv) {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeValidation,
			Message: fmt.Sprintf("check failed for value %v", cv)}}
	}
	return cv, nil
}
