package record

import (
	"fmt"
)

// TypeBuilder accumulates property descriptors for a record type. Types are
// declared once, at schema-definition time, and are immutable after Build.
type TypeBuilder struct {
	name          string
	fields        []field
	index         map[string]int
	unknownStrict bool
	dup           []string
}

type fieldStep struct {
	b   *TypeBuilder
	idx int
}

// NewType creates a builder for a named record type. Unknown input keys are
// ignored by default; see UnknownStrict.
func NewType(name string) *TypeBuilder {
	return &TypeBuilder{name: name, index: map[string]int{}}
}

// Field registers a property descriptor with its coercer and returns a step
// for attaching modifiers to it.
func (b *TypeBuilder) Field(name string, c Coercer) *fieldStep {
	if _, exists := b.index[name]; exists {
		b.dup = append(b.dup, name)
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, field{name: name, coercer: c})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required.
func (f *fieldStep) Required() *fieldStep {
	f.b.fields[f.idx].required = true
	return f
}

// ReadOnly rejects writes to the field once construction has completed.
func (f *fieldStep) ReadOnly() *fieldStep {
	f.b.fields[f.idx].readOnly = true
	return f
}

// Check attaches a validation predicate, applied to the coerced value.
func (f *fieldStep) Check(fn func(v any) bool) *fieldStep {
	f.b.fields[f.idx].check = fn
	return f
}

// Default sets a default used when the field is absent and not required. The
// value passes through the field's coercion and validation on every
// construction; use DefaultFunc when the default is a mutable value that must
// be freshly materialized per instance.
func (f *fieldStep) Default(v any) *fieldStep {
	f.b.fields[f.idx].defaultFn = func() any { return v }
	return f
}

// DefaultFunc sets a default factory, invoked once per construction.
func (f *fieldStep) DefaultFunc(fn func() any) *fieldStep {
	f.b.fields[f.idx].defaultFn = fn
	return f
}

func (f *fieldStep) Field(name string, c Coercer) *fieldStep { return f.b.Field(name, c) }
func (f *fieldStep) UnknownStrict() *TypeBuilder             { return f.b.UnknownStrict() }
func (f *fieldStep) Build() (*Type, error)                   { return f.b.Build() }
func (f *fieldStep) MustBuild() *Type                        { return f.b.MustBuild() }

// UnknownStrict makes construction fail with unknown_key when the raw mapping
// carries keys that match no descriptor.
func (b *TypeBuilder) UnknownStrict() *TypeBuilder {
	b.unknownStrict = true
	return b
}

// Build validates the declaration and returns the immutable Type.
func (b *TypeBuilder) Build() (*Type, error) {
	if len(b.dup) > 0 {
		return nil, fmt.Errorf("record: duplicate field %q on type %s", b.dup[0], b.name)
	}
	fields := make([]field, len(b.fields))
	copy(fields, b.fields)
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.name] = i
	}
	return &Type{name: b.name, fields: fields, index: index, unknownStrict: b.unknownStrict}, nil
}

// MustBuild is like Build but panics on error.
func (b *TypeBuilder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
