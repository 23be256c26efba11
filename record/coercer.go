package record

import (
	"context"
	"fmt"
	"math"
	"math/big"

	gorecord "github.com/reoring/gorecord"
)

// Coercer converts a raw input value into the type a descriptor requires.
// Coercion is a single well-defined conversion; when no conversion exists for
// the source/target pair it fails with coercion_error.
type Coercer interface {
	Coerce(ctx context.Context, v any) (any, error)
}

// String returns the text coercer. Byte strings fold into character strings.
func String() Coercer { return stringCoercer{} }

// Bool returns the boolean coercer.
func Bool() Coercer { return boolCoercer{} }

// Int returns the exact-integer coercer. Numeric text and json.Number decode
// through the numeric normalizer, so integers beyond float64 precision are
// never rounded; values outside the int64 range come back as *big.Int.
func Int() Coercer { return intCoercer{} }

// Float returns the float64 coercer.
func Float() Coercer { return floatCoercer{} }

// Any returns the unconstrained coercer: the raw value is stored as-is.
func Any() Coercer { return anyCoercer{} }

// Of returns a coercer that constructs a nested record of type t from a
// mapping. Instances of t pass through unchanged.
func Of(t *Type) Coercer {
	if t == nil {
		panic("record: Of(nil)")
	}
	return recordCoercer{typ: t}
}

type stringCoercer struct{}

func (stringCoercer) Coerce(ctx context.Context, v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected string, got %T", v)}}
	}
}

type boolCoercer struct{}

func (boolCoercer) Coerce(ctx context.Context, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected bool, got %T", v)}}
	}
	return b, nil
}

type intCoercer struct{}

func (intCoercer) Coerce(ctx context.Context, v any) (any, error) {
	n, err := gorecord.DecodeNumber(v)
	if err != nil {
		return nil, err
	}
	switch t := n.(type) {
	case int64, *big.Int:
		return t, nil
	case float64:
		if math.Trunc(t) != t || math.IsInf(t, 0) {
			return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
				Message: fmt.Sprintf("fractional part not allowed for integer: %v", t)}}
		}
		bi, _ := big.NewFloat(t).Int(nil)
		if bi.IsInt64() {
			return bi.Int64(), nil
		}
		return bi, nil
	default:
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected integer, got %T", v)}}
	}
}

type floatCoercer struct{}

func (floatCoercer) Coerce(ctx context.Context, v any) (any, error) {
	n, err := gorecord.DecodeNumber(v)
	if err != nil {
		return nil, err
	}
	switch t := n.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case *big.Int:
		f, _ := new(big.Float).SetInt(t).Float64()
		return f, nil
	default:
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected number, got %T", v)}}
	}
}

type anyCoercer struct{}

func (anyCoercer) Coerce(ctx context.Context, v any) (any, error) { return v, nil }

type recordCoercer struct{ typ *Type }

func (c recordCoercer) Coerce(ctx context.Context, v any) (any, error) {
	switch t := v.(type) {
	case *Instance:
		if t.typ != c.typ {
			return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
				Message: fmt.Sprintf("expected %s record, got %s", c.typ.name, t.typ.name)}}
		}
		return t, nil
	case map[string]any:
		return c.typ.Construct(ctx, t)
	default:
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeCoercion,
			Message: fmt.Sprintf("expected mapping for %s record, got %T", c.typ.name, v)}}
	}
}
