package record

import (
	"context"
	"math/big"

	gorecord "github.com/reoring/gorecord"
)

// Instance is a validated value conforming to exactly one Type. Instances are
// created only through Type.Construct (or Restore) and mutated only through
// Set; they are not safe for concurrent mutation.
type Instance struct {
	typ    *Type
	values map[string]any
	sealed bool
}

// Type returns the record type this instance conforms to.
func (i *Instance) Type() *Type { return i.typ }

// Get returns the coerced value of the named field and whether it is set.
func (i *Instance) Get(name string) (any, bool) {
	v, ok := i.values[name]
	return v, ok
}

// Set re-runs coercion and validation for the named field and stores the
// result. Writes to read-only fields are rejected once construction has
// completed.
func (i *Instance) Set(ctx context.Context, name string, v any) error {
	idx, ok := i.typ.index[name]
	if !ok {
		return gorecord.Issues{{Path: "/" + name, Code: gorecord.CodeUnknownKey,
			Message: "no such field on " + i.typ.name}}
	}
	f := &i.typ.fields[idx]
	if f.readOnly && i.sealed {
		return gorecord.Issues{{Path: "/" + name, Code: gorecord.CodeImmutable,
			Message: "field is read-only"}}
	}
	cv, err := coerceField(ctx, f, v)
	if err != nil {
		return gorecord.PrefixIssues("/"+name, gorecord.CodeCoercion, err)
	}
	i.values[name] = cv
	return nil
}

// Equal reports structural equality: same type, and every field's coerced
// value compares equal, nested records recursively and sequences elementwise.
func (i *Instance) Equal(other *Instance) bool {
	if other == nil || i.typ != other.typ {
		return false
	}
	if len(i.values) != len(other.values) {
		return false
	}
	for k, av := range i.values {
		bv, ok := other.values[k]
		if !ok || !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for n := range av {
			if !valueEqual(av[n], bv[n]) {
				return false
			}
		}
		return true
	case *big.Int:
		bv, ok := b.(*big.Int)
		return ok && av.Cmp(bv) == 0
	default:
		return a == b
	}
}
