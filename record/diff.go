package record

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	gorecord "github.com/reoring/gorecord"
)

// DiffKind classifies a single difference between two instances.
type DiffKind int

const (
	DiffUnchanged DiffKind = iota
	DiffAdded
	DiffRemoved
	DiffModified
)

func (k DiffKind) String() string {
	switch k {
	case DiffUnchanged:
		return "UNCHANGED"
	case DiffAdded:
		return "ADDED"
	case DiffRemoved:
		return "REMOVED"
	case DiffModified:
		return "MODIFIED"
	default:
		return "UNKNOWN"
	}
}

// DiffEntry records one difference and where it was found.
type DiffEntry struct {
	Kind  DiffKind
	Path  string // JSON Pointer into both instances
	Base  any    // value on the base side; nil for ADDED
	Other any    // value on the other side; nil for REMOVED
}

func (e DiffEntry) String() string {
	return fmt.Sprintf("<%s %s>", e.Kind, e.Path)
}

// DiffOptions tunes scalar comparison during Diff.
type DiffOptions struct {
	IgnoreWhitespace bool // collapse runs of whitespace in text
	IgnoreCase       bool // upper-case fold text
	NormalizeUnicode bool // apply Unicode NFC to text
	IncludeUnchanged bool // also emit UNCHANGED entries
}

// DefaultDiffOptions normalizes whitespace and Unicode form but preserves
// case.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{IgnoreWhitespace: true, NormalizeUnicode: true}
}

// Diff compares two instances of the same record type field by field, in
// declaration order, and returns the differences. Nested records recurse;
// sequences are compared positionally, with surplus elements reported as
// added or removed.
func Diff(a, b *Instance, opts DiffOptions) ([]DiffEntry, error) {
	if a == nil || b == nil || a.typ != b.typ {
		return nil, gorecord.Issues{{Path: "/", Code: gorecord.CodeMismatch,
			Message: "cannot diff instances of different record types"}}
	}
	var out []DiffEntry
	diffInstance("", a, b, opts, &out)
	return out, nil
}

func diffInstance(path string, a, b *Instance, opts DiffOptions, out *[]DiffEntry) {
	for _, f := range a.typ.fields {
		p := path + "/" + f.name
		av, aok := a.values[f.name]
		bv, bok := b.values[f.name]
		switch {
		case !aok && !bok:
		case !aok:
			*out = append(*out, DiffEntry{Kind: DiffAdded, Path: p, Other: bv})
		case !bok:
			*out = append(*out, DiffEntry{Kind: DiffRemoved, Path: p, Base: av})
		default:
			diffValue(p, av, bv, opts, out)
		}
	}
}

func diffValue(path string, av, bv any, opts DiffOptions, out *[]DiffEntry) {
	if ai, ok := av.(*Instance); ok {
		if bi, ok := bv.(*Instance); ok && ai.typ == bi.typ {
			diffInstance(path, ai, bi, opts, out)
			return
		}
	}
	if al, ok := av.([]any); ok {
		if bl, ok := bv.([]any); ok {
			diffLists(path, al, bl, opts, out)
			return
		}
	}
	if itemsEqual(av, bv, opts) {
		if opts.IncludeUnchanged {
			*out = append(*out, DiffEntry{Kind: DiffUnchanged, Path: path, Base: av, Other: bv})
		}
		return
	}
	*out = append(*out, DiffEntry{Kind: DiffModified, Path: path, Base: av, Other: bv})
}

func diffLists(path string, a, b []any, opts DiffOptions, out *[]DiffEntry) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		diffValue(path+"/"+strconv.Itoa(i), a[i], b[i], opts, out)
	}
	for i := n; i < len(a); i++ {
		*out = append(*out, DiffEntry{Kind: DiffRemoved, Path: path + "/" + strconv.Itoa(i), Base: a[i]})
	}
	for i := n; i < len(b); i++ {
		*out = append(*out, DiffEntry{Kind: DiffAdded, Path: path + "/" + strconv.Itoa(i), Other: b[i]})
	}
}

func itemsEqual(a, b any, opts DiffOptions) bool {
	if ai, ok := a.(*Instance); ok {
		bi, ok := b.(*Instance)
		return ok && ai.Equal(bi)
	}
	return gorecord.Equal(normalizeVal(a, opts), normalizeVal(b, opts)) == nil
}

func normalizeVal(v any, opts DiffOptions) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if opts.IgnoreWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if opts.IgnoreCase {
		s = strings.ToUpper(s)
	}
	if opts.NormalizeUnicode {
		s = norm.NFC.String(s)
	}
	return s
}
