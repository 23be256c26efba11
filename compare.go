package gorecord

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// Equal reports deep structural equivalence of two JSON-primitive trees. It
// returns nil when the trees carry the same data, otherwise Issues whose first
// entry names the path of the first difference and both conflicting values.
//
// Values of different kinds that both belong to the numeric family (integer,
// float, or numeric-looking text) are compared by numeric value, so "123", 123
// and 123.0 are all equal. Text that merely looks special ("inf") is not a
// valid numeric literal and surfaces as malformed_number rather than a false
// equality. This comparator is the contract behind the round-trip guarantee of
// the JSON codec, not just a test helper.
func Equal(a, b any) error {
	return equalAt("", a, b)
}

type kind int

const (
	kindNull kind = iota
	kindBool
	kindString
	kindNumber
	kindMap
	kindSeq
	kindOther
)

func (k kind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBool:
		return "bool"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindMap:
		return "mapping"
	case kindSeq:
		return "sequence"
	default:
		return "unknown"
	}
}

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case string:
		return kindString
	case json.Number, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, *big.Int:
		return kindNumber
	case map[string]any:
		return kindMap
	case []any:
		return kindSeq
	default:
		return kindOther
	}
}

// normalizeText folds byte strings into character strings; encoding is not a
// semantic difference.
func normalizeText(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func displayPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func equalAt(path string, a, b any) error {
	a = normalizeText(a)
	b = normalizeText(b)
	ka, kb := kindOf(a), kindOf(b)

	if ka == kindMap && kb == kindMap {
		return equalMaps(path, a.(map[string]any), b.(map[string]any))
	}
	if ka == kindSeq && kb == kindSeq {
		return equalSeqs(path, a.([]any), b.([]any))
	}

	if ka != kb {
		numericFamily := func(k kind) bool { return k == kindNumber || k == kindString }
		if numericFamily(ka) && numericFamily(kb) {
			return equalNumeric(path, a, b)
		}
		return Issues{{Path: displayPath(path), Code: CodeMismatch,
			Message: fmt.Sprintf("kinds differ: %s vs %s", ka, kb)}}
	}

	switch ka {
	case kindNull:
		return nil
	case kindBool:
		if a.(bool) == b.(bool) {
			return nil
		}
	case kindString:
		if a.(string) == b.(string) {
			return nil
		}
	case kindNumber:
		return equalNumeric(path, a, b)
	default:
		return Issues{{Path: displayPath(path), Code: CodeMismatch,
			Message: fmt.Sprintf("unsupported kind: %T", a)}}
	}
	return Issues{{Path: displayPath(path), Code: CodeMismatch,
		Message: fmt.Sprintf("values differ: %v vs %v", a, b)}}
}

func equalNumeric(path string, a, b any) error {
	na, err := DecodeNumber(a)
	if err != nil {
		return PrefixIssues(displayPath(path), CodeMalformedNumber, err)
	}
	nb, err := DecodeNumber(b)
	if err != nil {
		return PrefixIssues(displayPath(path), CodeMalformedNumber, err)
	}
	if numericEqual(na, nb) {
		return nil
	}
	return Issues{{Path: displayPath(path), Code: CodeMismatch,
		Message: fmt.Sprintf("values differ: %v vs %v", a, b)}}
}

func equalMaps(path string, a, b map[string]any) error {
	keys := make([]string, 0, len(a)+len(b))
	seen := map[string]struct{}{}
	for k := range a {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, inA := a[k]
		_, inB := b[k]
		switch {
		case !inB:
			return Issues{{Path: displayPath(path), Code: CodeMismatch,
				Message: fmt.Sprintf("unexpected key %q", k)}}
		case !inA:
			return Issues{{Path: displayPath(path), Code: CodeMismatch,
				Message: fmt.Sprintf("missing key %q", k)}}
		}
		if err := equalAt(path+"/"+k, a[k], b[k]); err != nil {
			return err
		}
	}
	return nil
}

func equalSeqs(path string, a, b []any) error {
	if len(a) != len(b) {
		return Issues{{Path: displayPath(path), Code: CodeMismatch,
			Message: fmt.Sprintf("lengths differ: %d vs %d", len(a), len(b))}}
	}
	for i := range a {
		if err := equalAt(path+"/"+strconv.Itoa(i), a[i], b[i]); err != nil {
			return err
		}
	}
	return nil
}
