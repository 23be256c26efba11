package gorecord

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
)

var (
	intPattern     = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][-+]?\d+)?$`)
)

// DecodeNumber normalizes a string or numeric primitive into an exact numeric
// value: int64 (or *big.Int beyond the int64 range) for integer text, float64
// for decimal/exponent text. Integer text never routes through float parsing,
// so magnitudes beyond exact float64 representation survive intact. Strings
// matching neither pattern fail with malformed_number; non-numeric kinds fail
// with coercion_error.
func DecodeNumber(v any) (any, error) {
	switch n := v.(type) {
	case string:
		return decodeNumericText(n)
	case json.Number:
		return decodeNumericText(string(n))
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return uintToNum(uint64(n)), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return uintToNum(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case *big.Int:
		return n, nil
	default:
		return nil, Issues{{Path: "/", Code: CodeCoercion, Message: fmt.Sprintf("not a number: %T", v)}}
	}
}

func decodeNumericText(s string) (any, error) {
	if intPattern.MatchString(s) {
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, Issues{{Path: "/", Code: CodeMalformedNumber, Message: fmt.Sprintf("invalid number: %q", s)}}
		}
		if i.IsInt64() {
			return i.Int64(), nil
		}
		return i, nil
	}
	if !decimalPattern.MatchString(s) {
		return nil, Issues{{Path: "/", Code: CodeMalformedNumber, Message: fmt.Sprintf("invalid number: %q", s)}}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeMalformedNumber, Message: fmt.Sprintf("invalid number: %q", s), Cause: err}}
	}
	return f, nil
}

func uintToNum(u uint64) any {
	if u <= math.MaxInt64 {
		return int64(u)
	}
	return new(big.Int).SetUint64(u)
}

// numericEqual compares two already-normalized numeric values by value, not
// representation. big.Float.Cmp is exact regardless of operand precision.
func numericEqual(a, b any) bool {
	fa, oka := toBigFloat(a)
	fb, okb := toBigFloat(b)
	if !oka || !okb {
		return false
	}
	return fa.Cmp(fb) == 0
}

func toBigFloat(v any) (*big.Float, bool) {
	switch n := v.(type) {
	case int64:
		return new(big.Float).SetInt64(n), true
	case *big.Int:
		return new(big.Float).SetInt(n), true
	case float64:
		if math.IsNaN(n) {
			return nil, false
		}
		return new(big.Float).SetFloat64(n), true
	default:
		return nil, false
	}
}
