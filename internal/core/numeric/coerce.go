// Package numeric converts loosely typed form and JSON values into float64.
//
// Operators leave fields blank or paste localized numbers ("1 234,50"), so
// coercion never fails: values that are absent or not numeric report ok=false
// and callers substitute their own fallback.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Float coerces v to a finite float64.
// ok is false for nil, empty or non-numeric strings, NaN and infinities.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case json.Number:
		return Parse(string(n))
	case string:
		return Parse(n)
	case *float64:
		if n == nil {
			return 0, false
		}
		return finite(*n)
	case *string:
		if n == nil {
			return 0, false
		}
		return Parse(*n)
	}
	return 0, false
}

// Or returns the coerced value of v, or fallback when v is not numeric.
func Or(v any, fallback float64) float64 {
	if f, ok := Float(v); ok {
		return f
	}
	return fallback
}

// OrNonZero is Or for parameters with a declared default: a value that
// coerces to exactly zero also yields the default.
func OrNonZero(v any, fallback float64) float64 {
	if f, ok := Float(v); ok && f != 0 {
		return f
	}
	return fallback
}

// Parse parses a numeric string. Whitespace (including no-break spaces used
// as thousand separators) is ignored and a decimal comma is accepted.
// When both separators appear, dots are grouping and the comma is decimal.
func Parse(s string) (float64, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		}
		if strings.Count(s, ",") > 1 {
			return 0, false
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	// ParseFloat also accepts spellings like "inf" and "nan"; finite rejects those.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
