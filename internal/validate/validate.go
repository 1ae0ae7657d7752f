// Package validate implements the typed validation pipeline that coerces
// untrusted JSON into the strict internal schema.
//
// The rule set is closed and dispatched at compile time: primitive rules
// (Integer, Float, Boolean, String, List, Dict) coerce single values,
// enumeration rules (Mode, Order, HistoryDays, Feature, ItemType) narrow
// them to the fixed domain sets, and the composite rules (Filters, Plan)
// assemble whole objects. Every failure is an *apierr.APIError; the first
// invalid field aborts a composite validation, errors are not accumulated.
package validate

import (
	"strconv"
	"strings"
)

// toFloat coerces the JSON scalar shapes we accept into a float64.
// Numeric strings are accepted the same as numbers, so "3.9" and 3.9
// validate identically.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
