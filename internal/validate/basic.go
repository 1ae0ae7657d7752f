package validate

import (
	"fmt"

	"github.com/quaggy/edge/internal/apierr"
)

// Primitive rules share the same nil contract: a nil input passes
// through unvalidated (present == false) unless ForbidNone is set, in
// which case nil itself is a failure. Composite rules never rely on the
// pass-through; they require their sub-fields explicitly.

// Integer coerces a value to an integer. The value is parsed as a float
// first and truncated, so 3.9 and "3.9" both become 3.
type Integer struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the coerced integer and whether a value was present.
func (r Integer) Validate(v any) (int, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return 0, false, apierr.BadType("request", r.FieldName, "int")
		}
		return 0, false, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, false, apierr.BadType("request", r.FieldName, "int")
	}
	return int(f), true, nil
}

// Float coerces a value to a float64, with the same numeric-string
// leniency as Integer.
type Float struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the coerced float and whether a value was present.
func (r Float) Validate(v any) (float64, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return 0, false, apierr.BadType("request", r.FieldName, "float")
		}
		return 0, false, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, false, apierr.BadType("request", r.FieldName, "float")
	}
	return f, true, nil
}

// Boolean accepts an explicit token set rather than host truthiness:
// true/false, 1/0 and the strings "true"/"false"/"1"/"0".
type Boolean struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the coerced boolean and whether a value was present.
func (r Boolean) Validate(v any) (bool, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return false, false, apierr.BadType("request", r.FieldName, "bool")
		}
		return false, false, nil
	}
	switch x := v.(type) {
	case bool:
		return x, true, nil
	case float64:
		if x == 1 {
			return true, true, nil
		}
		if x == 0 {
			return false, true, nil
		}
	case int:
		if x == 1 {
			return true, true, nil
		}
		if x == 0 {
			return false, true, nil
		}
	case string:
		switch x {
		case "true", "1":
			return true, true, nil
		case "false", "0":
			return false, true, nil
		}
	}
	return false, false, apierr.BadType("request", r.FieldName, "bool")
}

// String stringifies a value. Stringification always succeeds for any
// non-nil input.
type String struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the stringified value and whether a value was present.
func (r String) Validate(v any) (string, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return "", false, apierr.BadType("request", r.FieldName, "string")
		}
		return "", false, nil
	}
	if s, ok := v.(string); ok {
		return s, true, nil
	}
	return fmt.Sprintf("%v", v), true, nil
}

// List requires the concrete JSON array shape; it performs no coercion.
type List struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the list and whether a value was present.
func (r List) Validate(v any) ([]any, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return nil, false, apierr.BadType("request", r.FieldName, "list")
		}
		return nil, false, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, false, apierr.BadType("request", r.FieldName, "list")
	}
	return l, true, nil
}

// Dict requires the concrete JSON object shape; it performs no coercion.
type Dict struct {
	FieldName  string
	ForbidNone bool
}

// Validate returns the map and whether a value was present.
func (r Dict) Validate(v any) (map[string]any, bool, error) {
	if v == nil {
		if r.ForbidNone {
			return nil, false, apierr.BadType("request", r.FieldName, "dict")
		}
		return nil, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false, apierr.BadType("request", r.FieldName, "dict")
	}
	return m, true, nil
}
