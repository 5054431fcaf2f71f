package jalali

import (
	"encoding/json"
	"strings"
)

// valueKind is the closed set of shapes the locator dispatches on.
type valueKind int

const (
	kindUnhandled valueKind = iota
	kindPrimitive
	kindDate
	kindMapping
)

func classify(value any) valueKind {
	switch value.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return kindPrimitive
	case Date, *Date:
		return kindDate
	case map[string]any:
		return kindMapping
	default:
		return kindUnhandled
	}
}

// IsDateKey reports whether key ends in "date", ignoring case.
func IsDateKey(key string) bool {
	const suffix = "date"
	if len(key) < len(suffix) {
		return false
	}
	return strings.EqualFold(key[len(key)-len(suffix):], suffix)
}

// Locate walks node and replaces, in place, every object value whose key ends
// in "date" (case-insensitive) with a Date built from its year, month and day
// fields. Other mappings are walked recursively; primitives and sequences are
// left alone. Missing or non-numeric date fields become zero.
//
// Locate mutates node. Cyclic graphs are not detected and recurse forever.
func Locate(node any) {
	m, ok := node.(map[string]any)
	if !ok {
		return
	}
	for key, value := range m {
		switch classify(value) {
		case kindMapping:
			if IsDateKey(key) {
				m[key] = dateFromMapping(value.(map[string]any))
				continue
			}
			Locate(value)
		case kindDate:
			if IsDateKey(key) {
				m[key] = asDate(value)
			}
		}
	}
}

// LocateCopy is the non-destructive form of Locate. The mapping spine of node
// is copied and the copy is localized; leaf values are shared with node.
func LocateCopy(node any) any {
	m, ok := node.(map[string]any)
	if !ok {
		return node
	}
	out := make(map[string]any, len(m))
	for key, value := range m {
		switch classify(value) {
		case kindMapping:
			if IsDateKey(key) {
				out[key] = dateFromMapping(value.(map[string]any))
			} else {
				out[key] = LocateCopy(value)
			}
		case kindDate:
			if IsDateKey(key) {
				out[key] = asDate(value)
			} else {
				out[key] = value
			}
		default:
			out[key] = value
		}
	}
	return out
}

func asDate(value any) Date {
	switch v := value.(type) {
	case Date:
		return v
	case *Date:
		if v == nil {
			return Date{}
		}
		return *v
	}
	return Date{}
}

func dateFromMapping(m map[string]any) Date {
	return Date{
		Year:  toInt(m["year"]),
		Month: toInt(m["month"]),
		Day:   toInt(m["day"]),
	}
}

// DateOf coerces a template or tree value into a Date. It accepts Date,
// *Date and year/month/day mappings; anything else reports false.
func DateOf(value any) (Date, bool) {
	switch classify(value) {
	case kindDate:
		if p, ok := value.(*Date); ok && p == nil {
			return Date{}, false
		}
		return asDate(value), true
	case kindMapping:
		return dateFromMapping(value.(map[string]any)), true
	}
	return Date{}, false
}

func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	}
	return 0
}
