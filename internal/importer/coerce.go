package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// extraPrefix marks free-form attribute keys in a record, e.g. "extra.color".
const extraPrefix = "extra."

// Coercion is deliberately lenient: a value that fails to parse becomes nil,
// never an error. Only a missing (nil) value on a required field is treated
// as a validation problem, and that decision belongs to the importers.

// nullLike reports whether a raw value stands for "no value": nil, the empty
// string, or a string spelling of none/null.
func nullLike(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		switch strings.ToLower(s) {
		case "", "none", "null":
			return true
		}
	}
	return false
}

// floatValue coerces a raw value to a float, or nil when it is absent or
// does not parse. Native JSON numbers pass through.
func floatValue(v any) *float64 {
	if nullLike(v) {
		return nil
	}
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		return &f
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	default:
		return nil
	}
}

// intValue coerces a raw value to an int, or nil when it is absent or does
// not parse. Native JSON numbers are accepted when integral.
func intValue(v any) *int {
	if nullLike(v) {
		return nil
	}
	switch t := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		return &n
	case float64:
		if t != float64(int(t)) {
			return nil
		}
		n := int(t)
		return &n
	case int:
		return &t
	default:
		return nil
	}
}

// boolValue coerces a raw value to a bool, or nil when it is absent. For
// strings, only "true", "1" and "yes" (case-insensitive) are true; every
// other string is false.
func boolValue(v any) *bool {
	if nullLike(v) {
		return nil
	}
	switch t := v.(type) {
	case string:
		b := false
		switch strings.ToLower(t) {
		case "true", "1", "yes":
			b = true
		}
		return &b
	case bool:
		return &t
	default:
		return nil
	}
}

// stringValue returns the raw value as a string pointer, nil when absent.
// Non-string scalars are stringified.
func stringValue(v any) *string {
	if v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

// trimmedString returns the value trimmed of surrounding whitespace, or nil
// when absent or blank.
func trimmedString(v any) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return nil
	}
	return &s
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// extraFields collects every "extra."-prefixed key of a record into an
// attribute map with the prefix stripped. Values are stringified; nil becomes
// the empty string. An empty result means the record carries no extra
// attributes and callers store nil instead.
func extraFields(rec Record) map[string]string {
	extra := make(map[string]string)
	for key, value := range rec {
		if !strings.HasPrefix(key, extraPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, extraPrefix)
		if value == nil {
			extra[name] = ""
		} else {
			extra[name] = stringify(value)
		}
	}
	return extra
}

// extraOrNil is extraFields with the "no extras means nil" rule applied.
func extraOrNil(rec Record) map[string]string {
	extra := extraFields(rec)
	if len(extra) == 0 {
		return nil
	}
	return extra
}
