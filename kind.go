package propbind

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseFunc converts one raw property string into a typed value.
type ParseFunc func(raw string) (any, error)

// FormatFunc renders a typed value back to its canonical textual form.
type FormatFunc func(v any) string

type wrapMode int

const (
	wrapNone wrapMode = iota
	wrapOptional
	wrapList
)

// Kind selects the conversion strategy for one field: a scalar type,
// optionally wrapped as Optional (absence binds to no value instead of
// failing) or List (comma-separated values). Wrappers apply to exactly one
// scalar kind; wrapping an already wrapped kind fails schema validation.
type Kind struct {
	wrap   wrapMode
	name   string
	parse  ParseFunc
	format FormatFunc
	nested bool
}

// Custom builds a scalar kind from a parse/format pair. The name appears in
// conversion error messages.
func Custom(name string, parse ParseFunc, format FormatFunc) Kind {
	return Kind{name: name, parse: parse, format: format}
}

// Optional wraps a scalar kind: a field with no resolvable value binds to
// "no value" instead of failing.
func Optional(inner Kind) Kind {
	out := inner
	out.wrap = wrapOptional
	out.nested = inner.nested || inner.wrap != wrapNone
	return out
}

// List wraps a scalar kind as a comma-separated list. Segments are trimmed
// before parsing; an empty resolved string binds to a zero-length list.
func List(inner Kind) Kind {
	out := inner
	out.wrap = wrapList
	out.nested = inner.nested || inner.wrap != wrapNone
	return out
}

func (k Kind) String() string {
	switch k.wrap {
	case wrapOptional:
		return "optional " + k.name
	case wrapList:
		return "list of " + k.name
	default:
		return k.name
	}
}

// Built-in scalar kinds. Integer kinds carry values as int64/uint64, Float as
// float64; the propstruct layer narrows them to concrete field types.
var (
	// String passes raw values through unchanged.
	String = Custom("string",
		func(raw string) (any, error) { return raw, nil },
		func(v any) string { return v.(string) })

	// Bool accepts exactly the literals "true" and "false", case-insensitively.
	// Numeric forms such as "1" are rejected.
	Bool = Custom("bool",
		parseStrictBool,
		func(v any) string { return strconv.FormatBool(v.(bool)) })

	// Int parses signed decimal integers.
	Int = Custom("int",
		func(raw string) (any, error) {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		func(v any) string { return strconv.FormatInt(v.(int64), 10) })

	// Uint parses unsigned decimal integers.
	Uint = Custom("uint",
		func(raw string) (any, error) {
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		func(v any) string { return strconv.FormatUint(v.(uint64), 10) })

	// Float parses decimal floating point numbers.
	Float = Custom("float",
		func(raw string) (any, error) {
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		func(v any) string { return strconv.FormatFloat(v.(float64), 'g', -1, 64) })

	// Duration parses Go duration literals such as "1m30s".
	Duration = Custom("duration",
		func(raw string) (any, error) {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
		func(v any) string { return v.(time.Duration).String() })
)

func parseStrictBool(raw string) (any, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, fmt.Errorf("invalid boolean literal %q (want true or false)", raw)
	}
}
