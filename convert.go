package propbind

import "strings"

// convert turns the resolved raw value into the field's semantic value.
// Absence is an error for every kind except Optional, which binds to nil.
func convert(f *FieldSpec, res resolution) (any, error) {
	if !res.present {
		if f.Kind.wrap == wrapOptional {
			return nil, nil
		}
		return nil, &MissingFieldError{Key: f.Key}
	}

	if f.Kind.wrap == wrapList {
		return convertList(f, res.raw)
	}

	v, err := f.Kind.parse(res.raw)
	if err != nil {
		return nil, &ConversionError{Key: f.Key, Raw: res.raw, Type: f.Kind.String(), Err: err}
	}
	return v, nil
}

// convertList splits on ',' and parses each trimmed segment with the inner
// kind. An empty resolved string yields zero elements, not one empty-string
// element. Empty segments inside a non-empty string are parsed like any
// other segment.
func convertList(f *FieldSpec, raw string) (any, error) {
	if raw == "" {
		return []any{}, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, err := f.Kind.parse(part)
		if err != nil {
			return nil, &ConversionError{Key: f.Key, Raw: part, Type: f.Kind.String(), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
