package propstruct

import (
	"fmt"
	"reflect"

	"github.com/eugenenazirov/propbind"
)

// Export renders the current values of v, a tagged struct or pointer to one,
// into a mapping in canonical textual form. Nil pointer fields are omitted.
func Export(v any) (*propbind.Mapping, error) {
	sv := reflect.ValueOf(v)
	for sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return nil, fmt.Errorf("propstruct: cannot export nil %T", v)
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("propstruct: %T is not a struct or pointer to struct", v)
	}

	fields, err := analyze(sv.Type())
	if err != nil {
		return nil, err
	}

	values := make([]any, len(fields))
	for i, f := range fields {
		fv := sv.FieldByIndex(f.index)
		switch {
		case f.optional:
			if fv.IsNil() {
				continue
			}
			values[i] = kindValue(fv.Elem())
		case f.list:
			elems := make([]any, fv.Len())
			for j := range elems {
				elems[j] = kindValue(fv.Index(j))
			}
			values[i] = elems
		default:
			values[i] = kindValue(fv)
		}
	}

	rec, err := propbind.NewRecord(schemaOf(fields), values)
	if err != nil {
		return nil, err
	}
	return rec.Export(), nil
}

// Convert exports src and binds the result into dst. Values carry over
// wherever both structs declare the same property key, regardless of field
// names; dst-only fields fall back to their own env/default handling.
func Convert(dst, src any, opts ...propbind.Option) error {
	m, err := Export(src)
	if err != nil {
		return err
	}
	return Bind(dst, m, opts...)
}

// kindValue widens a concrete field value back to the representation its
// kind's formatter expects: int64/uint64/float64/bool/string for the built-in
// kinds, the concrete value for custom text types and durations.
func kindValue(fv reflect.Value) any {
	t := fv.Type()
	if isTextType(t) || t == durationType {
		return fv.Interface()
	}

	switch fv.Kind() {
	case reflect.String:
		return fv.String()
	case reflect.Bool:
		return fv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fv.Uint()
	case reflect.Float32, reflect.Float64:
		return fv.Float()
	default:
		return fv.Interface()
	}
}
