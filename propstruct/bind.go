package propstruct

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/eugenenazirov/propbind"
)

// Bind resolves the mapping into v, a non-nil pointer to a tagged struct.
// Resolution and conversion semantics are exactly those of propbind.Bind;
// on any error the struct is left untouched.
func Bind(v any, m *propbind.Mapping, opts ...propbind.Option) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("propstruct: target must be a non-nil pointer to struct, got %T", v)
	}

	fields, err := analyze(rv.Elem().Type())
	if err != nil {
		return err
	}

	rec, err := propbind.Bind(schemaOf(fields), m, opts...)
	if err != nil {
		return err
	}
	return populate(rv.Elem(), fields, rec)
}

// BindText parses properties text and binds it into v.
func BindText(v any, text string, opts ...propbind.Option) error {
	m, err := propbind.ParseProperties(text)
	if err != nil {
		return err
	}
	return Bind(v, m, opts...)
}

// BindFile reads and parses a properties file and binds it into v.
func BindFile(v any, path string, opts ...propbind.Option) error {
	m, err := propbind.ParseFile(path)
	if err != nil {
		return err
	}
	return Bind(v, m, opts...)
}

// BindDefaults binds v against an empty mapping: every field must resolve
// from its environment variable or default tag, or be a pointer.
func BindDefaults(v any, opts ...propbind.Option) error {
	return Bind(v, propbind.NewMapping(), opts...)
}

// populate copies record values into struct fields. The record was bound
// against the schema derived from the same field list, so values and fields
// line up by index. Narrowing to the concrete field type is the only step
// that can still fail, on overflow.
func populate(sv reflect.Value, fields []boundField, rec *propbind.Record) error {
	staged := make([]reflect.Value, len(fields))
	for i, f := range fields {
		val := rec.Value(i)

		switch {
		case f.optional:
			if val == nil {
				staged[i] = reflect.Zero(f.typ)
				continue
			}
			pv := reflect.New(f.elem)
			if err := setScalar(pv.Elem(), val, f.spec); err != nil {
				return err
			}
			staged[i] = pv
		case f.list:
			elems := val.([]any)
			sl := reflect.MakeSlice(f.typ, len(elems), len(elems))
			for j, e := range elems {
				if err := setScalar(sl.Index(j), e, f.spec); err != nil {
					return err
				}
			}
			staged[i] = sl
		default:
			fv := reflect.New(f.typ).Elem()
			if err := setScalar(fv, val, f.spec); err != nil {
				return err
			}
			staged[i] = fv
		}
	}

	for i, f := range fields {
		sv.FieldByIndex(f.index).Set(staged[i])
	}
	return nil
}

// setScalar narrows a kind-level value (int64/uint64/float64/bool/string or
// a concrete custom type) into the field's type, checking for overflow.
func setScalar(fv reflect.Value, val any, spec *propbind.FieldSpec) error {
	vv := reflect.ValueOf(val)
	if vv.Type() == fv.Type() {
		fv.Set(vv)
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(val.(string))
	case reflect.Bool:
		fv.SetBool(val.(bool))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := val.(int64)
		if fv.OverflowInt(n) {
			return overflowError(spec, fmt.Sprintf("%d", n), fv.Type())
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := val.(uint64)
		if fv.OverflowUint(n) {
			return overflowError(spec, fmt.Sprintf("%d", n), fv.Type())
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n := val.(float64)
		if fv.OverflowFloat(n) {
			return overflowError(spec, fmt.Sprintf("%g", n), fv.Type())
		}
		fv.SetFloat(n)
	default:
		return fmt.Errorf("propstruct: cannot assign %T to %s (property %q)", val, fv.Type(), spec.Key)
	}
	return nil
}

func overflowError(spec *propbind.FieldSpec, raw string, t reflect.Type) error {
	return &propbind.ConversionError{
		Key:  spec.Key,
		Raw:  raw,
		Type: t.String(),
		Err:  errors.New("value overflows field type"),
	}
}
