package propstruct

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/eugenenazirov/propbind"
)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	byteSliceType       = reflect.TypeOf([]byte(nil))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// boundField ties one struct field to its schema declaration. The schema and
// boundField slices produced by analyze are index-parallel, which is how
// record values find their way back into struct fields.
type boundField struct {
	index    []int
	typ      reflect.Type
	elem     reflect.Type
	spec     *propbind.FieldSpec
	optional bool
	list     bool
}

// DeriveSchema builds a propbind schema from the struct tags of v, which must
// be a struct or a pointer to one.
func DeriveSchema(v any) (propbind.Schema, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("propstruct: %T is not a struct or pointer to struct", v)
	}

	fields, err := analyze(t)
	if err != nil {
		return nil, err
	}
	return schemaOf(fields), nil
}

func schemaOf(fields []boundField) propbind.Schema {
	sch := make(propbind.Schema, len(fields))
	for i, f := range fields {
		sch[i] = f.spec
	}
	return sch
}

// analyze walks the struct type and produces one boundField per bindable
// field. Unexported fields and fields tagged `prop:"-"` are skipped; embedded
// structs without a prop tag are flattened.
func analyze(t reflect.Type) ([]boundField, error) {
	return analyzeFields(t, nil)
}

func analyzeFields(t reflect.Type, prefix []int) ([]boundField, error) {
	var fields []boundField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		key, tagged := sf.Tag.Lookup("prop")
		if key == "-" {
			continue
		}

		index := append(append([]int(nil), prefix...), i)

		if sf.Anonymous && !tagged && sf.Type.Kind() == reflect.Struct {
			nested, err := analyzeFields(sf.Type, index)
			if err != nil {
				return nil, err
			}
			fields = append(fields, nested...)
			continue
		}

		if key == "" {
			key = sf.Name
		}

		bf, err := bindField(sf, index, key)
		if err != nil {
			return nil, fmt.Errorf("propstruct: field %s: %w", sf.Name, err)
		}
		fields = append(fields, bf)
	}
	return fields, nil
}

func bindField(sf reflect.StructField, index []int, key string) (boundField, error) {
	bf := boundField{index: index, typ: sf.Type, elem: sf.Type}

	t := sf.Type
	switch {
	case isTextType(t):
		// a self-parsing type wins over its underlying kind
	case t.Kind() == reflect.Ptr:
		bf.optional = true
		bf.elem = t.Elem()
	case t.Kind() == reflect.Slice && t != byteSliceType:
		bf.list = true
		bf.elem = t.Elem()
	}

	kind, err := scalarKind(bf.elem)
	if err != nil {
		return boundField{}, err
	}
	switch {
	case bf.optional:
		kind = propbind.Optional(kind)
	case bf.list:
		kind = propbind.List(kind)
	}

	spec := propbind.Field(key, kind)
	if d, ok := sf.Tag.Lookup("default"); ok {
		spec = spec.WithDefault(d)
	}
	if e := sf.Tag.Get("env"); e != "" {
		spec = spec.WithEnv(e)
	}
	bf.spec = spec
	return bf, nil
}

func isTextType(t reflect.Type) bool {
	return reflect.PtrTo(t).Implements(textUnmarshalerType) && t.Kind() != reflect.Ptr
}

// scalarKind maps a Go type to the propbind kind carrying its values.
func scalarKind(t reflect.Type) (propbind.Kind, error) {
	if isTextType(t) {
		return textKind(t), nil
	}
	if t == durationType {
		return propbind.Duration, nil
	}

	switch t.Kind() {
	case reflect.String:
		return propbind.String, nil
	case reflect.Bool:
		return propbind.Bool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return propbind.Int, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return propbind.Uint, nil
	case reflect.Float32, reflect.Float64:
		return propbind.Float, nil
	default:
		return propbind.Kind{}, fmt.Errorf("unsupported type %s", t)
	}
}

// textKind wraps a type implementing encoding.TextUnmarshaler as a custom
// scalar kind. Formatting prefers TextMarshaler, then Stringer.
func textKind(t reflect.Type) propbind.Kind {
	parse := func(raw string) (any, error) {
		pv := reflect.New(t)
		if err := pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return nil, err
		}
		return pv.Elem().Interface(), nil
	}
	format := func(v any) string {
		if tm, ok := v.(encoding.TextMarshaler); ok {
			if b, err := tm.MarshalText(); err == nil {
				return string(b)
			}
		}
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v)
	}
	return propbind.Custom(t.String(), parse, format)
}
