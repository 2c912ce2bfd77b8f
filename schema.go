package propbind

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldSpec describes how one record field is located and converted: the
// mapping key, the conversion kind, an optional literal default and an
// optional environment variable checked before the mapping.
type FieldSpec struct {
	Key     string
	Kind    Kind
	Default *string
	EnvVar  string
}

// Field starts a field declaration for key with the given kind.
func Field(key string, kind Kind) *FieldSpec {
	return &FieldSpec{Key: key, Kind: kind}
}

// WithDefault declares a literal default, used when neither the environment
// variable nor the mapping provides a value. An empty string is a valid
// default, distinct from declaring none.
func (f *FieldSpec) WithDefault(v string) *FieldSpec {
	f.Default = &v
	return f
}

// WithEnv names an environment variable whose value, when set, overrides the
// mapping value. A variable set to the empty string still counts as set.
func (f *FieldSpec) WithEnv(name string) *FieldSpec {
	f.EnvVar = name
	return f
}

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate reports whether the field declaration is well formed.
func (f *FieldSpec) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Key, validation.Required),
		validation.Field(&f.EnvVar, validation.Match(envNamePattern)),
		validation.Field(&f.Kind, validation.By(validateKind)),
	)
}

func validateKind(value interface{}) error {
	k, ok := value.(Kind)
	if !ok || k.parse == nil {
		return validation.NewError("validation_kind_missing", "must declare a conversion kind")
	}
	if k.nested {
		return validation.NewError("validation_kind_nested", "list and optional must wrap exactly one scalar kind")
	}
	return nil
}

// Schema is the ordered list of field declarations for one record type.
// Declare it once and bind it as often as needed; the engine never mutates it,
// so concurrent binds over the same schema need no coordination.
type Schema []*FieldSpec

// NewSchema assembles a schema from field declarations in binding order.
func NewSchema(fields ...*FieldSpec) Schema {
	return Schema(fields)
}

// Validate checks every field declaration. Bind runs this before resolving,
// so explicit calls are only needed to fail early at declaration time.
func (s Schema) Validate() error {
	for i, f := range s {
		if f == nil {
			return fmt.Errorf("field %d: nil field spec", i)
		}
		if err := f.Validate(); err != nil {
			return fmt.Errorf("field %d (key %q): %w", i, f.Key, err)
		}
	}
	return nil
}
