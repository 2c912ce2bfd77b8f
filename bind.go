package propbind

import (
	"fmt"
	"os"
)

// Option adjusts how a bind call resolves values.
type Option func(*binder)

type binder struct {
	lookupEnv LookupEnvFunc
}

// WithLookupEnv replaces the process environment lookup, typically with a
// snapshot for reproducible binds or a stub in tests.
func WithLookupEnv(fn LookupEnvFunc) Option {
	return func(b *binder) {
		b.lookupEnv = fn
	}
}

// Bind resolves and converts every schema field against the mapping, in
// schema order. The first missing or unconvertible field aborts the whole
// bind; a failed bind never returns a partial record. A nil mapping binds
// like an empty one.
func Bind(schema Schema, m *Mapping, opts ...Option) (*Record, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	b := &binder{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(b)
	}

	values := make([]any, len(schema))
	for i, f := range schema {
		v, err := convert(f, resolve(f, m, b.lookupEnv))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &Record{schema: schema, values: values}, nil
}

// BindText parses properties text and binds it against the schema.
func BindText(schema Schema, text string, opts ...Option) (*Record, error) {
	m, err := ParseProperties(text)
	if err != nil {
		return nil, err
	}
	return Bind(schema, m, opts...)
}

// BindFile reads and parses a properties file and binds it against the schema.
func BindFile(schema Schema, path string, opts ...Option) (*Record, error) {
	m, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Bind(schema, m, opts...)
}

// BindDefaults binds against an empty mapping: every field must resolve from
// its environment variable or declared default, or be Optional.
func BindDefaults(schema Schema, opts ...Option) (*Record, error) {
	return Bind(schema, NewMapping(), opts...)
}
