package propbind

import "fmt"

// Record is the typed result of a bind: one value per schema field, in schema
// order. Scalar fields hold the parsed value, List fields a []any of parsed
// elements, Optional fields the inner value or nil when absent. The engine
// keeps no reference to a returned record.
type Record struct {
	schema Schema
	values []any
}

// NewRecord assembles a record from already-converted values, one per schema
// field in order. It is the entry point for layers that obtain values outside
// a bind, such as the struct exporter.
func NewRecord(schema Schema, values []any) (*Record, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	if len(values) != len(schema) {
		return nil, fmt.Errorf("record has %d values for %d schema fields", len(values), len(schema))
	}

	vs := make([]any, len(values))
	copy(vs, values)
	return &Record{schema: schema, values: vs}, nil
}

// Schema returns the schema the record was bound against.
func (r *Record) Schema() Schema { return r.schema }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.values) }

// Value returns the value of the i-th schema field.
func (r *Record) Value(i int) any { return r.values[i] }

// Get returns the value of the first schema field declared with key.
func (r *Record) Get(key string) (any, bool) {
	for i, f := range r.schema {
		if f.Key == key {
			return r.values[i], true
		}
	}
	return nil, false
}

// Map returns key to value for every field; for duplicate keys the first
// declaration wins. Absent optional fields appear with a nil value.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for i, f := range r.schema {
		if _, ok := out[f.Key]; ok {
			continue
		}
		out[f.Key] = r.values[i]
	}
	return out
}
