package propbind

import "strings"

// Export serializes the record back into a mapping keyed by each field's key,
// with values in canonical textual form: scalars through their kind's
// formatter, lists re-joined with ",", absent optional fields omitted
// entirely rather than emitted as empty strings.
func (r *Record) Export() *Mapping {
	m := NewMapping()
	for i, f := range r.schema {
		v := r.values[i]
		if v == nil {
			continue
		}
		m.Set(f.Key, formatValue(f.Kind, v))
	}
	return m
}

func formatValue(k Kind, v any) string {
	if k.wrap != wrapList {
		return k.format(v)
	}

	elems := v.([]any)
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = k.format(e)
	}
	return strings.Join(parts, ",")
}

// Convert re-binds a record's exported values against another schema. Values
// transfer wherever the two schemas declare the same key; fields only the
// target declares fall back to their own environment, default or optional
// handling.
func Convert(rec *Record, target Schema, opts ...Option) (*Record, error) {
	return Bind(target, rec.Export(), opts...)
}
