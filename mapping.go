package propbind

import "sort"

// Mapping is an insertion-ordered string-to-string collection, the parsed and
// normalized form of a properties source. Setting an existing key replaces
// its value in place, so the last occurrence wins while the key keeps its
// original position. The engine only reads mappings handed to a bind call.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// FromMap builds a mapping from a plain Go map. Keys are inserted in sorted
// order so the result is deterministic.
func FromMap(src map[string]string) *Mapping {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewMapping()
	for _, k := range keys {
		m.Set(k, src[k])
	}
	return m
}

// Set stores value under key, replacing any previous value.
func (m *Mapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Lookup returns the value for key and whether the key is present. A key set
// to the empty string is present.
func (m *Mapping) Lookup(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Get returns the value for key, or the empty string when absent.
func (m *Mapping) Get(key string) string {
	v, _ := m.Lookup(key)
	return v
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
