package propbind

import (
	"fmt"
	"os"
	"strings"
)

// ParseProperties parses properties text into a mapping. One key=value pair
// per line, split at the first '='; both sides are trimmed. Lines whose first
// non-space character is '#' or '!' are comments; blank lines are skipped.
// A remaining line without '=' aborts the parse with a MalformedLineError.
// Duplicate keys are legal and the last occurrence wins.
func ParseProperties(text string) (*Mapping, error) {
	m := NewMapping()
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &MalformedLineError{Line: i + 1, Text: line}
		}
		m.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return m, nil
}

// FormatProperties renders a mapping as properties text, one key=value line
// per key in mapping order. Parsing the result yields an equal mapping.
func FormatProperties(m *Mapping) string {
	var b strings.Builder
	for _, k := range m.Keys() {
		fmt.Fprintf(&b, "%s=%s\n", k, m.Get(k))
	}
	return b.String()
}

// ParseFile reads and parses a properties file. The file is read in one call
// and not held open afterwards; read failures are returned unchanged apart
// from naming the file.
func ParseFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read properties file %q: %w", path, err)
	}
	return ParseProperties(string(data))
}
