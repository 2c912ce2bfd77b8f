package schemadef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/propbind"
)

// document mirrors the YAML layout of a schema declaration file.
type document struct {
	Fields []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Key      string  `yaml:"key"`
	Type     string  `yaml:"type"`
	Default  *string `yaml:"default"`
	Env      string  `yaml:"env"`
	List     bool    `yaml:"list"`
	Optional bool    `yaml:"optional"`
}

var kinds = map[string]propbind.Kind{
	"string":   propbind.String,
	"bool":     propbind.Bool,
	"int":      propbind.Int,
	"uint":     propbind.Uint,
	"float":    propbind.Float,
	"duration": propbind.Duration,
}

// Parse decodes a YAML schema declaration into a propbind schema.
func Parse(data []byte) (propbind.Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema declaration: %w", err)
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("schema declaration has no fields")
	}

	sch := make(propbind.Schema, 0, len(doc.Fields))
	for i, d := range doc.Fields {
		kind, ok := kinds[d.Type]
		if !ok {
			return nil, fmt.Errorf("field %d (key %q): unknown type %q", i, d.Key, d.Type)
		}
		if d.List && d.Optional {
			return nil, fmt.Errorf("field %d (key %q): list and optional are mutually exclusive", i, d.Key)
		}
		if d.List {
			kind = propbind.List(kind)
		}
		if d.Optional {
			kind = propbind.Optional(kind)
		}

		f := propbind.Field(d.Key, kind)
		if d.Default != nil {
			f = f.WithDefault(*d.Default)
		}
		if d.Env != "" {
			f = f.WithEnv(d.Env)
		}
		sch = append(sch, f)
	}

	if err := sch.Validate(); err != nil {
		return nil, fmt.Errorf("schema declaration: %w", err)
	}
	return sch, nil
}

// Load reads and parses a YAML schema declaration file.
func Load(path string) (propbind.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file %q: %w", path, err)
	}
	return Parse(data)
}
