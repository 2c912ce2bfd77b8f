package propbind

// LookupEnvFunc reports the value of a named environment variable and whether
// it is set. A variable set to the empty string counts as set.
type LookupEnvFunc func(name string) (string, bool)

// resolution is the outcome of precedence lookup for one field: a present raw
// string or absence.
type resolution struct {
	raw     string
	present bool
}

// resolve applies the precedence chain for one field, first match wins:
// environment variable, then mapping value, then declared default. It is a
// pure function of its inputs; reproducibility across binds is up to the
// caller's choice of env lookup.
func resolve(f *FieldSpec, m *Mapping, lookupEnv LookupEnvFunc) resolution {
	if f.EnvVar != "" {
		if v, ok := lookupEnv(f.EnvVar); ok {
			return resolution{raw: v, present: true}
		}
	}
	if v, ok := m.Lookup(f.Key); ok {
		return resolution{raw: v, present: true}
	}
	if f.Default != nil {
		return resolution{raw: *f.Default, present: true}
	}
	return resolution{}
}
