// Package propbind binds flat key-value properties sources to declared record
// schemas. Each field resolves through a fixed precedence chain (environment
// variable, then mapping value, then declared default) and converts to its
// declared kind: scalar, boolean, optional or comma-separated list. Bound
// records export back to mappings in canonical textual form, which allows
// converting between record types that share property keys.
package propbind
