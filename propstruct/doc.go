// Package propstruct derives propbind schemas from struct tags and binds
// properties sources straight into tagged structs. The `prop` tag names the
// property key (the field name is used when the tag is absent), `default`
// declares a literal default and `env` names an overriding environment
// variable:
//
//	type Config struct {
//	    Host  string   `prop:"server.host" default:"localhost" env:"SERVER_HOST"`
//	    Port  uint16   `prop:"server.port" default:"8080"`
//	    Debug bool     `prop:"debug.enabled" default:"false"`
//	    IPs   []string `prop:"allowed_ips"`
//	    SSL   *int     `prop:"optional_ssl_port"`
//	}
//
// Pointer fields are optional, slice fields are comma-separated lists, and
// types implementing encoding.TextUnmarshaler parse themselves. Structs also
// export back to mappings, so two struct types sharing property keys convert
// into each other through Convert.
package propstruct
