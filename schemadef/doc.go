// Package schemadef loads propbind schemas declared in YAML, for callers that
// keep schema definitions next to their configuration instead of in code:
//
//	fields:
//	  - key: server.host
//	    type: string
//	    default: localhost
//	    env: SERVER_HOST
//	  - key: ports
//	    type: int
//	    list: true
//	  - key: timeout
//	    type: duration
//	    optional: true
package schemadef
