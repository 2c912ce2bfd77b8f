package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/propbind"
)

const testSchema = `
fields:
  - key: server.host
    type: string
    default: localhost
  - key: server.port
    type: int
    default: "8080"
  - key: ports
    type: int
    list: true
    default: 80,443
  - key: timeout
    type: duration
    optional: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunExport(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", testSchema)
	propsPath := writeFile(t, "app.properties", "server.host=example.com\nports=8080, 8443\n")

	var out bytes.Buffer
	err := run(&out, zaptest.NewLogger(t), schemaPath, propsPath, true, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "server.host=example.com\n")
	assert.Contains(t, out.String(), "server.port=8080\n")
	assert.Contains(t, out.String(), "ports=8080,8443\n")
	assert.NotContains(t, out.String(), "timeout=")
}

func TestRunDefaultsOnly(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", testSchema)

	var out bytes.Buffer
	err := run(&out, zaptest.NewLogger(t), schemaPath, "", true, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "server.host=localhost\n")
}

func TestRunDump(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", testSchema)

	var out bytes.Buffer
	err := run(&out, zaptest.NewLogger(t), schemaPath, "", false, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "server.host")
}

func TestRunBindFailure(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", "fields:\n  - key: required.key\n    type: int\n")

	var out bytes.Buffer
	err := run(&out, zaptest.NewLogger(t), schemaPath, "", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, propbind.ErrMissingField)
}

func TestRunSchemaMissing(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, zaptest.NewLogger(t), filepath.Join(t.TempDir(), "nope.yaml"), "", false, false)
	require.Error(t, err)
}
