package propbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCanonicalForms(t *testing.T) {
	sch := NewSchema(
		Field("id", Int),
		Field("flag", Bool),
		Field("grace", Duration),
		Field("ports", List(Int)),
		Field("tags", List(String)),
		Field("extra", Optional(String)),
	)
	m := FromMap(map[string]string{
		"id":    "007",
		"flag":  "TRUE",
		"grace": "90s",
		"ports": " 80 , 443 ",
		"tags":  "",
	})

	rec, err := Bind(sch, m)
	require.NoError(t, err)

	out := rec.Export()
	assert.Equal(t, "7", out.Get("id"))
	assert.Equal(t, "true", out.Get("flag"))
	assert.Equal(t, "1m30s", out.Get("grace"))
	assert.Equal(t, "80,443", out.Get("ports"))

	// empty list exports as empty string, not omitted
	v, ok := out.Lookup("tags")
	require.True(t, ok)
	assert.Equal(t, "", v)

	// absent optional is omitted entirely
	_, ok = out.Lookup("extra")
	assert.False(t, ok)
}

func TestExportOptionalPresent(t *testing.T) {
	sch := NewSchema(Field("extra", Optional(Int)))

	rec, err := Bind(sch, FromMap(map[string]string{"extra": "9"}))
	require.NoError(t, err)
	assert.Equal(t, "9", rec.Export().Get("extra"))
}

func TestExportImportRoundTrip(t *testing.T) {
	sch := NewSchema(
		Field("host", String).WithDefault("localhost"),
		Field("ports", List(Int)).WithDefault("80,443"),
		Field("debug", Bool).WithDefault("false"),
	)

	rec, err := BindDefaults(sch)
	require.NoError(t, err)

	again, err := Bind(sch, rec.Export())
	require.NoError(t, err)

	for _, f := range sch {
		assert.Equal(t, mustGet(t, rec, f.Key), mustGet(t, again, f.Key), "key %s", f.Key)
	}
}

// Cross-type conversion: values transfer by key name, not by field identity.
func TestConvertSharedKeys(t *testing.T) {
	server := NewSchema(
		Field("host", String).WithDefault("localhost"),
		Field("port", Int).WithDefault("8080"),
	)
	client := NewSchema(
		Field("host", String),
		Field("port", Int),
		Field("retries", Int).WithDefault("3"),
	)

	serverRec, err := BindDefaults(server)
	require.NoError(t, err)

	clientRec, err := Convert(serverRec, client)
	require.NoError(t, err)

	assert.Equal(t, "localhost", mustGet(t, clientRec, "host"))
	assert.Equal(t, int64(8080), mustGet(t, clientRec, "port"))
	// target-only field falls back to its own default
	assert.Equal(t, int64(3), mustGet(t, clientRec, "retries"))
}

func TestConvertMissingTargetKey(t *testing.T) {
	src := NewSchema(Field("host", String).WithDefault("localhost"))
	dst := NewSchema(Field("address", String))

	srcRec, err := BindDefaults(src)
	require.NoError(t, err)

	_, err = Convert(srcRec, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestConvertOptionalSourceAbsent(t *testing.T) {
	src := NewSchema(Field("host", Optional(String)))
	dst := NewSchema(Field("host", Optional(String)))

	srcRec, err := BindDefaults(src)
	require.NoError(t, err)

	dstRec, err := Convert(srcRec, dst)
	require.NoError(t, err)
	assert.Nil(t, mustGet(t, dstRec, "host"))
}
