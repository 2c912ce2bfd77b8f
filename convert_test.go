package propbind

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolConversionStrict(t *testing.T) {
	sch := NewSchema(Field("flag", Bool))

	for _, raw := range []string{"true", "TRUE", "True", "false", "FALSE"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Bind(sch, FromMap(map[string]string{"flag": raw}))
			assert.NoError(t, err)
		})
	}

	for _, raw := range []string{"1", "0", "t", "yes", "on", ""} {
		t.Run("reject "+raw, func(t *testing.T) {
			_, err := Bind(sch, FromMap(map[string]string{"flag": raw}))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConversion)
		})
	}
}

func TestConversionErrorContext(t *testing.T) {
	sch := NewSchema(Field("server.port", Int))

	_, err := Bind(sch, FromMap(map[string]string{"server.port": "eighty"}))
	require.Error(t, err)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "server.port", conv.Key)
	assert.Equal(t, "eighty", conv.Raw)
	assert.Equal(t, "int", conv.Type)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestListConversion(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  string
		want []any
	}{
		{"ints with spaces", List(Int), "1, 2 ,3", []any{int64(1), int64(2), int64(3)}},
		{"strings", List(String), "hello,world", []any{"hello", "world"}},
		{"empty string is empty list", List(Int), "", []any{}},
		{"single element", List(String), "solo", []any{"solo"}},
		{"empty segments parse as strings", List(String), "a,,b", []any{"a", "", "b"}},
		{"trailing comma yields empty string element", List(String), "a,", []any{"a", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sch := NewSchema(Field("list", tc.kind))
			rec, err := Bind(sch, FromMap(map[string]string{"list": tc.raw}))
			require.NoError(t, err)
			assert.Equal(t, tc.want, mustGet(t, rec, "list"))
		})
	}
}

func TestListConversionSegmentFailure(t *testing.T) {
	sch := NewSchema(Field("numbers", List(Int)))

	_, err := Bind(sch, FromMap(map[string]string{"numbers": "1,x,3"}))
	require.Error(t, err)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "numbers", conv.Key)
	assert.Equal(t, "x", conv.Raw)
	assert.Equal(t, "list of int", conv.Type)
}

func TestListConversionEmptySegmentNumeric(t *testing.T) {
	sch := NewSchema(Field("numbers", List(Int)))

	_, err := Bind(sch, FromMap(map[string]string{"numbers": "1,,3"}))
	require.Error(t, err)

	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, "", conv.Raw)
}

func TestOptionalConversionFailureIsStillAnError(t *testing.T) {
	sch := NewSchema(Field("port", Optional(Int)))

	_, err := Bind(sch, FromMap(map[string]string{"port": "not-a-port"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestCustomKind(t *testing.T) {
	hex := Custom("hex",
		func(raw string) (any, error) {
			n, err := strconv.ParseInt(raw, 16, 64)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
		func(v any) string { return strconv.FormatInt(v.(int64), 16) })

	sch := NewSchema(Field("mask", hex))
	rec, err := Bind(sch, FromMap(map[string]string{"mask": "ff"}))
	require.NoError(t, err)
	assert.Equal(t, int64(255), mustGet(t, rec, "mask"))
}
