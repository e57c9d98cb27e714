package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSchemaBoolean(t *testing.T) {
	s, err := ParseSchema([]byte("true"))
	require.NoError(t, err)
	require.True(t, s.IsBoolean())
	require.True(t, s.BoolValue())

	s, err = ParseSchema([]byte("false"))
	require.NoError(t, err)
	require.True(t, s.IsBoolean())
	require.False(t, s.BoolValue())
}

func TestParseSchemaKeywords(t *testing.T) {
	s, err := ParseSchema([]byte(`{
		"type": "string",
		"minLength": 2,
		"maxLength": 10,
		"pattern": "^[a-z]+$"
	}`))
	require.NoError(t, err)
	require.False(t, s.IsBoolean())
	require.True(t, s.Types().Contains(StringType))
	require.NotNil(t, s.MinLength())
	require.Equal(t, 2, *s.MinLength())
	require.NotNil(t, s.MaxLength())
	require.Equal(t, 10, *s.MaxLength())
	require.Equal(t, "^[a-z]+$", s.Pattern())
}

func TestSchemaHasDistinguishesAbsentFromZeroValue(t *testing.T) {
	s, err := ParseSchema([]byte(`{"minLength": 0}`))
	require.NoError(t, err)
	require.NotNil(t, s.MinLength())
	require.Equal(t, 0, *s.MinLength())

	s2, err := ParseSchema([]byte(`{}`))
	require.NoError(t, err)
	require.Nil(t, s2.MinLength())
}

func TestSortedPropertyNames(t *testing.T) {
	s, err := ParseSchema([]byte(`{
		"properties": {"z": true, "a": true, "m": true}
	}`))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "m", "z"}, s.SortedPropertyNames())
}

func TestMarshalJSONRoundTripsBooleanSchema(t *testing.T) {
	s := NewBoolSchema(true)
	data, err := s.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "true", string(data))
}

func TestTypeSetAcceptsSingleOrArrayForm(t *testing.T) {
	s, err := ParseSchema([]byte(`{"type": "string"}`))
	require.NoError(t, err)
	require.True(t, s.Types().Contains(StringType))

	s2, err := ParseSchema([]byte(`{"type": ["string", "null"]}`))
	require.NoError(t, err)
	require.True(t, s2.Types().Contains(StringType))
	require.True(t, s2.Types().Contains(NullType))
	require.False(t, s2.Types().Contains(NumberType))
}
