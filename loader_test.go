package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSchemaParsesYAML(t *testing.T) {
	doc := []byte("type: object\nproperties:\n  name:\n    type: string\nrequired: [name]\n")
	s, err := LoadSchema(doc)
	require.NoError(t, err)
	require.True(t, s.Types().Contains(ObjectType))
	require.Contains(t, s.Required(), "name")
	require.NotNil(t, s.Properties()["name"])
}

func TestLoadSchemaParsesJSON(t *testing.T) {
	s, err := LoadSchema([]byte(`{"type":"string","minLength":1}`))
	require.NoError(t, err)
	require.True(t, s.Types().Contains(StringType))
}

func TestLoadSchemaRejectsMalformedYAML(t *testing.T) {
	_, err := LoadSchema([]byte("type: [unterminated"))
	require.Error(t, err)
}
