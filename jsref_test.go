package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRemoteFragmentExtractsNamedSchema(t *testing.T) {
	doc := []byte(`{
		"components": {
			"schemas": {
				"Widget": {"type": "object", "required": ["id"]}
			}
		}
	}`)
	s, err := LoadRemoteFragment(doc, "#/components/schemas/Widget")
	require.NoError(t, err)
	require.True(t, s.Types().Contains(ObjectType))
	require.Contains(t, s.Required(), "id")
}

func TestLoadRemoteFragmentEmptyPointerReturnsWholeDocument(t *testing.T) {
	doc := []byte(`{"type": "number"}`)
	s, err := LoadRemoteFragment(doc, "")
	require.NoError(t, err)
	require.True(t, s.Types().Contains(NumberType))
}

func TestLoadRemoteFragmentUnresolvablePointerErrors(t *testing.T) {
	doc := []byte(`{"a": 1}`)
	_, err := LoadRemoteFragment(doc, "#/does/not/exist")
	require.Error(t, err)
}
