package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexResolvesPointerRef(t *testing.T) {
	root, err := ParseSchema([]byte(`{
		"$defs": {"pos": {"type": "number", "minimum": 0}},
		"properties": {"x": {"$ref": "#/$defs/pos"}}
	}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, "", nil)
	require.NoError(t, err)

	xSchema := root.Properties()["x"]
	target, err := idx.ResolveRef(xSchema, xSchema.Reference())
	require.NoError(t, err)
	require.NotNil(t, target.Minimum())
}

func TestBuildIndexResolvesAnchor(t *testing.T) {
	root, err := ParseSchema([]byte(`{
		"$defs": {"pos": {"$anchor": "positive", "type": "number", "minimum": 0}},
		"properties": {"x": {"$ref": "#positive"}}
	}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, "", nil)
	require.NoError(t, err)

	xSchema := root.Properties()["x"]
	target, err := idx.ResolveRef(xSchema, xSchema.Reference())
	require.NoError(t, err)
	require.NotNil(t, target.Minimum())
}

func TestBuildIndexUnresolvableRefErrors(t *testing.T) {
	root, err := ParseSchema([]byte(`{"properties": {"x": {"$ref": "#/does/not/exist"}}}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, "", nil)
	require.NoError(t, err)

	xSchema := root.Properties()["x"]
	_, err = idx.ResolveRef(xSchema, xSchema.Reference())
	require.Error(t, err)
}

func TestResourceAnchorsCollectsDynamicAnchorNames(t *testing.T) {
	root, err := ParseSchema([]byte(`{
		"$id": "https://example.com/root",
		"$dynamicAnchor": "node",
		"properties": {"child": {"$dynamicRef": "#node"}}
	}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, root.ID(), nil)
	require.NoError(t, err)

	names := idx.ResourceAnchors(idx.BaseURI(root))
	require.Contains(t, names, "node")
	require.True(t, idx.HasDynamicAnchors())
}

func TestDynamicAnchorResolvesAsPlainAnchor(t *testing.T) {
	root, err := ParseSchema([]byte(`{
		"$id": "https://example.com/root",
		"$dynamicAnchor": "node",
		"properties": {"child": {"$dynamicRef": "#node"}}
	}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, root.ID(), nil)
	require.NoError(t, err)

	childSchema := root.Properties()["child"]
	target, isDynamic, err := idx.ResolveDynamicRef(childSchema, childSchema.DynamicReference())
	require.NoError(t, err)
	require.True(t, isDynamic)
	require.Same(t, root, target)
}

func TestSchemaAtFindsRemoteByURI(t *testing.T) {
	remote, err := ParseSchema([]byte(`{"$id": "https://example.com/remote", "type": "number"}`))
	require.NoError(t, err)
	root, err := ParseSchema([]byte(`{"properties": {"x": {"$ref": "https://example.com/remote"}}}`))
	require.NoError(t, err)

	idx, err := BuildIndex(root, "", map[string]*Schema{"https://example.com/remote": remote})
	require.NoError(t, err)

	found, ok := idx.SchemaAt("https://example.com/remote")
	require.True(t, ok)
	require.True(t, found.Types().Contains(NumberType))
}
