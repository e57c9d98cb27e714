package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	rootschema "github.com/kestrelschema/jsonschema"
)

func mustParse(t *testing.T, doc string) *rootschema.Schema {
	t.Helper()
	s, err := rootschema.ParseSchema([]byte(doc))
	require.NoError(t, err)
	return s
}

func mustCompile(t *testing.T, doc string, opts ...rootschema.CompileOption) *CompiledSchema {
	t.Helper()
	s := mustParse(t, doc)
	cs, err := Compile(s, opts...)
	require.NoError(t, err)
	return cs
}

func TestCompileScalarKeywords(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		value any
		valid bool
	}{
		{"type match", `{"type":"string"}`, "hello", true},
		{"type mismatch", `{"type":"string"}`, 1.0, false},
		{"integer accepted as number", `{"type":"number"}`, 4.0, true},
		{"const match", `{"const":"x"}`, "x", true},
		{"const mismatch", `{"const":"x"}`, "y", false},
		{"enum match", `{"enum":["a","b"]}`, "b", true},
		{"enum mismatch", `{"enum":["a","b"]}`, "c", false},
		{"minLength ok", `{"type":"string","minLength":2}`, "hi", true},
		{"minLength fail", `{"type":"string","minLength":3}`, "hi", false},
		{"pattern ok", `{"type":"string","pattern":"^[a-z]+$"}`, "abc", true},
		{"pattern fail", `{"type":"string","pattern":"^[a-z]+$"}`, "ABC", false},
		{"minimum ok", `{"type":"number","minimum":5}`, 5.0, true},
		{"minimum fail", `{"type":"number","minimum":5}`, 4.0, false},
		{"exclusiveMinimum fail on boundary", `{"type":"number","exclusiveMinimum":5}`, 5.0, false},
		{"multipleOf ok", `{"type":"number","multipleOf":0.5}`, 2.5, true},
		{"multipleOf fail", `{"type":"number","multipleOf":0.5}`, 2.3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustCompile(t, tt.doc)
			require.Equal(t, tt.valid, cs.Validate(tt.value))
		})
	}
}

func TestCompileArrayKeywords(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		value any
		valid bool
	}{
		{"minItems ok", `{"type":"array","minItems":2}`, []any{1.0, 2.0}, true},
		{"minItems fail", `{"type":"array","minItems":2}`, []any{1.0}, false},
		{"uniqueItems ok", `{"type":"array","uniqueItems":true}`, []any{1.0, 2.0}, true},
		{"uniqueItems fail", `{"type":"array","uniqueItems":true}`, []any{1.0, 1.0}, false},
		{
			"prefixItems tuple ok",
			`{"prefixItems":[{"type":"string"},{"type":"number"}]}`,
			[]any{"a", 1.0},
			true,
		},
		{
			"prefixItems tuple fail",
			`{"prefixItems":[{"type":"string"},{"type":"number"}]}`,
			[]any{"a", "b"},
			false,
		},
		{
			"contains ok",
			`{"type":"array","contains":{"type":"string"}}`,
			[]any{1.0, "a", 2.0},
			true,
		},
		{
			"contains fail",
			`{"type":"array","contains":{"type":"string"}}`,
			[]any{1.0, 2.0},
			false,
		},
		{
			"minContains 0 empty array passes",
			`{"type":"array","contains":{"type":"string"},"minContains":0}`,
			[]any{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustCompile(t, tt.doc)
			require.Equal(t, tt.valid, cs.Validate(tt.value))
		})
	}
}

func TestCompileObjectKeywords(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		value any
		valid bool
	}{
		{
			"required ok",
			`{"type":"object","required":["a"]}`,
			map[string]any{"a": 1.0},
			true,
		},
		{
			"required fail",
			`{"type":"object","required":["a"]}`,
			map[string]any{"b": 1.0},
			false,
		},
		{
			"additionalProperties false rejects extras",
			`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":false}`,
			map[string]any{"a": "x", "b": 1.0},
			false,
		},
		{
			"additionalProperties false allows declared",
			`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":false}`,
			map[string]any{"a": "x"},
			true,
		},
		{
			"patternProperties match",
			`{"type":"object","patternProperties":{"^S_":{"type":"string"}}}`,
			map[string]any{"S_x": "ok"},
			true,
		},
		{
			"patternProperties mismatch",
			`{"type":"object","patternProperties":{"^S_":{"type":"string"}}}`,
			map[string]any{"S_x": 1.0},
			false,
		},
		{
			"dependentRequired triggers",
			`{"type":"object","dependentRequired":{"a":["b"]}}`,
			map[string]any{"a": 1.0},
			false,
		},
		{
			"dependentRequired satisfied",
			`{"type":"object","dependentRequired":{"a":["b"]}}`,
			map[string]any{"a": 1.0, "b": 2.0},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustCompile(t, tt.doc)
			require.Equal(t, tt.valid, cs.Validate(tt.value))
		})
	}
}

func TestAdditionalPropertiesFalseReportsOwnKeyword(t *testing.T) {
	cs := mustCompile(t, `{"type":"object","additionalProperties":false}`)
	result := cs.Parse(map[string]any{"extra": 1.0})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "additionalProperties", result.Errors[0].Keyword)
}

func TestUnevaluatedPropertiesFalseReportsOwnKeyword(t *testing.T) {
	cs := mustCompile(t, `{"type":"object","unevaluatedProperties":false}`)
	result := cs.Parse(map[string]any{"extra": 1.0})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "unevaluatedProperties", result.Errors[0].Keyword)
}

func TestUnevaluatedItemsFalseReportsOwnKeyword(t *testing.T) {
	cs := mustCompile(t, `{"type":"array","unevaluatedItems":false}`)
	result := cs.Parse([]any{1.0})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "unevaluatedItems", result.Errors[0].Keyword)
}

func TestLegacyAdditionalItemsFalseReportsOwnKeyword(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type":"string"}],
		"additionalItems": false
	}`
	cs := mustCompile(t, doc)
	result := cs.Parse([]any{"a", "overflow"})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "additionalItems", result.Errors[0].Keyword)
}

func TestLegacyUniformItemsFalseReportsOwnKeyword(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": false
	}`
	cs := mustCompile(t, doc)
	result := cs.Parse([]any{"anything"})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "items", result.Errors[0].Keyword)
}

func TestUnevaluatedPropertiesHonorsDependentSchemasClaim(t *testing.T) {
	doc := `{
		"type": "object",
		"properties": {"a": {}},
		"dependentSchemas": {"a": {"properties": {"b": {"type":"number"}}}},
		"unevaluatedProperties": false
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"a": 1.0, "b": 2.0}))
	require.False(t, cs.Validate(map[string]any{"b": 2.0}))
}

func TestConstNullIsEnforced(t *testing.T) {
	cs := mustCompile(t, `{"const": null}`)
	require.True(t, cs.Validate(nil))
	require.False(t, cs.Validate("not null"))
	require.False(t, cs.Validate(0.0))
}

func TestCompileComposition(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		value any
		valid bool
	}{
		{
			"allOf both pass",
			`{"allOf":[{"type":"number"},{"minimum":1}]}`,
			5.0,
			true,
		},
		{
			"allOf one fails",
			`{"allOf":[{"type":"number"},{"minimum":10}]}`,
			5.0,
			false,
		},
		{
			"anyOf one matches",
			`{"anyOf":[{"type":"string"},{"type":"number"}]}`,
			5.0,
			true,
		},
		{
			"anyOf none match",
			`{"anyOf":[{"type":"string"},{"type":"boolean"}]}`,
			5.0,
			false,
		},
		{
			"oneOf exactly one matches",
			`{"oneOf":[{"type":"number"},{"type":"string"}]}`,
			5.0,
			true,
		},
		{
			"oneOf two match fails",
			`{"oneOf":[{"minimum":0},{"maximum":10}]}`,
			5.0,
			false,
		},
		{
			"not accepts instance failing inner",
			`{"not":{"type":"string"}}`,
			5.0,
			true,
		},
		{
			"not rejects instance matching inner",
			`{"not":{"type":"number"}}`,
			5.0,
			false,
		},
		{
			"if/then taken branch enforced",
			`{"if":{"type":"number"},"then":{"minimum":0}}`,
			-5.0,
			false,
		},
		{
			"if/else taken branch enforced",
			`{"if":{"type":"number"},"else":{"type":"string"}}`,
			true,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustCompile(t, tt.doc)
			require.Equal(t, tt.valid, cs.Validate(tt.value))
		})
	}
}

func TestCompileRef(t *testing.T) {
	doc := `{
		"$defs": {"pos": {"type":"number","minimum":0}},
		"properties": {"x": {"$ref":"#/$defs/pos"}}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"x": 1.0}))
	require.False(t, cs.Validate(map[string]any{"x": -1.0}))
}

func TestCompileUnresolvableRefFailsAtCallTime(t *testing.T) {
	doc := `{"$ref":"#/does/not/exist"}`
	cs := mustCompile(t, doc)
	result := cs.Parse("anything")
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "$ref", result.Errors[0].Keyword)
}

func TestDynamicRefResolvesOutermostAnchor(t *testing.T) {
	doc := `{
		"$id": "https://example.com/outer",
		"$dynamicAnchor": "node",
		"type": "object",
		"properties": {
			"child": {"$dynamicRef": "#node"}
		}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"child": map[string]any{}}))
}

func TestUnevaluatedPropertiesRejectsUnclaimed(t *testing.T) {
	doc := `{
		"type":"object",
		"properties": {"a":{"type":"string"}},
		"unevaluatedProperties": false
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"a": "x"}))
	require.False(t, cs.Validate(map[string]any{"a": "x", "b": 1.0}))
}

func TestUnevaluatedPropertiesHonorsAllOfBranchClaims(t *testing.T) {
	doc := `{
		"allOf": [{"properties": {"a":{"type":"string"}}}],
		"unevaluatedProperties": false
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"a": "x"}))
	require.False(t, cs.Validate(map[string]any{"b": "x"}))
}

func TestAssertReturnsValidationError(t *testing.T) {
	cs := mustCompile(t, `{"type":"string"}`)
	err := cs.Assert(5.0)
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Errors, 1)
	require.Equal(t, "type", ve.Errors[0].Keyword)
}

func TestDecodeAssignsValidatedValue(t *testing.T) {
	cs := mustCompile(t, `{"type":"string"}`)
	var dst string
	require.NoError(t, cs.Decode("hello", &dst))
	require.Equal(t, "hello", dst)

	require.Error(t, cs.Decode(5.0, &dst))
}

func TestCoercionConvertsStringToNumber(t *testing.T) {
	cs := mustCompile(t, `{"type":"number","minimum":10}`, rootschema.WithCoerceOptions(rootschema.CoerceOptions{Number: true}))
	require.True(t, cs.Validate("20"))
	require.False(t, cs.Validate("5"))
}

func TestCoercionDisabledLeavesMismatchFailing(t *testing.T) {
	cs := mustCompile(t, `{"type":"number"}`)
	require.False(t, cs.Validate("20"))
}

func TestCompilePropertyNames(t *testing.T) {
	doc := `{"type":"object","propertyNames":{"pattern":"^[a-z]+$"}}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"abc": 1.0}))
	require.False(t, cs.Validate(map[string]any{"ABC": 1.0}))
}

func TestCompileDependentSchemas(t *testing.T) {
	doc := `{
		"type":"object",
		"dependentSchemas": {"a": {"required":["b"]}}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate(map[string]any{"a": 1.0, "b": 2.0}))
	require.False(t, cs.Validate(map[string]any{"a": 1.0}))
	require.True(t, cs.Validate(map[string]any{"c": 1.0}))
}

func TestCompileLegacyTupleItemsWithAdditionalItems(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": [{"type":"string"},{"type":"number"}],
		"additionalItems": {"type":"boolean"}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate([]any{"a", 1.0, true, false}))
	require.False(t, cs.Validate([]any{"a", 1.0, "not-bool"}))
	require.False(t, cs.Validate([]any{1.0, 1.0}))
}

func TestCompileLegacyUniformItems(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"items": {"type":"number"}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate([]any{1.0, 2.0, 3.0}))
	require.False(t, cs.Validate([]any{1.0, "x"}))
}

func TestCompileBatchResolvesCrossReferences(t *testing.T) {
	a := mustParse(t, `{"$id":"https://example.com/a","properties":{"b":{"$ref":"https://example.com/b"}}}`)
	b := mustParse(t, `{"$id":"https://example.com/b","type":"number"}`)

	compiled, err := CompileBatch(map[string]*rootschema.Schema{
		"a": a,
		"b": b,
	})
	require.NoError(t, err)
	require.True(t, compiled["a"].Validate(map[string]any{"b": 1.0}))
	require.False(t, compiled["a"].Validate(map[string]any{"b": "x"}))
}
