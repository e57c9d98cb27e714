package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	rootschema "github.com/kestrelschema/jsonschema"
)

func TestFormatAssertionDisabledBy2020_12Default(t *testing.T) {
	cs := mustCompile(t, `{"type":"string","format":"email"}`)
	require.True(t, cs.Validate("not-an-email"))
}

func TestFormatAssertionEnabledByDraft7(t *testing.T) {
	cs := mustCompile(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":"string",
		"format":"email"
	}`)
	require.True(t, cs.Validate("user@example.com"))
	require.False(t, cs.Validate("not-an-email"))
}

func TestFormatAssertionCanBeForcedViaOption(t *testing.T) {
	cs := mustCompile(t, `{"type":"string","format":"uuid"}`, rootschema.WithFormatAssertion(true))
	require.True(t, cs.Validate("123e4567-e89b-12d3-a456-426614174000"))
	require.False(t, cs.Validate("nope"))
}

func TestContentBase64JSONDecoding(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "string",
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "number"}
	}`
	cs := mustCompile(t, doc)
	require.True(t, cs.Validate("NDI="))  // base64("42")
	require.False(t, cs.Validate("Im9vcHMi")) // base64(`"oops"`)
}

func TestRefInheritsCallerDialectWithoutOwnSchema(t *testing.T) {
	doc := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$defs": {"e": {"type":"string","format":"email"}},
		"properties": {"x": {"$ref":"#/$defs/e"}}
	}`
	cs := mustCompile(t, doc)
	require.False(t, cs.Validate(map[string]any{"x": "nope"}))
}
