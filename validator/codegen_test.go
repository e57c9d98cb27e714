package validator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCodeEmbedsSchemaAndCompilesOnce(t *testing.T) {
	s := mustParse(t, `{"title":"user profile","type":"object"}`)
	var buf bytes.Buffer
	require.NoError(t, GenerateCode(&buf, "", s))
	out := buf.String()
	require.Contains(t, out, "var UserProfile")
	require.Contains(t, out, "validator.Compile(s)")
	require.Contains(t, out, "schema.ParseSchema")
}

func TestGenerateCodeHonorsExplicitVarName(t *testing.T) {
	s := mustParse(t, `{"type":"string"}`)
	var buf bytes.Buffer
	require.NoError(t, GenerateCode(&buf, "MySchema", s))
	require.Contains(t, buf.String(), "var MySchema")
}

func TestDeriveVarNameFallsBackWhenNoTitleOrID(t *testing.T) {
	s := mustParse(t, `{"type":"number"}`)
	require.Equal(t, "Val", deriveVarName(s))
}
