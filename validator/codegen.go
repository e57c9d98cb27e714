package validator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lestrrat-go/codegen"
	"github.com/lestrrat-go/xstrings"

	rootschema "github.com/kestrelschema/jsonschema"
)

// GenerateCode writes a Go source fragment that reproduces a compiled
// validator without re-parsing the schema file at program startup: the
// schema is embedded as a JSON string literal, decoded and compiled once
// in a package-level var initializer.
//
// The procedure tree compiled by this package is built from closures
// (see lazyInterface in compiler.go and Func in validator.go), which carry no inspectable
// keyword data the way the teacher's named validator structs
// (*stringValidator, *objectValidator, ...) do; reproducing a literal
// builder chain the way the teacher's Generate does is not possible from
// that shape. Embedding the source schema and compiling it once at
// package init is the faithful equivalent available to this
// architecture: the runtime cost of Compile is paid once, not per call.
func GenerateCode(dst io.Writer, varName string, s *rootschema.Schema) error {
	if varName == "" {
		varName = deriveVarName(s)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("jsonschema: marshaling schema for codegen: %w", err)
	}

	o := codegen.NewOutput(dst)
	o.L("var %s = func() *validator.CompiledSchema {", varName)
	o.L("s, err := schema.ParseSchema([]byte(%q))", data)
	o.L("if err != nil {")
	o.L("panic(err)")
	o.L("}")
	o.L("compiled, err := validator.Compile(s)")
	o.L("if err != nil {")
	o.L("panic(err)")
	o.L("}")
	o.L("return compiled")
	o.L("}()")
	return nil
}

// deriveVarName builds a Go identifier from the schema's title or $id
// when the caller doesn't supply one, camel-casing whatever separators
// the source uses ("user-profile" -> "UserProfile").
func deriveVarName(s *rootschema.Schema) string {
	switch {
	case s.Title() != "":
		return xstrings.Camel(s.Title())
	case s.ID() != "":
		return xstrings.Camel(s.ID())
	default:
		return "Val"
	}
}
