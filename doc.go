// Package schema compiles JSON Schema documents (drafts 4, 6, 7, 2019-09 and
// 2020-12) into specialized validation procedures.
//
// The package never interprets a schema at validation time: Compile walks
// the schema tree once, resolves its web of references (including
// late-bound $dynamicRef targets), and assembles a tree of closures-backed
// validator.Interface values that a caller invokes directly against a JSON
// value. Everything that would otherwise require re-inspecting the schema
// — which properties are declared, which patterns apply, which branch of an
// allOf matched — is decided once, during compilation.
package schema
