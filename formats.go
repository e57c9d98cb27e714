package schema

import "github.com/kestrelschema/jsonschema/format"

// FormatFunc is a format validator, as registered with WithFormat or the
// format package's own registry.
type FormatFunc = format.Func

// RegisterFormat installs fn as the package-wide default validator for
// name, affecting every future Compile call that doesn't override it with
// WithFormat. Grounded on kaptinlin-jsonschema's Compiler.RegisterFormat.
func RegisterFormat(name string, fn FormatFunc) {
	format.RegisterDefault(name, fn)
}
