package schema

import "errors"

// Structural errors raised while building the identifier index or
// resolving a reference at compile time.
var (
	ErrUnresolvedReference  = errors.New("jsonschema: unresolved reference")
	ErrUnresolvedAnchor     = errors.New("jsonschema: unresolved anchor")
	ErrCircularReference    = errors.New("jsonschema: circular $ref chain")
	ErrInvalidRegex         = errors.New("jsonschema: invalid regular expression")
	ErrInvalidSchemaValue   = errors.New("jsonschema: schema must be a JSON object or boolean")
	ErrInvalidJSONPointer   = errors.New("jsonschema: invalid JSON pointer")
	ErrUnsupportedDraft     = errors.New("jsonschema: unsupported or unrecognized $schema draft")
	ErrUnsupportedRatValue  = errors.New("jsonschema: value cannot be converted to an exact rational number")
	ErrDynamicRefNotAnchor  = errors.New("jsonschema: $dynamicRef fragment is not a plain anchor name")
)
