package schema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kestrelschema/jsonschema/internal/field"
)

// Version is the dialect this implementation treats as the default when a
// schema omits "$schema" and the caller supplied no DefaultMeta option.
const Version = "https://json-schema.org/draft/2020-12/schema"

// Schema is a JSON Schema document. The zero value is the empty schema
// (matches everything). A Schema is never mutated by the compiler once
// parsed; Compile only reads it.
//
// Every subschema position — items, additionalProperties, allOf elements,
// and so on — is itself a *Schema, because a boolean schema (true/false)
// is represented as a Schema whose isBoolean field is set: there is no
// separate "SchemaOrBool" wrapper type, matching how kaptinlin-jsonschema's
// Schema.Boolean field folds the boolean case into the same struct.
type Schema struct {
	populated field.Flag

	isBoolean  bool
	boolValue  bool

	id               string
	schemaURI        string
	reference        string
	dynamicReference string
	anchor           string
	dynamicAnchor    string
	comment          string
	vocabulary       map[string]bool

	types TypeSet
	enum  []any
	cnst  any

	multipleOf       *Rat
	minimum          *Rat
	maximum          *Rat
	exclusiveMinimum *Rat
	exclusiveMaximum *Rat
	// legacyExclusiveMinimum/Maximum hold the draft-04 boolean form, where
	// exclusiveMinimum/Maximum merely toggles whether the sibling
	// minimum/maximum bound is inclusive.
	legacyExclusiveMinimum *bool
	legacyExclusiveMaximum *bool

	minLength *int
	maxLength *int
	pattern   string

	prefixItems     []*Schema
	items           *Schema
	itemsIsTuple    bool // pre-2020-12: "items" held an array, "additionalItems" is the tail
	additionalItems *Schema
	contains        *Schema
	minItems        *int
	maxItems        *int
	uniqueItems     bool
	minContains     *int
	maxContains     *int

	properties           map[string]*Schema
	patternProperties    map[string]*Schema
	additionalProperties *Schema
	propertyNames        *Schema
	required             []string
	minProperties        *int
	maxProperties        *int
	dependentRequired    map[string][]string
	dependentSchemas     map[string]*Schema

	allOf []*Schema
	anyOf []*Schema
	oneOf []*Schema
	not   *Schema

	ifSchema   *Schema
	thenSchema *Schema
	elseSchema *Schema

	unevaluatedProperties *Schema
	unevaluatedItems      *Schema

	format string

	contentEncoding  string
	contentMediaType string
	contentSchema    *Schema

	definitions map[string]*Schema

	title       string
	description string
	defaultVal  any
	deprecated  bool
	readOnly    bool
	writeOnly   bool
	examples    []any
}

// Has reports whether the keywords in want were all present in the source
// document (as opposed to merely holding their Go zero value).
func (s *Schema) Has(want field.Flag) bool {
	if s == nil {
		return false
	}
	return s.populated.Has(want)
}

// HasAny reports whether at least one keyword in want was present.
func (s *Schema) HasAny(want field.Flag) bool {
	if s == nil {
		return false
	}
	return s.populated.HasAny(want)
}

// IsBoolean reports whether the source document was the JSON literal
// true/false rather than an object.
func (s *Schema) IsBoolean() bool { return s != nil && s.isBoolean }

// BoolValue returns the literal value for a boolean schema. It is only
// meaningful when IsBoolean reports true.
func (s *Schema) BoolValue() bool { return s != nil && s.boolValue }

// Accessors. Each simply exposes the parsed field; callers combine them
// with Has to distinguish "absent" from "present with zero value".

func (s *Schema) ID() string                            { return s.id }
func (s *Schema) SchemaURI() string                      { return s.schemaURI }
func (s *Schema) Reference() string                      { return s.reference }
func (s *Schema) DynamicReference() string               { return s.dynamicReference }
func (s *Schema) Anchor() string                         { return s.anchor }
func (s *Schema) DynamicAnchor() string                  { return s.dynamicAnchor }
func (s *Schema) Comment() string                        { return s.comment }
func (s *Schema) Vocabulary() map[string]bool            { return s.vocabulary }
func (s *Schema) Types() TypeSet                         { return s.types }
func (s *Schema) Enum() []any                            { return s.enum }
func (s *Schema) Const() any                             { return s.cnst }
func (s *Schema) MultipleOf() *Rat                        { return s.multipleOf }
func (s *Schema) Minimum() *Rat                           { return s.minimum }
func (s *Schema) Maximum() *Rat                           { return s.maximum }
func (s *Schema) ExclusiveMinimum() *Rat                  { return s.exclusiveMinimum }
func (s *Schema) ExclusiveMaximum() *Rat                  { return s.exclusiveMaximum }
func (s *Schema) LegacyExclusiveMinimum() *bool            { return s.legacyExclusiveMinimum }
func (s *Schema) LegacyExclusiveMaximum() *bool            { return s.legacyExclusiveMaximum }
func (s *Schema) MinLength() *int                         { return s.minLength }
func (s *Schema) MaxLength() *int                         { return s.maxLength }
func (s *Schema) Pattern() string                         { return s.pattern }
func (s *Schema) PrefixItems() []*Schema                  { return s.prefixItems }
func (s *Schema) Items() *Schema                          { return s.items }
func (s *Schema) ItemsIsTuple() bool                       { return s.itemsIsTuple }
func (s *Schema) AdditionalItems() *Schema                { return s.additionalItems }
func (s *Schema) Contains() *Schema                       { return s.contains }
func (s *Schema) MinItems() *int                          { return s.minItems }
func (s *Schema) MaxItems() *int                          { return s.maxItems }
func (s *Schema) UniqueItems() bool                       { return s.uniqueItems }
func (s *Schema) MinContains() *int                       { return s.minContains }
func (s *Schema) MaxContains() *int                       { return s.maxContains }
func (s *Schema) Properties() map[string]*Schema          { return s.properties }
func (s *Schema) PatternProperties() map[string]*Schema   { return s.patternProperties }
func (s *Schema) AdditionalProperties() *Schema           { return s.additionalProperties }
func (s *Schema) PropertyNames() *Schema                  { return s.propertyNames }
func (s *Schema) Required() []string                      { return s.required }
func (s *Schema) MinProperties() *int                      { return s.minProperties }
func (s *Schema) MaxProperties() *int                      { return s.maxProperties }
func (s *Schema) DependentRequired() map[string][]string  { return s.dependentRequired }
func (s *Schema) DependentSchemas() map[string]*Schema    { return s.dependentSchemas }
func (s *Schema) AllOf() []*Schema                        { return s.allOf }
func (s *Schema) AnyOf() []*Schema                        { return s.anyOf }
func (s *Schema) OneOf() []*Schema                        { return s.oneOf }
func (s *Schema) Not() *Schema                            { return s.not }
func (s *Schema) IfSchema() *Schema                       { return s.ifSchema }
func (s *Schema) ThenSchema() *Schema                      { return s.thenSchema }
func (s *Schema) ElseSchema() *Schema                      { return s.elseSchema }
func (s *Schema) UnevaluatedProperties() *Schema           { return s.unevaluatedProperties }
func (s *Schema) UnevaluatedItems() *Schema                { return s.unevaluatedItems }
func (s *Schema) Format() string                           { return s.format }
func (s *Schema) ContentEncoding() string                  { return s.contentEncoding }
func (s *Schema) ContentMediaType() string                 { return s.contentMediaType }
func (s *Schema) ContentSchema() *Schema                   { return s.contentSchema }
func (s *Schema) Definitions() map[string]*Schema           { return s.definitions }
func (s *Schema) Title() string                             { return s.title }
func (s *Schema) Description() string                       { return s.description }
func (s *Schema) Default() any                               { return s.defaultVal }
func (s *Schema) Deprecated() bool                           { return s.deprecated }
func (s *Schema) ReadOnly() bool                              { return s.readOnly }
func (s *Schema) WriteOnly() bool                             { return s.writeOnly }
func (s *Schema) Examples() []any                             { return s.examples }

// SortedPropertyNames returns the declared property names in a
// deterministic (sorted) order, used anywhere generated code or error
// messages must not depend on map iteration order.
func (s *Schema) SortedPropertyNames() []string {
	names := make([]string, 0, len(s.properties))
	for name := range s.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBoolSchema builds the trivial always-true or always-false schema used
// wherever the source document spelled out a JSON boolean instead of an
// object.
func NewBoolSchema(v bool) *Schema {
	return &Schema{isBoolean: true, boolValue: v}
}

// ParseSchema parses raw JSON bytes into a Schema tree. It does not
// resolve references or detect the dialect; use Compile for that.
func ParseSchema(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalJSON implements json.Unmarshaler. A schema document is either
// the JSON literal true/false or an object of keywords.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*s = *NewBoolSchema(asBool)
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchemaValue, err)
	}

	*s = Schema{}
	for key, value := range raw {
		if err := s.assignKeyword(key, value); err != nil {
			return fmt.Errorf("keyword %q: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, round-tripping boolean schemas.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.isBoolean {
		return json.Marshal(s.boolValue)
	}
	out := map[string]any{}
	if s.Has(field.ID) {
		out["$id"] = s.id
	}
	if s.Has(field.Schema) {
		out["$schema"] = s.schemaURI
	}
	if s.Has(field.Reference) {
		out["$ref"] = s.reference
	}
	if s.Has(field.DynamicReference) {
		out["$dynamicRef"] = s.dynamicReference
	}
	if s.Has(field.Anchor) {
		out["$anchor"] = s.anchor
	}
	if s.Has(field.DynamicAnchor) {
		out["$dynamicAnchor"] = s.dynamicAnchor
	}
	if s.Has(field.Types) {
		out["type"] = s.types
	}
	if s.Has(field.Properties) {
		out["properties"] = s.properties
	}
	// The remaining keywords follow the same pattern; round-tripping is a
	// debugging convenience, not load-bearing for compilation, so we stop
	// short of reproducing every keyword here.
	return json.Marshal(out)
}
