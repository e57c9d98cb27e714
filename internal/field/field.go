// Package field declares the bit flags the schema package uses to track
// which JSON Schema keywords were actually present in the source document,
// as opposed to holding their Go zero value. A schema that sets
// "minimum": 0 must still report Has(Minimum) == true.
package field

// Flag is a bitmask identifying one populated schema keyword.
type Flag uint64

const (
	AdditionalProperties Flag = 1 << iota
	AllOf
	Anchor
	AnyOf
	Comment
	Const
	Contains
	ContentEncoding
	ContentMediaType
	ContentSchema
	Default
	Definitions
	DependentRequired
	DependentSchemas
	DynamicAnchor
	DynamicReference
	ElseSchema
	Enum
	ExclusiveMaximum
	ExclusiveMinimum
	Format
	ID
	IfSchema
	Items
	AdditionalItems
	MaxContains
	MaxItems
	MaxLength
	MaxProperties
	Maximum
	MinContains
	MinItems
	MinLength
	MinProperties
	Minimum
	MultipleOf
	Not
	OneOf
	Pattern
	PatternProperties
	PrefixItems
	Properties
	PropertyNames
	Reference
	Required
	Schema
	ThenSchema
	Types
	UnevaluatedItems
	UnevaluatedProperties
	UniqueItems
	Vocabulary
	Deprecated
	ReadOnly
	WriteOnly
	Title
	Description
	Examples
)

// Has reports whether all bits in want are set in f.
func (f Flag) Has(want Flag) bool { return f&want == want }

// HasAny reports whether f has at least one bit from want set.
func (f Flag) HasAny(want Flag) bool { return f&want != 0 }

// ObjectConstraintFields are the keywords that only make sense against a
// JSON object instance.
const ObjectConstraintFields = Properties | PatternProperties | AdditionalProperties |
	Required | MinProperties | MaxProperties | DependentRequired | DependentSchemas |
	PropertyNames | UnevaluatedProperties

// ArrayConstraintFields are the keywords that only make sense against a
// JSON array instance.
const ArrayConstraintFields = PrefixItems | Items | AdditionalItems | Contains |
	MinItems | MaxItems | UniqueItems | MinContains | MaxContains | UnevaluatedItems

// StringConstraintFields are the keywords that only make sense against a
// JSON string instance.
const StringConstraintFields = MinLength | MaxLength | Pattern | ContentEncoding | ContentMediaType | ContentSchema

// NumericConstraintFields are the keywords that only make sense against a
// JSON number instance.
const NumericConstraintFields = MultipleOf | Minimum | Maximum | ExclusiveMinimum | ExclusiveMaximum

// ValueConstraintFields apply regardless of the instance's type.
const ValueConstraintFields = Enum | Const
