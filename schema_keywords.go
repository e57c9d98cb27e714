package schema

import (
	"encoding/json"
	"fmt"

	"github.com/kestrelschema/jsonschema/internal/field"
)

// assignKeyword decodes one top-level JSON member into the matching Schema
// field and marks it populated. Keywords this implementation does not
// recognize are ignored and are not kept on the Schema.
func (s *Schema) assignKeyword(key string, raw json.RawMessage) error {
	switch key {
	case "$id":
		return s.setString(&s.id, field.ID, raw)
	case "$schema":
		return s.setString(&s.schemaURI, field.Schema, raw)
	case "$ref":
		return s.setString(&s.reference, field.Reference, raw)
	case "$dynamicRef":
		return s.setString(&s.dynamicReference, field.DynamicReference, raw)
	case "$anchor":
		return s.setString(&s.anchor, field.Anchor, raw)
	case "$dynamicAnchor":
		return s.setString(&s.dynamicAnchor, field.DynamicAnchor, raw)
	case "$comment":
		return s.setString(&s.comment, field.Comment, raw)
	case "$vocabulary":
		var m map[string]bool
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		s.vocabulary = m
		s.populated |= field.Vocabulary
		return nil

	case "type":
		var t TypeSet
		if err := json.Unmarshal(raw, &t); err != nil {
			return err
		}
		s.types = t
		s.populated |= field.Types
		return nil
	case "enum":
		var v []any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.enum = v
		s.populated |= field.Enum
		return nil
	case "const":
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.cnst = v
		s.populated |= field.Const
		return nil

	case "multipleOf":
		return s.setRat(&s.multipleOf, field.MultipleOf, raw)
	case "minimum":
		return s.setRat(&s.minimum, field.Minimum, raw)
	case "maximum":
		return s.setRat(&s.maximum, field.Maximum, raw)
	case "exclusiveMinimum":
		return s.setExclusiveBound(&s.exclusiveMinimum, &s.legacyExclusiveMinimum, field.ExclusiveMinimum, raw)
	case "exclusiveMaximum":
		return s.setExclusiveBound(&s.exclusiveMaximum, &s.legacyExclusiveMaximum, field.ExclusiveMaximum, raw)

	case "minLength":
		return s.setInt(&s.minLength, field.MinLength, raw)
	case "maxLength":
		return s.setInt(&s.maxLength, field.MaxLength, raw)
	case "pattern":
		return s.setString(&s.pattern, field.Pattern, raw)

	case "prefixItems":
		list, err := decodeSchemaList(raw)
		if err != nil {
			return err
		}
		s.prefixItems = list
		s.populated |= field.PrefixItems
		return nil
	case "items":
		// Draft 2020-12 uses a single schema. Draft 4-07 allow items to be
		// an array of per-position schemas, in which case it plays the
		// role prefixItems plays in later drafts.
		if isJSONArray(raw) {
			list, err := decodeSchemaList(raw)
			if err != nil {
				return err
			}
			s.prefixItems = list
			s.itemsIsTuple = true
			s.populated |= field.PrefixItems | field.Items
			return nil
		}
		sub, err := decodeSchema(raw)
		if err != nil {
			return err
		}
		s.items = sub
		s.populated |= field.Items
		return nil
	case "additionalItems":
		return s.setSchema(&s.additionalItems, field.AdditionalItems, raw)
	case "contains":
		return s.setSchema(&s.contains, field.Contains, raw)
	case "minItems":
		return s.setInt(&s.minItems, field.MinItems, raw)
	case "maxItems":
		return s.setInt(&s.maxItems, field.MaxItems, raw)
	case "uniqueItems":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		s.uniqueItems = b
		s.populated |= field.UniqueItems
		return nil
	case "minContains":
		return s.setInt(&s.minContains, field.MinContains, raw)
	case "maxContains":
		return s.setInt(&s.maxContains, field.MaxContains, raw)

	case "properties":
		m, err := decodeSchemaMap(raw)
		if err != nil {
			return err
		}
		s.properties = m
		s.populated |= field.Properties
		return nil
	case "patternProperties":
		m, err := decodeSchemaMap(raw)
		if err != nil {
			return err
		}
		s.patternProperties = m
		s.populated |= field.PatternProperties
		return nil
	case "additionalProperties":
		return s.setSchema(&s.additionalProperties, field.AdditionalProperties, raw)
	case "propertyNames":
		return s.setSchema(&s.propertyNames, field.PropertyNames, raw)
	case "required":
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.required = v
		s.populated |= field.Required
		return nil
	case "minProperties":
		return s.setInt(&s.minProperties, field.MinProperties, raw)
	case "maxProperties":
		return s.setInt(&s.maxProperties, field.MaxProperties, raw)
	case "dependentRequired":
		var v map[string][]string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.dependentRequired = v
		s.populated |= field.DependentRequired
		return nil
	case "dependentSchemas":
		m, err := decodeSchemaMap(raw)
		if err != nil {
			return err
		}
		s.dependentSchemas = m
		s.populated |= field.DependentSchemas
		return nil
	case "dependencies":
		// Legacy draft-07 and earlier keyword: each member is either an
		// array of required property names, or a schema.
		return s.assignLegacyDependencies(raw)

	case "allOf":
		list, err := decodeSchemaList(raw)
		if err != nil {
			return err
		}
		s.allOf = list
		s.populated |= field.AllOf
		return nil
	case "anyOf":
		list, err := decodeSchemaList(raw)
		if err != nil {
			return err
		}
		s.anyOf = list
		s.populated |= field.AnyOf
		return nil
	case "oneOf":
		list, err := decodeSchemaList(raw)
		if err != nil {
			return err
		}
		s.oneOf = list
		s.populated |= field.OneOf
		return nil
	case "not":
		return s.setSchema(&s.not, field.Not, raw)
	case "if":
		return s.setSchema(&s.ifSchema, field.IfSchema, raw)
	case "then":
		return s.setSchema(&s.thenSchema, field.ThenSchema, raw)
	case "else":
		return s.setSchema(&s.elseSchema, field.ElseSchema, raw)

	case "unevaluatedProperties":
		return s.setSchema(&s.unevaluatedProperties, field.UnevaluatedProperties, raw)
	case "unevaluatedItems":
		return s.setSchema(&s.unevaluatedItems, field.UnevaluatedItems, raw)

	case "format":
		return s.setString(&s.format, field.Format, raw)

	case "contentEncoding":
		return s.setString(&s.contentEncoding, field.ContentEncoding, raw)
	case "contentMediaType":
		return s.setString(&s.contentMediaType, field.ContentMediaType, raw)
	case "contentSchema":
		return s.setSchema(&s.contentSchema, field.ContentSchema, raw)

	case "$defs", "definitions":
		m, err := decodeSchemaMap(raw)
		if err != nil {
			return err
		}
		if s.definitions == nil {
			s.definitions = m
		} else {
			for k, v := range m {
				s.definitions[k] = v
			}
		}
		s.populated |= field.Definitions
		return nil

	case "title":
		return s.setString(&s.title, field.Title, raw)
	case "description":
		return s.setString(&s.description, field.Description, raw)
	case "default":
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.defaultVal = v
		s.populated |= field.Default
		return nil
	case "deprecated":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		s.deprecated = b
		s.populated |= field.Deprecated
		return nil
	case "readOnly":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		s.readOnly = b
		s.populated |= field.ReadOnly
		return nil
	case "writeOnly":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		s.writeOnly = b
		s.populated |= field.WriteOnly
		return nil
	case "examples":
		var v []any
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.examples = v
		s.populated |= field.Examples
		return nil

	default:
		return nil
	}
}

func (s *Schema) assignLegacyDependencies(raw json.RawMessage) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return err
	}
	for name, value := range members {
		if isJSONArray(value) {
			var names []string
			if err := json.Unmarshal(value, &names); err != nil {
				return err
			}
			if s.dependentRequired == nil {
				s.dependentRequired = map[string][]string{}
			}
			s.dependentRequired[name] = names
			s.populated |= field.DependentRequired
			continue
		}
		sub, err := decodeSchema(value)
		if err != nil {
			return err
		}
		if s.dependentSchemas == nil {
			s.dependentSchemas = map[string]*Schema{}
		}
		s.dependentSchemas[name] = sub
		s.populated |= field.DependentSchemas
	}
	return nil
}

func (s *Schema) setExclusiveBound(numeric **Rat, legacy **bool, f field.Flag, raw json.RawMessage) error {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		*legacy = &b
		s.populated |= f
		return nil
	}
	return s.setRat(numeric, f, raw)
}

func (s *Schema) setString(dst *string, f field.Flag, raw json.RawMessage) error {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	s.populated |= f
	return nil
}

func (s *Schema) setInt(dst **int, f field.Flag, raw json.RawMessage) error {
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = &v
	s.populated |= f
	return nil
}

func (s *Schema) setRat(dst **Rat, f field.Flag, raw json.RawMessage) error {
	var v json.Number
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	r := NewRat(v.String())
	if r == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedRatValue, v.String())
	}
	*dst = r
	s.populated |= f
	return nil
}

func (s *Schema) setSchema(dst **Schema, f field.Flag, raw json.RawMessage) error {
	sub, err := decodeSchema(raw)
	if err != nil {
		return err
	}
	*dst = sub
	s.populated |= f
	return nil
}

func decodeSchema(raw json.RawMessage) (*Schema, error) {
	sub := &Schema{}
	if err := sub.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return sub, nil
}

func decodeSchemaList(raw json.RawMessage) ([]*Schema, error) {
	var rawList []json.RawMessage
	if err := json.Unmarshal(raw, &rawList); err != nil {
		return nil, err
	}
	out := make([]*Schema, len(rawList))
	for i, item := range rawList {
		sub, err := decodeSchema(item)
		if err != nil {
			return nil, err
		}
		out[i] = sub
	}
	return out, nil
}

func decodeSchemaMap(raw json.RawMessage) (map[string]*Schema, error) {
	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rawMap); err != nil {
		return nil, err
	}
	out := make(map[string]*Schema, len(rawMap))
	for k, item := range rawMap {
		sub, err := decodeSchema(item)
		if err != nil {
			return nil, err
		}
		out[k] = sub
	}
	return out, nil
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
