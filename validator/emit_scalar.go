package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	rootschema "github.com/kestrelschema/jsonschema"
	"github.com/kestrelschema/jsonschema/internal/field"
)

// jsonTypeOf classifies a decoded JSON value the way the "type" keyword
// expects: integers are number values whose mathematical value has no
// fractional part, matching the data model's "integer" rule rather than
// Go's static int/float64 split.
func jsonTypeOf(v any) rootschema.PrimitiveType {
	switch val := v.(type) {
	case nil:
		return rootschema.NullType
	case bool:
		return rootschema.BooleanType
	case string:
		return rootschema.StringType
	case float64:
		if val == float64(int64(val)) {
			return rootschema.IntegerType
		}
		return rootschema.NumberType
	case int, int64, int32:
		return rootschema.IntegerType
	case []any:
		return rootschema.ArrayType
	case map[string]any:
		return rootschema.ObjectType
	default:
		return rootschema.NumberType
	}
}

func (c *Compiler) emitType(node *rootschema.Schema) Interface {
	types := node.Types()
	if len(types) == 0 {
		return nil
	}
	return Func(func(ctx *Context) bool {
		actual := jsonTypeOf(ctx.Value)
		if types.Contains(actual) {
			return true
		}
		if actual == rootschema.IntegerType && types.Contains(rootschema.NumberType) {
			return true
		}
		return ctx.fail(fmt.Sprintf("value of type %s, want %v", actual, types), "type")
	})
}

func (c *Compiler) emitConstEnum(node *rootschema.Schema) Interface {
	hasConst := node.Has(field.Const)
	enum := node.Enum()
	if !hasConst && enum == nil {
		return nil
	}
	return Func(func(ctx *Context) bool {
		if hasConst {
			if !deepEqualJSON(ctx.Value, node.Const()) {
				return ctx.fail("value does not equal const", "const")
			}
		}
		if enum != nil {
			for _, candidate := range enum {
				if deepEqualJSON(ctx.Value, candidate) {
					return true
				}
			}
			return ctx.fail("value is not one of the enumerated values", "enum")
		}
		return true
	})
}

func (c *Compiler) emitString(node *rootschema.Schema) Interface {
	minLen := node.MinLength()
	maxLen := node.MaxLength()
	pattern := node.Pattern()

	if minLen == nil && maxLen == nil && pattern == "" {
		return nil
	}

	var re *regexp.Regexp
	if pattern != "" {
		re, _ = regexp.Compile(pattern)
	}

	return Func(func(ctx *Context) bool {
		s, ok := ctx.Value.(string)
		if !ok {
			return true
		}
		n := utf8.RuneCountInString(s)
		if minLen != nil && n < *minLen {
			return ctx.fail(fmt.Sprintf("length %d is less than minLength %d", n, *minLen), "minLength")
		}
		if maxLen != nil && n > *maxLen {
			return ctx.fail(fmt.Sprintf("length %d is greater than maxLength %d", n, *maxLen), "maxLength")
		}
		if re != nil && !re.MatchString(s) {
			return ctx.fail(fmt.Sprintf("value does not match pattern %q", pattern), "pattern")
		}
		return true
	})
}

func (c *Compiler) emitNumber(node *rootschema.Schema) Interface {
	multipleOf := node.MultipleOf()
	minimum := node.Minimum()
	maximum := node.Maximum()
	exclusiveMinimum := node.ExclusiveMinimum()
	exclusiveMaximum := node.ExclusiveMaximum()
	legacyExclMin := node.LegacyExclusiveMinimum()
	legacyExclMax := node.LegacyExclusiveMaximum()

	if multipleOf == nil && minimum == nil && maximum == nil &&
		exclusiveMinimum == nil && exclusiveMaximum == nil {
		return nil
	}

	// Collapse the legacy boolean-modifier form onto the plain bound, per
	// §4.4.4: draft-04's "exclusiveMinimum": true means minimum is
	// exclusive, there being no separate numeric exclusiveMinimum keyword.
	minExclusive := exclusiveMinimum != nil
	effectiveMin := minimum
	if legacyExclMin != nil && *legacyExclMin {
		minExclusive = true
	}
	if exclusiveMinimum != nil {
		effectiveMin = exclusiveMinimum
	}

	maxExclusive := exclusiveMaximum != nil
	effectiveMax := maximum
	if legacyExclMax != nil && *legacyExclMax {
		maxExclusive = true
	}
	if exclusiveMaximum != nil {
		effectiveMax = exclusiveMaximum
	}

	return Func(func(ctx *Context) bool {
		r := ratOfInstance(ctx.Value)
		if r == nil {
			return true
		}
		if multipleOf != nil && !r.IsMultipleOf(multipleOf) {
			return ctx.fail(fmt.Sprintf("%s is not a multiple of %s", r.String(), multipleOf.String()), "multipleOf")
		}
		if effectiveMin != nil {
			cmp := r.Cmp(effectiveMin.Rat)
			if minExclusive && cmp <= 0 {
				return ctx.fail(fmt.Sprintf("%s is not greater than %s", r.String(), effectiveMin.String()), "exclusiveMinimum")
			}
			if !minExclusive && cmp < 0 {
				return ctx.fail(fmt.Sprintf("%s is less than %s", r.String(), effectiveMin.String()), "minimum")
			}
		}
		if effectiveMax != nil {
			cmp := r.Cmp(effectiveMax.Rat)
			if maxExclusive && cmp >= 0 {
				return ctx.fail(fmt.Sprintf("%s is not less than %s", r.String(), effectiveMax.String()), "exclusiveMaximum")
			}
			if !maxExclusive && cmp > 0 {
				return ctx.fail(fmt.Sprintf("%s is greater than %s", r.String(), effectiveMax.String()), "maximum")
			}
		}
		return true
	})
}

func ratOfInstance(v any) *rootschema.Rat {
	switch v.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return rootschema.NewRat(v)
	default:
		return nil
	}
}

// deepEqualJSON compares two decoded JSON values per the data model's
// equality rule: same type, structurally equal; numbers compare by
// mathematical value, not by Go representation (1 equals 1.0).
func deepEqualJSON(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := toFloat(b)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqualJSON(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !deepEqualJSON(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
