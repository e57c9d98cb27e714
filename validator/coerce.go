package validator

import (
	"strconv"

	rootschema "github.com/kestrelschema/jsonschema"
)

// wrapCoercion applies §6's loose-coercion pass ahead of every other
// check at node: when the caller opted in via WithCoerce/WithCoerceOptions
// and the instance's JSON type doesn't match what "type" wants, a
// same-family conversion (string "42" -> number 42, number 1 -> string
// "1", ...) is tried before the value ever reaches emitType. A value the
// coercion can't convert is passed through unchanged, so the later type
// check still reports the original mismatch.
func (c *Compiler) wrapCoercion(node *rootschema.Schema, built Interface) Interface {
	coerce, explicit := c.opts.Coerce()
	if !explicit || !anyCoerceEnabled(coerce) {
		return built
	}
	types := node.Types()
	if len(types) == 0 {
		return built
	}
	return Func(func(ctx *Context) bool {
		coerced, changed := coerceValue(ctx.Value, types, coerce)
		if !changed {
			return built.Validate(ctx)
		}
		child := &Context{Value: coerced, Sink: ctx.Sink, Path: ctx.Path, Scope: ctx.Scope}
		return built.Validate(child)
	})
}

func anyCoerceEnabled(c rootschema.CoerceOptions) bool {
	return c.String || c.Number || c.Integer || c.Boolean || c.Null || c.Array
}

func coerceValue(v any, types rootschema.TypeSet, opts rootschema.CoerceOptions) (any, bool) {
	if typeAlreadySatisfied(v, types) {
		return v, false
	}
	if (opts.Number || opts.Integer) && (types.Contains(rootschema.NumberType) || types.Contains(rootschema.IntegerType)) {
		if s, ok := v.(string); ok {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	if opts.String && types.Contains(rootschema.StringType) {
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), true
		case bool:
			return strconv.FormatBool(n), true
		}
	}
	if opts.Boolean && types.Contains(rootschema.BooleanType) {
		if s, ok := v.(string); ok {
			if b, err := strconv.ParseBool(s); err == nil {
				return b, true
			}
		}
	}
	if opts.Null && types.Contains(rootschema.NullType) {
		if s, ok := v.(string); ok && s == "" {
			return nil, true
		}
	}
	if opts.Array && types.Contains(rootschema.ArrayType) {
		if _, ok := v.([]any); !ok && v != nil {
			return []any{v}, true
		}
	}
	return v, false
}

func typeAlreadySatisfied(v any, types rootschema.TypeSet) bool {
	actual := jsonTypeOf(v)
	if types.Contains(actual) {
		return true
	}
	return actual == rootschema.IntegerType && types.Contains(rootschema.NumberType)
}
