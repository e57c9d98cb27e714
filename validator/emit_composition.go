package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
)

// emitComposition handles allOf, anyOf, oneOf, not, and if/then/else
// (§4.4.10). allOf threads the caller's sink through and stops at the
// first failing branch, whose own error surfaces; anyOf/oneOf/not/if run their branches silently and
// only report their own single failure on the parent's behalf.
func (c *Compiler) emitComposition(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	allOf := node.AllOf()
	anyOf := node.AnyOf()
	oneOf := node.OneOf()
	not := node.Not()
	ifSchema := node.IfSchema()
	thenSchema := node.ThenSchema()
	elseSchema := node.ElseSchema()

	if len(allOf) == 0 && len(anyOf) == 0 && len(oneOf) == 0 && not == nil && ifSchema == nil {
		return nil
	}

	allProcs := make([]Interface, len(allOf))
	for i, sub := range allOf {
		allProcs[i] = c.compileNode(sub, dialect)
	}
	anyProcs := make([]Interface, len(anyOf))
	for i, sub := range anyOf {
		anyProcs[i] = c.compileNode(sub, dialect)
	}
	oneProcs := make([]Interface, len(oneOf))
	for i, sub := range oneOf {
		oneProcs[i] = c.compileNode(sub, dialect)
	}
	var notProc, ifProc, thenProc, elseProc Interface
	if not != nil {
		notProc = c.compileNode(not, dialect)
	}
	if ifSchema != nil {
		ifProc = c.compileNode(ifSchema, dialect)
	}
	if thenSchema != nil {
		thenProc = c.compileNode(thenSchema, dialect)
	}
	if elseSchema != nil {
		elseProc = c.compileNode(elseSchema, dialect)
	}

	return Func(func(ctx *Context) bool {
		for _, proc := range allProcs {
			if !proc.Validate(ctx) {
				return false
			}
		}
		if len(anyProcs) > 0 {
			matched := false
			for _, proc := range anyProcs {
				if probe(proc, ctx, ctx.Value) {
					matched = true
					break
				}
			}
			if !matched {
				return ctx.fail("value matches none of the anyOf schemas", "anyOf")
			}
		}
		if len(oneProcs) > 0 {
			matches := 0
			for _, proc := range oneProcs {
				if probe(proc, ctx, ctx.Value) {
					matches++
				}
			}
			if matches != 1 {
				return ctx.fail(fmt.Sprintf("value matches %d of the oneOf schemas, want exactly 1", matches), "oneOf")
			}
		}
		if notProc != nil {
			if probe(notProc, ctx, ctx.Value) {
				return ctx.fail("value matches the not schema", "not")
			}
		}
		if ifProc != nil {
			if probe(ifProc, ctx, ctx.Value) {
				if thenProc != nil && !thenProc.Validate(ctx) {
					return false
				}
			} else if elseProc != nil {
				if !elseProc.Validate(ctx) {
					return false
				}
			}
		}
		return true
	})
}
