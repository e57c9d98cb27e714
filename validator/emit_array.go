package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
)

// emitItems handles prefixItems/items/additionalItems across dialects
// per §4.4.8. 2020-12+ schemas use prefixItems for the tuple prefix and
// items for the tail; draft-07 and earlier encode the same shape as an
// array-valued "items" (tuple positions) plus "additionalItems" (tail),
// which schema_keywords.go already normalizes into prefixItems with
// itemsIsTuple set, so this emitter reads one shape regardless of draft.
func (c *Compiler) emitItems(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	prefix := node.PrefixItems()
	items := node.Items()
	additional := node.AdditionalItems()
	isTuple := node.ItemsIsTuple()

	if len(prefix) == 0 && items == nil {
		return nil
	}

	prefixProcs := make([]Interface, len(prefix))
	for i, sub := range prefix {
		prefixProcs[i] = c.compileNode(sub, dialect)
	}

	var tailProc Interface
	var tailKeyword string
	var tailRejectsAll bool
	if isTuple && !dialect.SupportsPrefixItems() {
		// draft-07 and earlier tuple form: additionalItems is the tail.
		if additional != nil {
			tailProc = c.compileNode(additional, dialect)
			tailKeyword = "additionalItems"
			tailRejectsAll = additional.IsBoolean() && !additional.BoolValue()
		}
	} else if items != nil {
		tailProc = c.compileNode(items, dialect)
		tailKeyword = "items"
		tailRejectsAll = items.IsBoolean() && !items.BoolValue()
	}

	// A single-schema "items" with no tuple prefix applies uniformly; after
	// a prefixItems prefix it is the tail handled above.
	var uniformProc Interface
	var uniformRejectsAll bool
	if !isTuple && items != nil && len(prefix) == 0 {
		uniformProc = c.compileNode(items, dialect)
		uniformRejectsAll = items.IsBoolean() && !items.BoolValue()
	}

	return Func(func(ctx *Context) bool {
		arr, ok := ctx.Value.([]any)
		if !ok {
			return true
		}
		if uniformProc != nil {
			for i, elem := range arr {
				child := ctx.child(elem, PathElem{Index: i, IsIndex: true})
				if uniformRejectsAll {
					return child.fail(fmt.Sprintf("item at index %d is not allowed", i), "items")
				}
				if !uniformProc.Validate(child) {
					return false
				}
			}
			return true
		}
		for i, elem := range arr {
			var proc Interface
			var keyword string
			switch {
			case i < len(prefixProcs):
				proc = prefixProcs[i]
			case tailProc != nil:
				proc = tailProc
				keyword = tailKeyword
			default:
				continue
			}
			child := ctx.child(elem, PathElem{Index: i, IsIndex: true})
			if keyword != "" && tailRejectsAll {
				return child.fail(fmt.Sprintf("item at index %d is not allowed", i), keyword)
			}
			if !proc.Validate(child) {
				return false
			}
		}
		return true
	})
}

func (c *Compiler) emitArrayConstraints(node *rootschema.Schema) Interface {
	minItems := node.MinItems()
	maxItems := node.MaxItems()
	unique := node.UniqueItems()

	if minItems == nil && maxItems == nil && !unique {
		return nil
	}

	return Func(func(ctx *Context) bool {
		arr, ok := ctx.Value.([]any)
		if !ok {
			return true
		}
		if minItems != nil && len(arr) < *minItems {
			return ctx.fail(fmt.Sprintf("array has %d items, want at least %d", len(arr), *minItems), "minItems")
		}
		if maxItems != nil && len(arr) > *maxItems {
			return ctx.fail(fmt.Sprintf("array has %d items, want at most %d", len(arr), *maxItems), "maxItems")
		}
		if unique && hasDuplicate(arr) {
			return ctx.fail("array items are not unique", "uniqueItems")
		}
		return true
	})
}

func hasDuplicate(arr []any) bool {
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqualJSON(arr[i], arr[j]) {
				return true
			}
		}
	}
	return false
}

func (c *Compiler) emitContains(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	contains := node.Contains()
	minContains := node.MinContains()
	maxContains := node.MaxContains()
	if contains == nil {
		return nil
	}
	proc := c.compileNode(contains, dialect)

	return Func(func(ctx *Context) bool {
		arr, ok := ctx.Value.([]any)
		if !ok {
			return true
		}
		matches := 0
		for _, elem := range arr {
			if probe(proc, ctx, elem) {
				matches++
			}
		}
		min := 1
		if minContains != nil {
			min = *minContains
		}
		if matches < min {
			return ctx.fail(fmt.Sprintf("array has %d matching items, want at least %d", matches, min), "contains")
		}
		if maxContains != nil && matches > *maxContains {
			return ctx.fail(fmt.Sprintf("array has %d matching items, want at most %d", matches, *maxContains), "maxContains")
		}
		return true
	})
}
