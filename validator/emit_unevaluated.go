package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
)

// emitUnevaluatedProperties implements §4.4.15. additionalProperties, when
// present on the same node, already accounts for every key outside
// properties/patternProperties (succeeding or failing the call before
// this emitter would ever run), so unevaluatedProperties is a no-op in
// that case.
func (c *Compiler) emitUnevaluatedProperties(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	unevaluated := node.UnevaluatedProperties()
	if unevaluated == nil || !dialect.SupportsUnevaluated() {
		return nil
	}
	if !keywordEnabled(dialect, "unevaluatedProperties") {
		return nil
	}
	if node.AdditionalProperties() != nil {
		return nil
	}

	own := make(map[string]bool, len(node.Properties()))
	for name := range node.Properties() {
		own[name] = true
	}
	summary := c.analyzeProperties(node, map[*rootschema.Schema]bool{})
	rejectsAll := unevaluated.IsBoolean() && !unevaluated.BoolValue()
	proc := c.compileNode(unevaluated, dialect)

	return Func(func(ctx *Context) bool {
		obj, ok := ctx.Value.(map[string]any)
		if !ok {
			return true
		}
		for key, val := range obj {
			if own[key] || summary.claimsName(key, obj) {
				continue
			}
			child := ctx.child(val, PathElem{Key: key})
			if rejectsAll {
				return child.fail(fmt.Sprintf("unevaluated property %q is not allowed", key), "unevaluatedProperties")
			}
			if !proc.Validate(child) {
				return false
			}
		}
		return true
	})
}

// emitUnevaluatedItems implements §4.4.16, mirroring
// emitUnevaluatedProperties for arrays: a blanket "items" tail schema or
// additionalItems already covers every position past the tuple prefix.
func (c *Compiler) emitUnevaluatedItems(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	unevaluated := node.UnevaluatedItems()
	if unevaluated == nil || !dialect.SupportsUnevaluated() {
		return nil
	}
	if !keywordEnabled(dialect, "unevaluatedItems") {
		return nil
	}
	if node.AdditionalItems() != nil {
		return nil
	}
	if !node.ItemsIsTuple() && node.Items() != nil {
		return nil
	}

	ownPrefix := len(node.PrefixItems())
	summary := c.analyzeItems(node, map[*rootschema.Schema]bool{})
	claimedCount := ownPrefix
	if widened := summary.claimedPrefixCount(nil); widened > claimedCount {
		claimedCount = widened
	}
	rejectsAll := unevaluated.IsBoolean() && !unevaluated.BoolValue()
	proc := c.compileNode(unevaluated, dialect)

	return Func(func(ctx *Context) bool {
		arr, ok := ctx.Value.([]any)
		if !ok {
			return true
		}
		for i := claimedCount; i < len(arr); i++ {
			child := ctx.child(arr[i], PathElem{Index: i, IsIndex: true})
			if rejectsAll {
				return child.fail(fmt.Sprintf("unevaluated item at index %d is not allowed", i), "unevaluatedItems")
			}
			if !proc.Validate(child) {
				return false
			}
		}
		return true
	})
}
