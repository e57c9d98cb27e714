package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
	"github.com/kestrelschema/jsonschema/internal/field"
)

// dialectForTarget resolves the dialect in effect at target: if target's
// resource declares its own $schema, that wins; otherwise it inherits the
// calling context's dialect, which is correct for the common case of a
// $ref landing on a subschema within the same document.
func (c *Compiler) dialectForTarget(target *rootschema.Schema, fallback rootschema.Dialect) rootschema.Dialect {
	resourceID := c.idx.BaseURI(target)
	root, ok := c.idx.SchemaAt(resourceID)
	if !ok || !root.Has(field.Schema) {
		return fallback
	}
	return rootschema.ResolveDialect(rootschema.DetectDraft(root.SchemaURI()), root.Vocabulary())
}

// emitRef implements $ref (§4.4.11). With no $dynamicAnchor declared
// anywhere in the schema, a $ref chain resolves once at compile time;
// otherwise the target is still resolved statically here, since a plain
// $ref never consults the dynamic scope, only $dynamicRef does.
func (c *Compiler) emitRef(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	ref := node.Reference()
	target, err := c.idx.ResolveRef(node, ref)
	if err != nil {
		return Func(func(ctx *Context) bool {
			return ctx.fail(fmt.Sprintf("cannot resolve $ref %q: %v", ref, err), "$ref")
		})
	}
	targetDialect := c.dialectForTarget(target, dialect)
	proc := c.compileNode(target, targetDialect)
	return Func(func(ctx *Context) bool {
		return proc.Validate(ctx)
	})
}

// emitDynamicRef implements $dynamicRef (§4.4.12). The static half is
// resolved once at compile time via ResolveDynamicRef; the dynamic half
// — scanning the live call's dynamic scope for the bottommost frame
// declaring the same anchor name — happens on every call, since the
// winning frame depends on which resources are on the call stack, not on
// where $dynamicRef itself sits in the schema.
func (c *Compiler) emitDynamicRef(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	ref := node.DynamicReference()
	staticTarget, isDynamic, err := c.idx.ResolveDynamicRef(node, ref)
	if err != nil {
		return Func(func(ctx *Context) bool {
			return ctx.fail(fmt.Sprintf("cannot resolve $dynamicRef %q: %v", ref, err), "$dynamicRef")
		})
	}
	staticDialect := c.dialectForTarget(staticTarget, dialect)
	staticProc := c.compileNode(staticTarget, staticDialect)

	if !isDynamic {
		// The statically resolved target carries no matching
		// $dynamicAnchor: behaves exactly like a plain $ref.
		return Func(func(ctx *Context) bool {
			return staticProc.Validate(ctx)
		})
	}

	_, fragment := splitFragmentForDynamicRef(ref)
	return Func(func(ctx *Context) bool {
		if proc, ok := ctx.Scope.Resolve(fragment); ok {
			return proc.Validate(ctx)
		}
		return staticProc.Validate(ctx)
	})
}

func splitFragmentForDynamicRef(ref string) (string, string) {
	for i := 0; i < len(ref); i++ {
		if ref[i] == '#' {
			return ref[:i], ref[i+1:]
		}
	}
	return ref, ""
}
