package validator

import (
	"fmt"

	rootschema "github.com/kestrelschema/jsonschema"
	"github.com/kestrelschema/jsonschema/format"
	"github.com/kestrelschema/jsonschema/internal/field"
	"github.com/kestrelschema/jsonschema/vocabulary"
)

// vocabRegistry maps every standard 2020-12 keyword to the vocabulary URI
// that governs it, so keywordEnabled can tell a keyword with a disabled
// vocabulary to compile to a no-op.
var vocabRegistry = vocabulary.DefaultSet()

// Compiler is the compile driver (C6). It owns the identifier index, the
// resolved options, a memoization cache keyed by schema node identity (so
// a node referenced twice compiles once and so $ref cycles terminate),
// and the "any dynamic anchors exist anywhere" flag (anyDynamic), which
// Compile records but no emitter reads.
type Compiler struct {
	idx     *rootschema.Index
	opts    *rootschema.Options
	formats *format.Registry

	cache     map[*rootschema.Schema]*lazyInterface
	anyDynamic bool
}

// lazyInterface is filled in after the node it represents finishes
// compiling, which is what lets two schema nodes refer to each other
// through $ref without the compiler recursing forever: the cache entry
// is installed before the referent is built, so a cyclic reference sees
// the placeholder and closes over it instead of re-entering buildValidator.
type lazyInterface struct {
	target Interface
}

func (l *lazyInterface) Validate(ctx *Context) bool {
	if l.target == nil {
		return ctx.fail("schema node never finished compiling", "$ref")
	}
	return l.target.Validate(ctx)
}

// CompiledSchema is the public compiled procedure (C8's entry point):
// Validate/Assert/Parse per §6.
type CompiledSchema struct {
	proc Interface
}

// Compile is the public compile entry from §6:
// compile(schema, options?) -> procedure.
//
// On an unresolvable $ref the schema still compiles successfully; the
// error surfaces at call time as a validation failure with
// keyword == "$ref", per the error-handling design in §7.
func Compile(s *rootschema.Schema, opts ...rootschema.CompileOption) (*CompiledSchema, error) {
	o := rootschema.NewOptions(opts)

	schemaURI := s.SchemaURI()
	if !s.Has(field.Schema) {
		schemaURI = o.DefaultMeta()
	}
	draft := rootschema.DetectDraft(schemaURI)

	vocab := map[string]bool(nil)
	if remotes := o.Remotes(); remotes != nil {
		if metaDoc, ok := remotes[schemaURI]; ok && metaDoc.Has(field.Vocabulary) {
			vocab = metaDoc.Vocabulary()
		}
	}
	if len(vocab) == 0 && s.Has(field.Vocabulary) {
		vocab = s.Vocabulary()
	}
	dialect := rootschema.ResolveDialect(draft, vocab)

	rootBase := ""
	if s.Has(field.ID) {
		rootBase = s.ID()
	}
	idx, err := rootschema.BuildIndex(s, rootBase, o.Remotes())
	if err != nil {
		return nil, fmt.Errorf("jsonschema: building index: %w", err)
	}

	formats := format.Default()
	for name, fn := range o.Formats() {
		formats.Register(name, fn)
	}

	c := &Compiler{
		idx:        idx,
		opts:       o,
		formats:    formats,
		cache:      map[*rootschema.Schema]*lazyInterface{},
		anyDynamic: idx.HasDynamicAnchors(),
	}

	proc := c.compileNode(s, dialect)
	return &CompiledSchema{proc: proc}, nil
}

// compileNode returns the compiled procedure for node, memoizing by
// pointer identity. dialect is the feature set in effect at node: it is
// recomputed only when node redeclares $schema (which requires node to
// also be a resource root, i.e. declare $id).
func (c *Compiler) compileNode(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	if node == nil {
		return alwaysTrue
	}
	if node.IsBoolean() {
		if node.BoolValue() {
			return alwaysTrue
		}
		return alwaysFalse
	}
	if cached, ok := c.cache[node]; ok {
		return cached
	}
	lazy := &lazyInterface{}
	c.cache[node] = lazy

	nodeDialect := dialect
	if node.Has(field.Schema) {
		nodeDialect = rootschema.ResolveDialect(rootschema.DetectDraft(node.SchemaURI()), node.Vocabulary())
	}

	built := c.buildValidator(node, nodeDialect)
	built = c.wrapCoercion(node, built)
	lazy.target = c.wrapResourceEntry(node, nodeDialect, built)
	return lazy
}

// wrapResourceEntry pushes a resource's $dynamicAnchor declarations onto
// the dynamic scope on entry and pops them on exit, per §4.4.12: the push
// happens once, at the body of the schema that either declares $id or is
// the unnamed root resource, so every $dynamicRef reachable underneath
// sees the anchors this resource contributes regardless of how deep the
// call nests.
func (c *Compiler) wrapResourceEntry(node *rootschema.Schema, dialect rootschema.Dialect, inner Interface) Interface {
	isResourceRoot := node.Has(field.ID) || node == c.idx.Root()
	if !isResourceRoot {
		return inner
	}
	resourceID := c.idx.BaseURI(node)
	names := c.idx.ResourceAnchors(resourceID)
	if len(names) == 0 {
		return inner
	}
	declarers := c.idx.ResourceAnchorSchemas(resourceID)
	procs := make([]Interface, len(declarers))
	for i, d := range declarers {
		procs[i] = c.compileNode(d, dialect)
	}
	return Func(func(ctx *Context) bool {
		n := ctx.Scope.Push(names, procs)
		defer ctx.Scope.Pop(n)
		return inner.Validate(ctx)
	})
}

// buildValidator assembles the fixed-order emitter chain from §4.5:
//
//	type → const → enum → string → format → content → number → items →
//	array-constraints → object-constraints → properties → composition →
//	$ref → $dynamicRef → contains → dependentRequired → propertyNames →
//	dependentSchemas → dependencies(legacy) → unevaluatedProperties →
//	unevaluatedItems
//
// When legacy_ref is in effect and the node carries $ref, the ref is the
// only active emitter: every sibling keyword is ignored.
func (c *Compiler) buildValidator(node *rootschema.Schema, dialect rootschema.Dialect) Interface {
	legacyRef := c.opts.ResolvedLegacyRef(dialect)
	if legacyRef && node.Has(field.Reference) {
		return c.emitRef(node, dialect)
	}

	checks := make([]Interface, 0, 20)
	add := func(v Interface) {
		if v != nil {
			checks = append(checks, v)
		}
	}

	add(c.emitType(node))
	add(c.emitConstEnum(node))
	add(c.emitString(node))
	add(c.emitFormat(node, dialect))
	add(c.emitContent(node, dialect))
	add(c.emitNumber(node))
	add(c.emitItems(node, dialect))
	add(c.emitArrayConstraints(node))
	add(c.emitObjectConstraints(node))
	add(c.emitProperties(node, dialect))
	add(c.emitComposition(node, dialect))
	if node.Has(field.Reference) {
		add(c.emitRef(node, dialect))
	}
	if node.Has(field.DynamicReference) {
		add(c.emitDynamicRef(node, dialect))
	}
	add(c.emitContains(node, dialect))
	add(c.emitDependentRequired(node))
	add(c.emitPropertyNames(node, dialect))
	add(c.emitDependentSchemas(node, dialect))
	add(c.emitUnevaluatedProperties(node, dialect))
	add(c.emitUnevaluatedItems(node, dialect))

	return andAll(checks)
}

// keywordEnabled reports whether keyword's governing vocabulary is active
// under dialect. A keyword with no known vocabulary (legacy-draft-only
// keywords such as "dependencies") is always enabled.
func keywordEnabled(dialect rootschema.Dialect, keyword string) bool {
	uri := vocabRegistry.KeywordVocabulary(keyword)
	if uri == "" {
		return true
	}
	return dialect.VocabularyEnabled(uri)
}

// andAll combines checks with short-circuit AND, matching the
// first-error-per-call propagation policy in §7.
func andAll(checks []Interface) Interface {
	if len(checks) == 0 {
		return alwaysTrue
	}
	if len(checks) == 1 {
		return checks[0]
	}
	return Func(func(ctx *Context) bool {
		for _, chk := range checks {
			if !chk.Validate(ctx) {
				return false
			}
		}
		return true
	})
}

// probe runs v against value with no sink, for callers (anyOf/oneOf/if)
// that need a boolean without polluting the caller's error list.
func probe(v Interface, ctx *Context, value any) bool {
	probeCtx := ctx.silent()
	probeCtx.Value = value
	return v.Validate(probeCtx)
}
