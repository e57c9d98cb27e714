package schema

import (
	"fmt"

	"github.com/kestrelschema/jsonschema/internal/field"
)

// rootResource is the sentinel key used for the root schema's resource
// identity when it declares no $id.
const rootResource = ""

// Index is the identifier & reference index (C2): a single depth-first
// walk of the root schema plus every remotes entry collects every place a
// later $ref/$dynamicRef can land.
type Index struct {
	// schemasByURI maps an absolute URI (no fragment) to the schema
	// resource registered under it, via $id, a remotes entry, or a
	// fragment reached through JSON-pointer resolution.
	schemasByURI map[string]*Schema

	// anchors maps "baseURI#anchor" to the schema declaring that $anchor.
	anchors map[string]*Schema

	// dynamicAnchors maps anchor name to every schema declaring
	// $dynamicAnchor under that name, in population order.
	dynamicAnchors map[string][]*Schema

	// baseURI maps a schema node to the base URI in effect at that node.
	baseURI map[*Schema]string

	// resourceDynamicAnchors maps a resource identity (its $id, or
	// rootResource) to the $dynamicAnchor names declared directly inside
	// that resource, not crossing a nested $id boundary.
	resourceDynamicAnchors map[string][]string

	// resourceAnchorNodes parallels resourceDynamicAnchors, holding the
	// schema node that declares each corresponding name, so a compiler can
	// push {name, that node's compiled procedure} at resource entry.
	resourceAnchorNodes map[string][]*Schema

	root *Schema
}

func newIndex() *Index {
	return &Index{
		schemasByURI:           map[string]*Schema{},
		anchors:                map[string]*Schema{},
		dynamicAnchors:         map[string][]*Schema{},
		baseURI:                map[*Schema]string{},
		resourceDynamicAnchors: map[string][]string{},
		resourceAnchorNodes:    map[string][]*Schema{},
	}
}

// BuildIndex populates the index from root and remotes. defaultBase is the
// resolved $id of the root, or "" if the root declares none.
func BuildIndex(root *Schema, defaultBase string, remotes map[string]*Schema) (*Index, error) {
	idx := newIndex()
	idx.root = root

	if err := idx.walk(root, defaultBase, defaultBase); err != nil {
		return nil, err
	}
	for uri, remoteRoot := range remotes {
		if err := idx.walk(remoteRoot, uri, uri); err != nil {
			return nil, err
		}
	}
	if defaultBase != "" {
		idx.schemasByURI[defaultBase] = root
	}
	return idx, nil
}

// walk registers node and recurses into every structural keyword that can
// hold a subschema, per the population rule in §4.1. base is the URI
// inherited from the enclosing context; resource is the identity of the
// nearest enclosing $id (or rootResource).
func (idx *Index) walk(node *Schema, base, resource string) error {
	if node == nil || node.IsBoolean() {
		return nil
	}

	effectiveBase := base
	if node.Has(field.ID) {
		resolved, err := resolveURI(base, node.id)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnresolvedReference, node.id)
		}
		effectiveBase = resolved
		resource = resolved
		idx.schemasByURI[resolved] = node
	}
	idx.baseURI[node] = effectiveBase

	if node.Has(field.Anchor) && node.anchor != "" {
		idx.anchors[anchorKey(effectiveBase, node.anchor)] = node
	}
	if node.Has(field.DynamicAnchor) && node.dynamicAnchor != "" {
		// $dynamicAnchor also behaves as a plain $anchor for static
		// resolution: ResolveDynamicRef's static half resolves the
		// fragment exactly like $ref before deciding whether to scan the
		// dynamic scope, so the name must be reachable here too.
		if _, exists := idx.anchors[anchorKey(effectiveBase, node.dynamicAnchor)]; !exists {
			idx.anchors[anchorKey(effectiveBase, node.dynamicAnchor)] = node
		}
		idx.dynamicAnchors[node.dynamicAnchor] = append(idx.dynamicAnchors[node.dynamicAnchor], node)
		idx.resourceDynamicAnchors[resource] = append(idx.resourceDynamicAnchors[resource], node.dynamicAnchor)
		idx.resourceAnchorNodes[resource] = append(idx.resourceAnchorNodes[resource], node)
	}

	descend := func(sub *Schema) error { return idx.walk(sub, effectiveBase, resource) }
	descendList := func(subs []*Schema) error {
		for _, sub := range subs {
			if err := descend(sub); err != nil {
				return err
			}
		}
		return nil
	}
	descendMap := func(subs map[string]*Schema) error {
		for _, sub := range subs {
			if err := descend(sub); err != nil {
				return err
			}
		}
		return nil
	}

	for _, sub := range []*Schema{
		node.additionalItems, node.additionalProperties, node.propertyNames,
		node.contains, node.not, node.ifSchema, node.thenSchema, node.elseSchema,
		node.unevaluatedProperties, node.unevaluatedItems, node.contentSchema, node.items,
	} {
		if err := descend(sub); err != nil {
			return err
		}
	}
	for _, subs := range [][]*Schema{node.prefixItems, node.allOf, node.anyOf, node.oneOf} {
		if err := descendList(subs); err != nil {
			return err
		}
	}
	for _, subs := range []map[string]*Schema{
		node.definitions, node.properties, node.patternProperties, node.dependentSchemas,
	} {
		if err := descendMap(subs); err != nil {
			return err
		}
	}
	return nil
}

func anchorKey(base, anchor string) string { return base + "#" + anchor }

// BaseURI returns the base URI registered for node during population.
func (idx *Index) BaseURI(node *Schema) string { return idx.baseURI[node] }

// Root returns the schema the index was built from.
func (idx *Index) Root() *Schema { return idx.root }

// SchemaAt returns the schema resource registered under the absolute URI
// uri (via $id, a remotes entry, or the default base), if any.
func (idx *Index) SchemaAt(uri string) (*Schema, bool) {
	s, ok := idx.schemasByURI[uri]
	return s, ok
}

// ResourceAnchorSchemas returns, parallel to ResourceAnchors, the schema
// node declaring each corresponding $dynamicAnchor name directly inside
// the resource identified by resourceID.
func (idx *Index) ResourceAnchorSchemas(resourceID string) []*Schema {
	return idx.resourceAnchorNodes[resourceID]
}

// HasDynamicAnchors reports whether any schema in the index declares
// $dynamicAnchor. The compiler stores the result in Compiler.anyDynamic;
// $ref targets are resolved once at compile time whatever it reports.
func (idx *Index) HasDynamicAnchors() bool { return len(idx.dynamicAnchors) > 0 }
