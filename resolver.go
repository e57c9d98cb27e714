package schema

import (
	"fmt"
	"strings"

	"github.com/kestrelschema/jsonschema/internal/field"
)

// ResolveRef implements the four-case reference resolution rule of §4.1:
// plain "#", "#/pointer", "#anchor", and "uri#fragment".
func (idx *Index) ResolveRef(node *Schema, ref string) (*Schema, error) {
	base := idx.baseURI[node]

	if ref == "#" {
		if s, ok := idx.schemasByURI[base]; ok {
			return s, nil
		}
		return idx.root, nil
	}
	if strings.HasPrefix(ref, "#/") {
		return idx.resolvePointer(base, ref[1:])
	}
	if strings.HasPrefix(ref, "#") {
		return idx.resolveAnchorName(base, ref[1:])
	}

	target, fragment := splitFragment(ref)
	resolved, err := resolveURI(base, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, ref)
	}
	root, ok := idx.schemasByURI[resolved]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, ref)
	}
	if fragment == "" {
		return root, nil
	}
	if isPlainAnchorFragment(fragment) {
		if s, ok := idx.anchors[anchorKey(resolved, fragment)]; ok {
			return s, nil
		}
		if s, ok := idx.anchors[anchorKey("", fragment)]; ok {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedAnchor, fragment)
	}
	return idx.resolvePointerFrom(root, fragment)
}

func (idx *Index) resolvePointer(base, pointer string) (*Schema, error) {
	root, ok := idx.schemasByURI[base]
	if !ok {
		root = idx.root
	}
	return idx.resolvePointerFrom(root, pointer)
}

func (idx *Index) resolvePointerFrom(root *Schema, pointer string) (*Schema, error) {
	tokens, err := decodeJSONPointer(pointer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSONPointer, pointer)
	}
	found, err := lookupJSONPointerFull(root, tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, pointer)
	}
	return found, nil
}

func (idx *Index) resolveAnchorName(base, name string) (*Schema, error) {
	if s, ok := idx.anchors[anchorKey(base, name)]; ok {
		return s, nil
	}
	if s, ok := idx.anchors[anchorKey("", name)]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnresolvedAnchor, name)
}

// ResolveDynamicRef implements §4.4.12: if fragment names an anchor that
// the statically-resolved target also declares as a $dynamicAnchor, the
// caller must scan the live dynamic scope; ResolveDynamicRef only performs
// the static half of that decision, returning the static target and
// whether it actually carries a matching $dynamicAnchor.
func (idx *Index) ResolveDynamicRef(node *Schema, ref string) (target *Schema, isDynamic bool, err error) {
	_, fragment := splitFragment(ref)
	if !isPlainAnchorFragment(fragment) {
		return nil, false, fmt.Errorf("%w: %s", ErrDynamicRefNotAnchor, ref)
	}
	target, err = idx.ResolveRef(node, ref)
	if err != nil {
		return nil, false, err
	}
	isDynamic = target.Has(field.DynamicAnchor) && target.dynamicAnchor == fragment
	return target, isDynamic, nil
}

// DynamicAnchorDeclarers returns every schema declaring $dynamicAnchor
// under name, in population order, for the runtime dynamic-scope scan.
func (idx *Index) DynamicAnchorDeclarers(name string) []*Schema {
	return idx.dynamicAnchors[name]
}

// ResourceAnchors returns the $dynamicAnchor names declared directly
// inside the resource identified by resourceID.
func (idx *Index) ResourceAnchors(resourceID string) []string {
	return idx.resourceDynamicAnchors[resourceID]
}
