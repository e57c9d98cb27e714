package schema

import (
	"net/url"
	"strconv"
	"strings"
)

// resolveURI resolves ref against base the way a $id or $ref string is
// resolved against the schema's enclosing base URI: standard RFC 3986
// relative resolution, with the fragment preserved verbatim when ref is
// fragment-only.
func resolveURI(base, ref string) (string, error) {
	if ref == "" {
		return base, nil
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if base == "" {
		return refURL.String(), nil
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// splitFragment separates a URI into its non-fragment part and fragment
// (without the leading '#').
func splitFragment(uri string) (string, string) {
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		return uri[:i], uri[i+1:]
	}
	return uri, ""
}

// isPlainAnchorFragment reports whether fragment looks like a bare anchor
// name ("#name") as opposed to a JSON pointer ("#/a/b") or empty ("#").
func isPlainAnchorFragment(fragment string) bool {
	return fragment != "" && !strings.HasPrefix(fragment, "/")
}

// decodeJSONPointer splits a JSON pointer (without its leading '#') into
// unescaped reference tokens.
func decodeJSONPointer(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return nil, nil
	}
	rawTokens := strings.Split(pointer, "/")
	tokens := make([]string, len(rawTokens))
	for i, tok := range rawTokens {
		unescaped, err := url.PathUnescape(tok)
		if err != nil {
			unescaped = tok
		}
		unescaped = strings.ReplaceAll(unescaped, "~1", "/")
		unescaped = strings.ReplaceAll(unescaped, "~0", "~")
		tokens[i] = unescaped
	}
	return tokens, nil
}

func stepJSONPointer(cur *Schema, tok string) (*Schema, error) {
	if cur == nil || cur.IsBoolean() {
		return nil, ErrInvalidJSONPointer
	}
	switch tok {
	case "additionalProperties":
		return nonNil(cur.additionalProperties)
	case "additionalItems":
		return nonNil(cur.additionalItems)
	case "propertyNames":
		return nonNil(cur.propertyNames)
	case "contains":
		return nonNil(cur.contains)
	case "not":
		return nonNil(cur.not)
	case "if":
		return nonNil(cur.ifSchema)
	case "then":
		return nonNil(cur.thenSchema)
	case "else":
		return nonNil(cur.elseSchema)
	case "unevaluatedProperties":
		return nonNil(cur.unevaluatedProperties)
	case "unevaluatedItems":
		return nonNil(cur.unevaluatedItems)
	case "contentSchema":
		return nonNil(cur.contentSchema)
	case "items":
		return nonNil(cur.items)
	}
	return nil, ErrInvalidJSONPointer
}

// lookupJSONPointerFull extends stepJSONPointer with map/array-valued
// keywords, which require the next token to select a member/index.
func lookupJSONPointerFull(root *Schema, tokens []string) (*Schema, error) {
	cur := root
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if cur == nil || cur.IsBoolean() {
			return nil, ErrInvalidJSONPointer
		}
		switch tok {
		case "$defs", "definitions":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidJSONPointer
			}
			next, ok := cur.definitions[tokens[i]]
			if !ok {
				return nil, ErrInvalidJSONPointer
			}
			cur = next
		case "properties":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidJSONPointer
			}
			next, ok := cur.properties[tokens[i]]
			if !ok {
				return nil, ErrInvalidJSONPointer
			}
			cur = next
		case "patternProperties":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidJSONPointer
			}
			next, ok := cur.patternProperties[tokens[i]]
			if !ok {
				return nil, ErrInvalidJSONPointer
			}
			cur = next
		case "dependentSchemas":
			i++
			if i >= len(tokens) {
				return nil, ErrInvalidJSONPointer
			}
			next, ok := cur.dependentSchemas[tokens[i]]
			if !ok {
				return nil, ErrInvalidJSONPointer
			}
			cur = next
		case "prefixItems":
			i++
			idx, err := strconv.Atoi(tokens[i])
			if err != nil || idx < 0 || idx >= len(cur.prefixItems) {
				return nil, ErrInvalidJSONPointer
			}
			cur = cur.prefixItems[idx]
		case "allOf":
			i++
			idx, err := strconv.Atoi(tokens[i])
			if err != nil || idx < 0 || idx >= len(cur.allOf) {
				return nil, ErrInvalidJSONPointer
			}
			cur = cur.allOf[idx]
		case "anyOf":
			i++
			idx, err := strconv.Atoi(tokens[i])
			if err != nil || idx < 0 || idx >= len(cur.anyOf) {
				return nil, ErrInvalidJSONPointer
			}
			cur = cur.anyOf[idx]
		case "oneOf":
			i++
			idx, err := strconv.Atoi(tokens[i])
			if err != nil || idx < 0 || idx >= len(cur.oneOf) {
				return nil, ErrInvalidJSONPointer
			}
			cur = cur.oneOf[idx]
		default:
			next, err := stepJSONPointer(cur, tok)
			if err != nil {
				return nil, err
			}
			cur = next
		}
	}
	return cur, nil
}

func nonNil(s *Schema) (*Schema, error) {
	if s == nil {
		return nil, ErrInvalidJSONPointer
	}
	return s, nil
}
