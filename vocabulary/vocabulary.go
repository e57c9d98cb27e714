// Package vocabulary declares the 2020-12 vocabulary URIs and a registry
// mapping each to the keyword set it governs, so the dialect detector can
// tell emitters to skip a keyword whose vocabulary a custom meta-schema
// has disabled.
package vocabulary

import "sync"

const (
	CoreURL             = "https://json-schema.org/draft/2020-12/vocab/core"
	ApplicatorURL       = "https://json-schema.org/draft/2020-12/vocab/applicator"
	UnevaluatedURL      = "https://json-schema.org/draft/2020-12/vocab/unevaluated"
	ValidationURL       = "https://json-schema.org/draft/2020-12/vocab/validation"
	FormatAnnotationURL = "https://json-schema.org/draft/2020-12/vocab/format-annotation"
	FormatAssertionURL  = "https://json-schema.org/draft/2020-12/vocab/format-assertion"
	ContentURL          = "https://json-schema.org/draft/2020-12/vocab/content"
	MetaDataURL         = "https://json-schema.org/draft/2020-12/vocab/meta-data"
)

// Set is the keyword set governed by one vocabulary URI.
type Set struct {
	mu       sync.RWMutex
	uri      string
	keywords map[string]struct{}
	list     []string
}

func NewSet(uri string, keywords ...string) *Set {
	s := &Set{uri: uri, keywords: map[string]struct{}{}}
	s.Add(keywords...)
	return s
}

func (s *Set) URI() string { return s.uri }

func (s *Set) Keywords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list
}

func (s *Set) Has(keyword string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keywords[keyword]
	return ok
}

func (s *Set) Add(keywords ...string) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keywords {
		if _, ok := s.keywords[k]; !ok {
			s.keywords[k] = struct{}{}
			s.list = append(s.list, k)
		}
	}
	return s
}

// Registry maps vocabulary URIs to the Set each governs.
type Registry struct {
	mu    sync.RWMutex
	sets  map[string]*Set
	order []string
}

func NewRegistry() *Registry { return &Registry{sets: map[string]*Set{}} }

func (r *Registry) Add(set *Set) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sets[set.URI()]; !exists {
		r.order = append(r.order, set.URI())
	}
	r.sets[set.URI()] = set
	return r
}

func (r *Registry) Get(uri string) (*Set, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sets[uri]
	return s, ok
}

// KeywordVocabulary returns the vocabulary URI governing keyword, or ""
// if none of the registered sets claim it. When more than one registered
// set claims the same keyword (format-annotation and format-assertion
// both claim "format"), the set added first wins, so the result is
// deterministic rather than depending on map iteration order.
func (r *Registry) KeywordVocabulary(keyword string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, uri := range r.order {
		if r.sets[uri].Has(keyword) {
			return uri
		}
	}
	return ""
}

// DefaultSet returns the registry every 2020-12 schema uses unless it
// loads a custom meta-schema that narrows $vocabulary.
func DefaultSet() *Registry {
	r := NewRegistry()
	r.Add(NewSet(CoreURL, "$id", "$schema", "$ref", "$anchor", "$dynamicRef", "$dynamicAnchor", "$vocabulary", "$comment", "$defs"))
	r.Add(NewSet(ApplicatorURL, "prefixItems", "items", "contains", "additionalProperties", "properties",
		"patternProperties", "dependentSchemas", "propertyNames", "if", "then", "else", "allOf", "anyOf", "oneOf", "not"))
	r.Add(NewSet(UnevaluatedURL, "unevaluatedItems", "unevaluatedProperties"))
	r.Add(NewSet(ValidationURL, "type", "const", "enum", "multipleOf", "maximum", "exclusiveMaximum", "minimum",
		"exclusiveMinimum", "maxLength", "minLength", "pattern", "maxItems", "minItems", "uniqueItems",
		"maxContains", "minContains", "maxProperties", "minProperties", "required", "dependentRequired"))
	r.Add(NewSet(FormatAnnotationURL, "format"))
	r.Add(NewSet(FormatAssertionURL, "format"))
	r.Add(NewSet(ContentURL, "contentEncoding", "contentMediaType", "contentSchema"))
	r.Add(NewSet(MetaDataURL, "title", "description", "default", "deprecated", "readOnly", "writeOnly", "examples"))
	return r
}

// AllEnabled returns a map reporting each of the eight standard 2020-12
// vocabularies as active. The compiler does not call it: a Dialect with
// no recorded $vocabulary restriction already treats every vocabulary as
// enabled.
func AllEnabled() map[string]bool {
	return map[string]bool{
		CoreURL: true, ApplicatorURL: true, UnevaluatedURL: true, ValidationURL: true,
		FormatAnnotationURL: true, FormatAssertionURL: true, ContentURL: true, MetaDataURL: true,
	}
}
