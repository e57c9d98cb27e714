package schema

import "strings"

// Draft identifies a JSON Schema dialect generation.
type Draft int

const (
	DraftUnknown Draft = iota
	Draft4
	Draft6
	Draft7
	Draft2019_09
	Draft2020_12
	DraftFuture
)

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft-04"
	case Draft6:
		return "draft-06"
	case Draft7:
		return "draft-07"
	case Draft2019_09:
		return "2019-09"
	case Draft2020_12:
		return "2020-12"
	case DraftFuture:
		return "future"
	default:
		return "unknown"
	}
}

var draftByMetaSchemaSubstring = []struct {
	substr string
	draft  Draft
}{
	{"draft-04", Draft4},
	{"draft4", Draft4},
	{"draft-06", Draft6},
	{"draft6", Draft6},
	{"draft-07", Draft7},
	{"draft7", Draft7},
	{"2019-09", Draft2019_09},
	{"2020-12", Draft2020_12},
}

// DetectDraft maps a $schema URI (or the configured default) to a Draft
// tag. An unrecognized but well-formed meta-schema URI is treated as
// DraftFuture, matching the spec's "future" dialect bucket rather than
// failing compilation outright.
func DetectDraft(schemaURI string) Draft {
	if schemaURI == "" {
		return DraftUnknown
	}
	lower := strings.ToLower(schemaURI)
	for _, candidate := range draftByMetaSchemaSubstring {
		if strings.Contains(lower, candidate.substr) {
			return candidate.draft
		}
	}
	return DraftFuture
}

// Dialect is the resolved feature set for a schema resource (C3).
type Dialect struct {
	draft Draft

	supportsPrefixItems     bool
	modernRef               bool
	supportsUnevaluated     bool
	defaultFormatAssertion  bool
	defaultContentAssertion bool
	legacyRef               bool

	// enabledVocabularies, when non-nil, restricts which vocabularies are
	// active; a nil map means "no restriction" (every standard draft
	// meta-schema behaves this way).
	enabledVocabularies map[string]bool
}

func (d Dialect) Draft() Draft                    { return d.draft }
func (d Dialect) SupportsPrefixItems() bool        { return d.supportsPrefixItems }
func (d Dialect) ModernRef() bool                  { return d.modernRef }
func (d Dialect) SupportsUnevaluated() bool        { return d.supportsUnevaluated }
func (d Dialect) DefaultFormatAssertion() bool     { return d.defaultFormatAssertion }
func (d Dialect) DefaultContentAssertion() bool    { return d.defaultContentAssertion }
func (d Dialect) LegacyRef() bool                  { return d.legacyRef }

// ResolveDialect computes the feature flags for draft, optionally
// narrowed by a custom meta-schema's $vocabulary declaration.
func ResolveDialect(draft Draft, vocabulary map[string]bool) Dialect {
	d := Dialect{draft: draft}
	switch draft {
	case Draft4, Draft6, Draft7:
		d.defaultFormatAssertion = true
		d.defaultContentAssertion = true
		d.legacyRef = true
	case Draft2019_09:
		d.modernRef = true
		d.supportsUnevaluated = true
	case Draft2020_12, DraftFuture, DraftUnknown:
		d.supportsPrefixItems = true
		d.modernRef = true
		d.supportsUnevaluated = true
	}
	if len(vocabulary) > 0 {
		d.enabledVocabularies = vocabulary
	}
	return d
}

// VocabularyEnabled reports whether uri is active under this dialect.
// With no restriction recorded, every vocabulary is considered enabled.
func (d Dialect) VocabularyEnabled(uri string) bool {
	if d.enabledVocabularies == nil {
		return true
	}
	return d.enabledVocabularies[uri]
}
