package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectDraft(t *testing.T) {
	tests := []struct {
		uri  string
		want Draft
	}{
		{"", DraftUnknown},
		{"https://json-schema.org/draft/2020-12/schema", Draft2020_12},
		{"https://json-schema.org/draft/2019-09/schema", Draft2019_09},
		{"http://json-schema.org/draft-07/schema#", Draft7},
		{"http://json-schema.org/draft-06/schema#", Draft6},
		{"http://json-schema.org/draft-04/schema#", Draft4},
		{"https://example.com/my-custom-meta", DraftFuture},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DetectDraft(tt.uri), tt.uri)
	}
}

func TestResolveDialectLegacyDraftsUseLegacyRef(t *testing.T) {
	d := ResolveDialect(Draft7, nil)
	require.True(t, d.LegacyRef())
	require.False(t, d.SupportsPrefixItems())
	require.False(t, d.SupportsUnevaluated())
}

func TestResolveDialect2020_12SupportsModernFeatures(t *testing.T) {
	d := ResolveDialect(Draft2020_12, nil)
	require.False(t, d.LegacyRef())
	require.True(t, d.SupportsPrefixItems())
	require.True(t, d.SupportsUnevaluated())
	require.True(t, d.ModernRef())
}

func TestVocabularyEnabledWithNoRestriction(t *testing.T) {
	d := ResolveDialect(Draft2020_12, nil)
	require.True(t, d.VocabularyEnabled("https://json-schema.org/draft/2020-12/vocab/validation"))
}

func TestVocabularyEnabledWithRestriction(t *testing.T) {
	d := ResolveDialect(Draft2020_12, map[string]bool{
		"https://json-schema.org/draft/2020-12/vocab/core": true,
	})
	require.True(t, d.VocabularyEnabled("https://json-schema.org/draft/2020-12/vocab/core"))
	require.False(t, d.VocabularyEnabled("https://json-schema.org/draft/2020-12/vocab/validation"))
}
