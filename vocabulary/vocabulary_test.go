package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSetKeywordVocabulary(t *testing.T) {
	r := DefaultSet()
	require.Equal(t, CoreURL, r.KeywordVocabulary("$ref"))
	require.Equal(t, ApplicatorURL, r.KeywordVocabulary("properties"))
	require.Equal(t, UnevaluatedURL, r.KeywordVocabulary("unevaluatedProperties"))
	require.Equal(t, ValidationURL, r.KeywordVocabulary("type"))
	require.Equal(t, ContentURL, r.KeywordVocabulary("contentMediaType"))
	require.Equal(t, "", r.KeywordVocabulary("dependencies"))
}

func TestKeywordVocabularyIsDeterministicForSharedKeyword(t *testing.T) {
	r := DefaultSet()
	first := r.KeywordVocabulary("format")
	for i := 0; i < 20; i++ {
		require.Equal(t, first, r.KeywordVocabulary("format"))
	}
}

func TestRegistryGet(t *testing.T) {
	r := DefaultSet()
	set, ok := r.Get(CoreURL)
	require.True(t, ok)
	require.True(t, set.Has("$id"))
	require.False(t, set.Has("properties"))

	_, ok = r.Get("https://example.com/unknown")
	require.False(t, ok)
}

func TestSetAddIsIdempotent(t *testing.T) {
	s := NewSet("https://example.com/custom", "a", "b")
	s.Add("a", "c")
	require.ElementsMatch(t, []string{"a", "b", "c"}, s.Keywords())
}

func TestAllEnabled(t *testing.T) {
	enabled := AllEnabled()
	require.True(t, enabled[CoreURL])
	require.True(t, enabled[FormatAssertionURL])
	require.Len(t, enabled, 8)
}
