package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryHasStandardFormats(t *testing.T) {
	r := Default()
	for _, name := range []string{
		"date", "time", "date-time", "duration", "email", "idn-email",
		"hostname", "idn-hostname", "ipv4", "ipv6", "uri", "uri-reference",
		"uri-template", "iri", "iri-reference", "uuid", "json-pointer",
		"relative-json-pointer", "regex",
	} {
		_, ok := r.Lookup(name)
		require.True(t, ok, "expected %q to be registered", name)
	}
}

func TestLookupUnregisteredIsNoMatch(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Lookup("nonexistent")
	require.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	base := Default()
	clone := base.Clone()
	clone.Register("custom", func(string) bool { return true })

	_, ok := base.Lookup("custom")
	require.False(t, ok)
	_, ok = clone.Lookup("custom")
	require.True(t, ok)
}

func TestRegisterDefaultAffectsFutureDefaultCalls(t *testing.T) {
	RegisterDefault("x-test-format", func(s string) bool { return s == "ok" })
	r := Default()
	fn, ok := r.Lookup("x-test-format")
	require.True(t, ok)
	require.True(t, fn("ok"))
	require.False(t, fn("no"))
}

func TestFastUsesApproximateDateValidators(t *testing.T) {
	r := Fast()
	fn, ok := r.Lookup("date")
	require.True(t, ok)
	require.True(t, fn("2024-01-15"))
}

func TestIPv4Format(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("ipv4")
	require.True(t, fn("192.168.1.1"))
	require.False(t, fn("999.1.1.1"))
	require.False(t, fn("::1"))
}

func TestIPv6Format(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("ipv6")
	require.True(t, fn("::1"))
	require.False(t, fn("192.168.1.1"))
}

func TestUUIDFormat(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("uuid")
	require.True(t, fn("123e4567-e89b-12d3-a456-426614174000"))
	require.False(t, fn("not-a-uuid"))
}

func TestHostnameFormat(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("hostname")
	require.True(t, fn("example.com"))
	require.False(t, fn("-bad-.com"))
}

func TestJSONPointerFormat(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("json-pointer")
	require.True(t, fn("/a/b/0"))
	require.False(t, fn("a/b"))
}

func TestDateTimeFormat(t *testing.T) {
	r := Default()
	fn, _ := r.Lookup("date-time")
	require.True(t, fn("2024-01-15T10:00:00Z"))
	require.False(t, fn("2024-01-15"))
}
