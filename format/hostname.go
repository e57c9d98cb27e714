package format

import (
	"net/netip"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/net/idna"
)

// hostnameFormat requires a valid hostname.
func hostnameFormat(s string) bool { return isValidHostname(s, false) }

// idnHostnameFormat requires a valid internationalized hostname.
func idnHostnameFormat(s string) bool { return isValidHostname(s, true) }

var hostnameProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// isValidHostname checks RFC1123 (or, with idn, RFC5891) hostname rules.
// The idna package handles most of the heavy lifting; the rune-level
// switch below covers the RFC5892 contextual rules idna doesn't enforce.
func isValidHostname(s string, idn bool) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		return true
	}
	if strings.Contains(s, "_") {
		return false
	}

	if !idn {
		for i := 0; i < len(s); i++ {
			if s[i]&0x80 != 0 {
				return false
			}
		}
	} else {
		s = strings.ReplaceAll(s, "。", ".")
		s = strings.ReplaceAll(s, "．", ".")
		s = strings.ReplaceAll(s, "｡", ".")

		var last, nextMustBe rune
		var nextMustBeGreek bool
		for _, c := range s {
			if nextMustBe != 0 && nextMustBe != c {
				return false
			}
			nextMustBe = 0
			if nextMustBeGreek && !unicode.Is(unicode.Greek, c) {
				return false
			}
			nextMustBeGreek = false

			switch c {
			case 'ـ', 'ߺ', '〮', '〯', '〱', '〲', '〳', '〴', '〵', '〻':
				return false
			case '·':
				if last != 'l' {
					return false
				}
				nextMustBe = 'l'
			case '͵':
				nextMustBeGreek = true
			case '׳', '״':
				if !unicode.Is(unicode.Hebrew, last) {
					return false
				}
			case '・':
				found := false
				for _, c2 := range s {
					if unicode.Is(unicode.Hiragana, c2) || unicode.Is(unicode.Katakana, c2) || unicode.Is(unicode.Han, c2) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
			last = c
		}
		if nextMustBe != 0 || nextMustBeGreek {
			return false
		}
	}

	_, err := hostnameProfile().ToASCII(s)
	return err == nil
}
