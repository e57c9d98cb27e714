package format

import (
	"net/mail"
	"strings"

	"golang.org/x/net/idna"
)

// emailFormat requires a valid RFC 5321 email address.
func emailFormat(s string) bool { return isValidEmail(s, false) }

// idnEmailFormat requires a valid RFC 6531 internationalized email address.
func idnEmailFormat(s string) bool { return isValidEmail(s, true) }

// isValidEmail defers the bulk of the grammar to net/mail, which is more
// likely to match real-world expectations than a hand-rolled RFC5321
// parser, then narrows the result the way the JSON Schema test suite
// expects (no display name, ASCII-only domain unless idn is requested).
func isValidEmail(s string, idn bool) bool {
	// RFC5321 allows "[IPv6:literal]" but net/mail doesn't parse that form.
	s = strings.Replace(s, "[IPv6:", "[", 1)

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" {
		return false
	}

	if !idn {
		if at := strings.LastIndex(addr.Address, "@"); at >= 0 {
			domain := addr.Address[at+1:]
			if len(domain) > 0 && domain[0] != '[' && !isASCIIDomain(domain) {
				return false
			}
		}
	} else if _, err := idna.Lookup.ToASCII(addr.Address[strings.LastIndex(addr.Address, "@")+1:]); err != nil {
		return false
	}

	return true
}

func isASCIIDomain(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}
