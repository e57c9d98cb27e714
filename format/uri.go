package format

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"
)

type uriKind int

const (
	kindURI uriKind = iota
	kindIRI
)

func uriFormat(s string) bool { return uriOrIRI(s, kindURI, false) }
func iriFormat(s string) bool { return uriOrIRI(s, kindIRI, false) }

func uriReferenceFormat(s string) bool { return uriOrIRI(s, kindURI, true) }
func iriReferenceFormat(s string) bool { return uriOrIRI(s, kindIRI, true) }

// uriOrIRI parses s as a URI, requiring an absolute form unless reference
// allows relative references too.
func uriOrIRI(s string, kind uriKind, reference bool) bool {
	if reference && strings.HasPrefix(s, `\\`) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if !reference && !u.IsAbs() {
		return false
	}
	return checkURI(u, kind)
}

// checkURI applies the extra restrictions the JSON Schema test suite
// expects beyond what net/url already rejects.
func checkURI(u *url.URL, kind uriKind) bool {
	if addr, err := netip.ParseAddr(u.Host); err == nil && addr.Is6() {
		return false
	}
	if strings.Contains(u.Fragment, `\`) {
		return false
	}
	if kind == kindIRI {
		return true
	}
	for i := 0; i < len(u.RawPath); i++ {
		c := u.RawPath[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("-_.~@&=+$/;,()#", rune(c)):
		default:
			return false
		}
	}
	return true
}

var uriTemplateExprPattern = regexp.MustCompile(`\{[+#./;?&=,!@|]?[A-Za-z0-9_.,%:*]+\}`)

// uriTemplateFormat requires s to be a syntactically valid URI once every
// RFC 6570 expression is stripped out, approximating full template
// validation the way the data model's "fast mode" approximates date/time.
func uriTemplateFormat(s string) bool {
	stripped := uriTemplateExprPattern.ReplaceAllString(s, "")
	if strings.ContainsAny(stripped, "{}") {
		return false
	}
	_, err := url.Parse(stripped)
	return err == nil
}
