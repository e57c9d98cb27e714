package format

import "regexp/syntax"

// regexFormat requires s to parse as a valid regular expression. Only Go
// (RE2/Perl-subset) syntax is supported, the same limitation the
// "pattern" keyword itself has since it compiles with regexp.
func regexFormat(s string) bool {
	_, err := syntax.Parse(s, syntax.Perl)
	return err == nil
}
