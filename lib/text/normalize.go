package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var TokenDelimiters = map[byte]struct{}{
	'(':  {},
	')':  {},
	'{':  {},
	'}':  {},
	'[':  {},
	']':  {},
	'"':  {},
	'\'': {},
	'`':  {},
	':':  {},
	';':  {},
	',':  {},
	'.':  {},
	'?':  {},
	'!':  {},
}

func IsTokenDelimiter(b byte) bool {
	_, ok := TokenDelimiters[b]
	return ok
}

// NormalizeWord folds a surface form for lexicon lookups. NFKC first so that
// typographic variants (ligatures, full-width letters) compare equal, then
// lower case.
func NormalizeWord(in string) string {
	return strings.ToLower(norm.NFKC.String(in))
}

// StripPunct removes quotes, brackets and terminal punctuation from both ends
// of a raw token. Internal hyphens and apostrophes stay, so "fail-safe" and
// "operator's" survive as single words. Returns the stripped token and the
// number of leading runes removed, which callers need to fix up offsets.
func StripPunct(raw string) (string, int) {
	lead := 0
	for len(raw) > 0 && IsTokenDelimiter(raw[0]) {
		raw = raw[1:]
		lead++
	}
	for len(raw) > 0 && IsTokenDelimiter(raw[len(raw)-1]) {
		raw = raw[:len(raw)-1]
	}
	return raw, lead
}

// HasLetter reports whether s contains at least one letter. Tokens without any
// letters do not count as words.
func HasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// HasWordChar reports whether s contains a letter or a digit.
func HasWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsNumeric reports whether s is a number-like token such as "300", "3.5" or
// "10-15": at least one digit and no letters.
func IsNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			return false
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasDigit
}

// IsAllCaps reports whether s has at least two letters and no lower-case ones,
// the shape acronym allow-list entries take.
func IsAllCaps(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 2
}
