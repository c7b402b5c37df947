package main

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
)

// The standard's dictionary pages lay each entry out as "HEADWORD (pos)" at
// the start of a line. Approved headwords are printed in upper case, their
// unapproved alternatives in lower case.
var (
	headwordRe    = regexp.MustCompile(`\n([A-Za-z][A-Za-z0-9\-/ ]+)\s*\(([a-zA-Z. ]+)\)\s`)
	tableHeaderRe = regexp.MustCompile(`(?i)Word\s+Approved meaning/?\s+STE`)
	allCapsRe     = regexp.MustCompile(`\b[A-Z][A-Z0-9\-]{2,}\b`)
)

// Heading and table labels the all-caps sweep must not treat as vocabulary.
var headingLabels = map[string]struct{}{
	"WORD": {}, "APPROVED": {}, "MEANING": {}, "ALTERNATIVES": {}, "STE": {},
	"EXAMPLE": {}, "NON": {}, "PART": {}, "SPEECH": {}, "PAGE": {}, "ISSUE": {},
	"DICTIONARY": {}, "TABLE": {}, "FIGURE": {}, "APPENDIX": {}, "SECTION": {}, "NOTE": {},
}

// extractText reads the plain text of every page. A page that fails to
// decode is skipped with a warning rather than failing the whole import.
func extractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("could not read page, skipping")
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// parseDictionary pulls the headwords out of the dictionary tables. An
// upper-case headword is approved and keeps its part-of-speech tag for
// inflection, a lower-case one is forbidden, and a mixed-case match is table
// noise. Text before the first table header is ignored.
func parseDictionary(text string) ([]lexicon.TaggedWord, []string) {
	sections := tableHeaderRe.Split(text, -1)
	if len(sections) < 2 {
		return nil, nil
	}

	var approved []lexicon.TaggedWord
	var forbidden []string
	seenApproved := map[string]struct{}{}
	seenForbidden := map[string]struct{}{}

	for _, section := range sections[1:] {
		for _, match := range headwordRe.FindAllStringSubmatch(section, -1) {
			headword := strings.TrimSpace(match[1])
			pos := strings.ToLower(strings.TrimSpace(match[2]))

			upper := strings.ToUpper(headword)
			lower := strings.ToLower(headword)
			switch {
			case headword == upper && headword != lower:
				if _, dup := seenApproved[lower]; dup {
					continue
				}
				seenApproved[lower] = struct{}{}
				approved = append(approved, lexicon.TaggedWord{Word: lower, Pos: pos})
			case headword == lower && headword != upper:
				if _, dup := seenForbidden[headword]; dup {
					continue
				}
				seenForbidden[headword] = struct{}{}
				forbidden = append(forbidden, headword)
			}
		}
	}
	return approved, forbidden
}

// allCapsSweep collects the ALL-CAPS tokens of the whole document as
// allow-list candidates: acronyms and designators that are capitalized
// throughout the standard and would otherwise lint as unapproved words.
func allCapsSweep(text string) []string {
	seen := map[string]struct{}{}
	var words []string
	for _, match := range allCapsRe.FindAllString(text, -1) {
		if _, skip := headingLabels[match]; skip {
			continue
		}
		if _, dup := seen[match]; dup {
			continue
		}
		seen[match] = struct{}{}
		words = append(words, match)
	}
	sort.Strings(words)
	return words
}
