package text

import (
	"strings"
	"unicode"
)

// Sentence is one segment of a document, carrying its word tokens.
type Sentence struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Offset int     `json:"offset"` // rune offset of Text within the document
	Tokens []Token `json:"tokens,omitempty"`
}

// Abbreviations whose trailing period does not end a sentence.
var abbreviations = map[string]struct{}{
	"e.g":    {},
	"i.e":    {},
	"etc":    {},
	"cf":     {},
	"vs":     {},
	"no":     {},
	"fig":    {},
	"approx": {},
	"incl":   {},
}

// Segment splits a document into sentences and tokenizes each one.
//
// A '.', '!' or '?' followed by whitespace or end of input closes a sentence.
// A period does not close one when it sits between two digits ("3.5"), when
// it terminates a known abbreviation ("etc.", "e.g.") or when it follows a
// single-letter initial ("J. Smith"). Anything left after the last terminator
// is kept as a final sentence. Sentences without any word tokens are still
// returned; callers decide what to do with them. Empty input yields nil.
func Segment(doc string) []Sentence {
	runes := []rune(doc)
	var sentences []Sentence
	start := 0

	appendChunk := func(end int) {
		chunk := string(runes[start:end])
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			return
		}
		leading := 0
		for _, r := range chunk {
			if !unicode.IsSpace(r) {
				break
			}
			leading++
		}
		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Text:   trimmed,
			Offset: start + leading,
			Tokens: Words(trimmed),
		})
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && periodIsGuarded(runes, i) {
			continue
		}
		appendChunk(i + 1)
		start = i + 1
	}
	if start < len(runes) {
		appendChunk(len(runes))
	}

	return sentences
}

// periodIsGuarded reports whether the period at index i is part of a decimal
// number, a known abbreviation or a single-letter initial rather than a
// sentence terminator.
func periodIsGuarded(runes []rune, i int) bool {
	if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
		return true
	}

	word := precedingWord(runes, i)
	if word == "" {
		return false
	}
	wordRunes := []rune(word)
	if len(wordRunes) == 1 && unicode.IsLetter(wordRunes[0]) {
		return true
	}
	if _, ok := abbreviations[strings.ToLower(word)]; ok {
		return true
	}
	return false
}

// precedingWord collects the letters, and internal periods for forms like
// "e.g.", directly before index i.
func precedingWord(runes []rune, i int) string {
	j := i
	for j > 0 {
		r := runes[j-1]
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		j--
	}
	return strings.Trim(string(runes[j:i]), ".")
}
