package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gitlab.com/tech-pubs/simplified-english/lib/text"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

// Forms of "be" that can open a passive construction.
var auxiliaryForms = map[string]struct{}{
	"am":    {},
	"is":    {},
	"are":   {},
	"was":   {},
	"were":  {},
	"be":    {},
	"been":  {},
	"being": {},
}

// checkWords classifies every token and reports forbidden and unknown words.
// Number-like, letterless and single-letter tokens are exempt. All forbidden
// findings come before all unapproved ones; token order holds within each
// group. A forbidden word never doubles as an unapproved one.
func (l *Linter) checkWords(s text.Sentence) []Finding {
	var forbidden, unapproved []Finding
	for _, tok := range s.Tokens {
		if exempt(tok) {
			continue
		}
		switch l.vocab.Classify(tok) {
		case vocabulary.Forbidden:
			forbidden = append(forbidden, Finding{
				Kind:       KindForbiddenWord,
				Message:    fmt.Sprintf("Forbidden word: '%s'", tok.Text),
				Suggestion: "Replace with an approved alternative per ASD-STE100.",
				Begin:      tok.Offset,
				End:        tok.Offset + utf8.RuneCountInString(tok.Text),
			})
		case vocabulary.Unknown:
			unapproved = append(unapproved, Finding{
				Kind:       KindUnapprovedWord,
				Message:    fmt.Sprintf("Not in approved lexicon: '%s'", tok.Text),
				Suggestion: "Prefer an approved STE word or rephrase.",
				Begin:      tok.Offset,
				End:        tok.Offset + utf8.RuneCountInString(tok.Text),
			})
		}
	}
	return append(forbidden, unapproved...)
}

func exempt(tok text.Token) bool {
	if text.IsNumeric(tok.Normal) || !text.HasLetter(tok.Normal) {
		return true
	}
	return utf8.RuneCountInString(tok.Normal) < 2
}

// checkLength counts the tokens that contain a letter and reports a sentence
// that exceeds the configured maximum. A sentence exactly at the limit
// passes.
func (l *Linter) checkLength(s text.Sentence) []Finding {
	words := 0
	for _, tok := range s.Tokens {
		if text.HasLetter(tok.Normal) {
			words++
		}
	}
	if words <= l.config.MaxSentenceWords {
		return nil
	}
	return []Finding{{
		Kind:       KindSentenceTooLong,
		Message:    fmt.Sprintf("Sentence has %d words (>%d).", words, l.config.MaxSentenceWords),
		Suggestion: fmt.Sprintf("Split into shorter sentences (<= %d words).", l.config.MaxSentenceWords),
		Begin:      0,
		End:        utf8.RuneCountInString(s.Text),
	}}
}

// checkPassive scans for a form of "be" followed by a past participle,
// tolerating a configured number of intervening adverbs. The span runs from
// the auxiliary to the participle; scanning resumes after the participle.
func (l *Linter) checkPassive(s text.Sentence) []Finding {
	var findings []Finding
	for i := 0; i < len(s.Tokens); i++ {
		if _, ok := auxiliaryForms[s.Tokens[i].Normal]; !ok {
			continue
		}

		j := i + 1
		skipped := 0
		for j < len(s.Tokens) && skipped < l.config.InterveningAdverbs &&
			l.isAdverb(s.Tokens[j].Normal) && !l.isParticiple(s.Tokens[j].Normal) {
			skipped++
			j++
		}
		if j >= len(s.Tokens) || !l.isParticiple(s.Tokens[j].Normal) {
			continue
		}

		begin := s.Tokens[i].Offset
		end := s.Tokens[j].Offset + utf8.RuneCountInString(s.Tokens[j].Text)
		findings = append(findings, Finding{
			Kind:       KindPassiveVoice,
			Message:    fmt.Sprintf("Possible passive: '%s'", spanText(s.Text, begin, end)),
			Suggestion: "Use active voice where possible.",
			Begin:      begin,
			End:        end,
		})
		i = j
	}
	return findings
}

func (l *Linter) isAdverb(w string) bool {
	_, ok := l.adverbs[w]
	return ok
}

// isParticiple treats a word as a past participle when it is an irregular
// participle from the override tables, or ends in -ed with at least three
// runes and is not a known exception like "red".
func (l *Linter) isParticiple(w string) bool {
	if _, ok := l.irregularParticiples[w]; ok {
		return true
	}
	if _, ok := l.participleExceptions[w]; ok {
		return false
	}
	return utf8.RuneCountInString(w) >= 3 && strings.HasSuffix(w, "ed")
}

func spanText(sentence string, begin, end int) string {
	runes := []rune(sentence)
	if begin < 0 || end > len(runes) || begin >= end {
		return ""
	}
	return string(runes[begin:end])
}
