package morph

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Role is the part of speech the generator inflects by.
type Role string

const (
	Verb  Role = "verb"
	Noun  Role = "noun"
	Other Role = "other"
)

// RoleFromPos maps a dictionary part-of-speech annotation like "v", "n" or
// "adj" to a Role. Anything that is neither verb-ish nor noun-ish is Other.
func RoleFromPos(pos string) Role {
	pos = strings.ToLower(pos)
	switch {
	case strings.Contains(pos, "v"):
		return Verb
	case strings.Contains(pos, "n"):
		return Noun
	default:
		return Other
	}
}

// Form is one generated surface form of a headword.
type Form struct {
	Text     string
	Headword string
	Role     Role
}

// Inflector generates the inflected forms of approved base words. Irregular
// words are driven by override tables; everything else goes through the
// regular suffix rules.
type Inflector struct {
	verbs map[string]VerbOverride
	nouns map[string]string
}

// New builds an Inflector from override tables. A nil Overrides means
// regular rules only.
func New(overrides *Overrides) *Inflector {
	inf := &Inflector{
		verbs: map[string]VerbOverride{},
		nouns: map[string]string{},
	}
	if overrides == nil {
		return inf
	}
	for _, ov := range overrides.Verbs {
		inf.verbs[strings.ToLower(ov.Base)] = ov
	}
	for _, ov := range overrides.Nouns {
		inf.nouns[strings.ToLower(ov.Base)] = strings.ToLower(ov.Plural)
	}
	return inf
}

// Expand returns every form of a base word, the base itself included, in a
// stable order with duplicates removed. Multi-word phrases, hyphenated
// compounds and Other-role words pass through unchanged. A verb or noun the
// suffix rules cannot process is kept as-is with a warning, never dropped.
func (inf *Inflector) Expand(base string, role Role) []Form {
	base = strings.ToLower(strings.TrimSpace(base))

	switch {
	case base == "":
		return nil
	case role == Other, strings.Contains(base, " "), strings.Contains(base, "-"):
		return forms(role, base, base)
	}

	switch role {
	case Verb:
		return inf.expandVerb(base)
	case Noun:
		return inf.expandNoun(base)
	default:
		return forms(role, base, base)
	}
}

func (inf *Inflector) expandVerb(base string) []Form {
	if ov, ok := inf.verbs[base]; ok {
		if ov.Exclusive {
			texts := append([]string{base}, lowerAll(ov.Forms)...)
			return forms(Verb, base, texts...)
		}
		past := strings.ToLower(ov.Past)
		if past == "" {
			past = pastTense(base)
		}
		participle := strings.ToLower(ov.Participle)
		if participle == "" {
			participle = past
		}
		texts := []string{base, thirdPerson(base), past, participle, presentParticiple(base)}
		texts = append(texts, lowerAll(ov.Forms)...)
		return forms(Verb, base, texts...)
	}

	if !inflectable(base) {
		log.Warn().Str("word", base).Str("role", string(Verb)).Msg("cannot inflect, keeping base form only")
		return forms(Verb, base, base)
	}

	past := pastTense(base)
	return forms(Verb, base, base, thirdPerson(base), past, past, presentParticiple(base))
}

func (inf *Inflector) expandNoun(base string) []Form {
	if plural, ok := inf.nouns[base]; ok {
		return forms(Noun, base, base, plural)
	}
	if !inflectable(base) {
		log.Warn().Str("word", base).Str("role", string(Noun)).Msg("cannot inflect, keeping base form only")
		return forms(Noun, base, base)
	}
	return forms(Noun, base, base, pluralize(base))
}

func forms(role Role, headword string, texts ...string) []Form {
	seen := make(map[string]struct{}, len(texts))
	out := make([]Form, 0, len(texts))
	for _, t := range texts {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, Form{Text: t, Headword: headword, Role: role})
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func inflectable(w string) bool {
	if utf8.RuneCountInString(w) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func endsWithAny(w string, endings ...string) bool {
	for _, e := range endings {
		if strings.HasSuffix(w, e) {
			return true
		}
	}
	return false
}

// doubleFinalConsonant reports whether a word ends consonant-vowel-consonant,
// which doubles the final letter before -ed and -ing (stop -> stopped). Final
// w, x and y never double.
func doubleFinalConsonant(w string) bool {
	if len(w) < 3 {
		return false
	}
	last := w[len(w)-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return !isVowel(last) && isVowel(w[len(w)-2]) && !isVowel(w[len(w)-3])
}

func thirdPerson(w string) string {
	switch {
	case endsWithAny(w, "s", "x", "z", "ch", "sh", "o"):
		return w + "es"
	case strings.HasSuffix(w, "y") && len(w) > 1 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ies"
	default:
		return w + "s"
	}
}

func pastTense(w string) string {
	switch {
	case strings.HasSuffix(w, "e"):
		return w + "d"
	case doubleFinalConsonant(w):
		return w + string(w[len(w)-1]) + "ed"
	default:
		return w + "ed"
	}
}

func presentParticiple(w string) string {
	switch {
	case strings.HasSuffix(w, "ie"):
		return w[:len(w)-2] + "ying"
	case strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee"):
		return w[:len(w)-1] + "ing"
	case doubleFinalConsonant(w):
		return w + string(w[len(w)-1]) + "ing"
	default:
		return w + "ing"
	}
}

func pluralize(w string) string {
	switch {
	case endsWithAny(w, "s", "x", "z", "ch", "sh"):
		return w + "es"
	case strings.HasSuffix(w, "y") && len(w) > 1 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ies"
	default:
		return w + "s"
	}
}
