package vocabulary

import (
	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/text"
)

// Class is the lint classification of a word.
type Class string

const (
	Forbidden Class = "forbidden"
	Approved  Class = "approved"
	Allowed   Class = "allowed"
	Unknown   Class = "unknown"
)

// WordEntry is one approved form. Headword and Role are empty when the
// vocabulary was loaded from pre-expanded lists, which carry no morphology.
type WordEntry struct {
	Form     string     `json:"form"`
	Class    Class      `json:"class"`
	Headword string     `json:"headword,omitempty"`
	Role     morph.Role `json:"role,omitempty"`
}

// Vocabulary classifies words against the controlled language. It is
// read-only once constructed and safe for concurrent use.
type Vocabulary struct {
	approved  map[string]WordEntry
	forbidden map[string]struct{}
	allow     *Allowlist
}

// Stats summarises the vocabulary for reporting endpoints.
type Stats struct {
	Approved               int `json:"approved"`
	Forbidden              int `json:"forbidden"`
	AllowedCaseSensitive   int `json:"allowed_case_sensitive"`
	AllowedCaseInsensitive int `json:"allowed_case_insensitive"`
}

// New builds a vocabulary from raw word lists, expanding every tagged
// approved headword through the inflector. The approved and forbidden lists
// must not be empty; the allow-list may be.
func New(lists lexicon.Lists, allow *Allowlist, inflector *morph.Inflector) (*Vocabulary, error) {
	if len(lists.Approved) == 0 {
		return nil, lib.NewConfigError("approved word list is empty")
	}
	if len(lists.Forbidden) == 0 {
		return nil, lib.NewConfigError("forbidden word list is empty")
	}
	if inflector == nil {
		inflector = morph.New(nil)
	}

	v := newVocabulary(allow)
	for _, tagged := range lists.Approved {
		role := morph.RoleFromPos(tagged.Pos)
		for _, form := range inflector.Expand(tagged.Word, role) {
			normal := text.NormalizeWord(form.Text)
			if _, ok := v.approved[normal]; ok {
				continue
			}
			v.approved[normal] = WordEntry{
				Form:     normal,
				Class:    Approved,
				Headword: form.Headword,
				Role:     form.Role,
			}
		}
	}
	v.addForbidden(lists.Forbidden)
	v.allow.Merge(lists.Allowed)

	return v, nil
}

// FromDerived builds a vocabulary from pre-expanded lists, the persisted
// output of the importer. Classification behaves exactly as with New; only
// the per-entry morphology metadata is absent.
func FromDerived(derived lexicon.DerivedLists, allow *Allowlist) (*Vocabulary, error) {
	if len(derived.Approved) == 0 {
		return nil, lib.NewConfigError("approved word list is empty")
	}
	if len(derived.Forbidden) == 0 {
		return nil, lib.NewConfigError("forbidden word list is empty")
	}

	v := newVocabulary(allow)
	for _, w := range derived.Approved {
		normal := text.NormalizeWord(w)
		if _, ok := v.approved[normal]; ok {
			continue
		}
		v.approved[normal] = WordEntry{Form: normal, Class: Approved}
	}
	v.addForbidden(derived.Forbidden)
	v.allow.Merge(derived.Allowed)

	return v, nil
}

// Derive spells out every approved inflection for persistence. Building a
// vocabulary with FromDerived over the result classifies exactly as New over
// the raw lists; only the per-entry morphology metadata is lost.
func Derive(lists lexicon.Lists, inflector *morph.Inflector) lexicon.DerivedLists {
	if inflector == nil {
		inflector = morph.New(nil)
	}

	var derived lexicon.DerivedLists
	seen := map[string]struct{}{}
	for _, tagged := range lists.Approved {
		role := morph.RoleFromPos(tagged.Pos)
		for _, form := range inflector.Expand(tagged.Word, role) {
			normal := text.NormalizeWord(form.Text)
			if normal == "" {
				continue
			}
			if _, ok := seen[normal]; ok {
				continue
			}
			seen[normal] = struct{}{}
			derived.Approved = append(derived.Approved, normal)
		}
	}

	seen = map[string]struct{}{}
	for _, w := range lists.Forbidden {
		normal := text.NormalizeWord(w)
		if normal == "" {
			continue
		}
		if _, ok := seen[normal]; ok {
			continue
		}
		seen[normal] = struct{}{}
		derived.Forbidden = append(derived.Forbidden, normal)
	}

	// Allow-list entries keep their exact case; that is the whole point of
	// the list.
	derived.Allowed = append([]string(nil), lists.Allowed...)

	return derived
}

func newVocabulary(allow *Allowlist) *Vocabulary {
	if allow == nil {
		allow = NewAllowlist()
	}
	return &Vocabulary{
		approved:  map[string]WordEntry{},
		forbidden: map[string]struct{}{},
		allow:     allow,
	}
}

func (v *Vocabulary) addForbidden(words []string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		v.forbidden[text.NormalizeWord(w)] = struct{}{}
	}
}

// Classify returns the class of a token. Precedence is fixed: forbidden beats
// approved beats allowed beats unknown, so a word on several lists always
// resolves the same way.
func (v *Vocabulary) Classify(tok text.Token) Class {
	switch {
	case v.isForbidden(tok.Normal):
		return Forbidden
	case v.isApproved(tok.Normal):
		return Approved
	case v.allow.Contains(tok.Text, tok.Normal):
		return Allowed
	default:
		return Unknown
	}
}

// Entry returns the approved entry for a normalized form, if there is one.
func (v *Vocabulary) Entry(normal string) (WordEntry, bool) {
	entry, ok := v.approved[normal]
	return entry, ok
}

func (v *Vocabulary) Stats() Stats {
	return Stats{
		Approved:               len(v.approved),
		Forbidden:              len(v.forbidden),
		AllowedCaseSensitive:   len(v.allow.CaseSensitive),
		AllowedCaseInsensitive: len(v.allow.CaseInsensitive),
	}
}

func (v *Vocabulary) isForbidden(normal string) bool {
	_, ok := v.forbidden[normal]
	return ok
}

func (v *Vocabulary) isApproved(normal string) bool {
	_, ok := v.approved[normal]
	return ok
}
