package lint

import (
	"sync"

	"github.com/rs/zerolog/log"

	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/text"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

// Config carries the tunable rule settings. Pass it explicitly; there are no
// package-level knobs.
type Config struct {
	MaxSentenceWords   int `mapstructure:"max_sentence_words"`
	InterveningAdverbs int `mapstructure:"intervening_adverbs"`
	Workers            int `mapstructure:"workers"`
}

// DefaultConfig returns the standard rule settings: at most 20 words per
// sentence, one tolerated adverb between auxiliary and participle,
// sequential checking.
func DefaultConfig() Config {
	return Config{
		MaxSentenceWords:   20,
		InterveningAdverbs: 1,
		Workers:            1,
	}
}

// Linter applies the controlled-language checks to sentences. It is
// read-only once constructed and safe for concurrent use.
type Linter struct {
	vocab                *vocabulary.Vocabulary
	config               Config
	adverbs              map[string]struct{}
	irregularParticiples map[string]struct{}
	participleExceptions map[string]struct{}
}

// Result pairs a sentence with its findings.
type Result struct {
	Sentence text.Sentence `json:"sentence"`
	Findings []Finding     `json:"findings"`
}

// New builds a Linter over a vocabulary and the reference tables from the
// morphology overrides. A nil overrides means no tolerated adverbs and no
// irregular participles.
func New(vocab *vocabulary.Vocabulary, overrides *morph.Overrides, config Config) (*Linter, error) {
	if vocab == nil {
		return nil, lib.NewConfigError("linter needs a vocabulary")
	}
	if config.MaxSentenceWords <= 0 {
		return nil, lib.NewConfigError("max sentence words must be positive, got %d", config.MaxSentenceWords)
	}
	if config.InterveningAdverbs < 0 {
		return nil, lib.NewConfigError("intervening adverbs must not be negative, got %d", config.InterveningAdverbs)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}

	l := &Linter{
		vocab:                vocab,
		config:               config,
		adverbs:              map[string]struct{}{},
		irregularParticiples: map[string]struct{}{},
		participleExceptions: map[string]struct{}{},
	}
	if overrides != nil {
		l.adverbs = overrides.AdverbSet()
		l.irregularParticiples = overrides.IrregularParticiples()
		l.participleExceptions = overrides.ParticipleExceptionSet()
	}
	return l, nil
}

// Check runs every check on one sentence. Findings come out grouped by kind
// in the fixed order forbidden, unapproved, too-long, passive, with token
// order inside each group, so output is deterministic.
func (l *Linter) Check(s text.Sentence) []Finding {
	if len(s.Tokens) == 0 {
		log.Debug().Int("sentence", s.Index).Msg("no word tokens in sentence")
		return nil
	}

	var findings []Finding
	findings = append(findings, l.checkWords(s)...)
	findings = append(findings, l.checkLength(s)...)
	findings = append(findings, l.checkPassive(s)...)
	return findings
}

// LintText segments a document and checks every sentence.
func (l *Linter) LintText(doc string) []Result {
	return l.LintSentences(text.Segment(doc))
}

// LintSentences checks sentences independently. With Workers > 1 the checks
// fan out over a bounded pool; results are written by sentence index, so
// document order never depends on scheduling.
func (l *Linter) LintSentences(sentences []text.Sentence) []Result {
	results := make([]Result, len(sentences))

	workers := l.config.Workers
	if workers > len(sentences) {
		workers = len(sentences)
	}
	if workers <= 1 {
		for i, s := range sentences {
			results[i] = Result{Sentence: s, Findings: l.Check(s)}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Result{Sentence: sentences[i], Findings: l.Check(sentences[i])}
			}
		}()
	}
	for i := range sentences {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
