package report

import (
	"gitlab.com/tech-pubs/simplified-english/lib/lint"
	"gitlab.com/tech-pubs/simplified-english/lib/text"
)

// Report pairs the checked sentences, in document order, with aggregate
// counts over the whole document.
type Report struct {
	Results []lint.Result `json:"results"`
	Summary Summary       `json:"summary"`
}

// Summary carries the document totals. ByKind always has an entry for every
// finding kind so the rendered shape is stable. Words counts the tokens with
// at least one letter, the same convention the sentence-length check uses.
type Summary struct {
	Sentences            int               `json:"sentences"`
	Words                int               `json:"words"`
	Findings             int               `json:"findings"`
	ByKind               map[lint.Kind]int `json:"by_kind"`
	SegmentationWarnings int               `json:"segmentation_warnings"`
}

// Builder accumulates results sentence by sentence, for callers that check
// incrementally instead of in one pass.
type Builder struct {
	results []lint.Result
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends results. Call it in sentence order; Build does not re-sort.
func (b *Builder) Add(results ...lint.Result) *Builder {
	b.results = append(b.results, results...)
	return b
}

func (b *Builder) Build() *Report {
	return Build(b.results)
}

// Build aggregates checked sentences into a report. A sentence with no word
// tokens counts as a segmentation warning but stays in the results.
func Build(results []lint.Result) *Report {
	summary := Summary{ByKind: map[lint.Kind]int{}}
	for _, kind := range lint.Kinds {
		summary.ByKind[kind] = 0
	}

	for _, res := range results {
		summary.Sentences++
		if len(res.Sentence.Tokens) == 0 {
			summary.SegmentationWarnings++
		}
		for _, tok := range res.Sentence.Tokens {
			if text.HasLetter(tok.Normal) {
				summary.Words++
			}
		}
		summary.Findings += len(res.Findings)
		for _, f := range res.Findings {
			summary.ByKind[f.Kind]++
		}
	}

	if results == nil {
		results = []lint.Result{}
	}
	return &Report{Results: results, Summary: summary}
}
