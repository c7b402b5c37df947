package report

import (
	"bytes"
	"fmt"

	"gitlab.com/tech-pubs/simplified-english/lib/lint"
)

type textRenderer struct{}

/**
Render prints one line per finding, with its span in rune offsets relative to
the sentence, followed by the document totals. Kinds with no findings are
left out of the totals block.
**/
func (r *textRenderer) Render(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, res := range report.Results {
		for _, f := range res.Findings {
			fmt.Fprintf(&buf, "[%s] %s @ (%d,%d) (sentence %d)\n",
				f.Kind, f.Message, f.Begin, f.End, res.Sentence.Index)
			if f.Suggestion != "" {
				fmt.Fprintf(&buf, "  suggestion: %s\n", f.Suggestion)
			}
		}
	}

	fmt.Fprintf(&buf, "\nTotal findings: %d\n", report.Summary.Findings)
	for _, kind := range lint.Kinds {
		if n := report.Summary.ByKind[kind]; n > 0 {
			fmt.Fprintf(&buf, "  %s: %d\n", kind, n)
		}
	}
	return buf.Bytes(), nil
}
