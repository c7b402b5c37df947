package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

type csvRenderer struct{}

var csvHeader = []string{"kind", "sentence", "begin", "end", "message", "suggestion"}

// Render writes one row per finding under a fixed header. Spans are rune
// offsets relative to the sentence the finding belongs to.
func (r *csvRenderer) Render(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, res := range report.Results {
		for _, f := range res.Findings {
			record := []string{
				string(f.Kind),
				strconv.Itoa(res.Sentence.Index),
				strconv.Itoa(f.Begin),
				strconv.Itoa(f.End),
				f.Message,
				f.Suggestion,
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
