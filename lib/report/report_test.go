package report

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/lint"
	"gitlab.com/tech-pubs/simplified-english/lib/text"
)

func sampleResults() []lint.Result {
	return []lint.Result{
		{
			Sentence: text.Sentence{Index: 0, Text: "You utilize the system.", Tokens: text.Words("You utilize the system.")},
			Findings: []lint.Finding{{
				Kind:       lint.KindForbiddenWord,
				Message:    "Forbidden word: 'utilize'",
				Suggestion: "Replace with an approved alternative per ASD-STE100.",
				Begin:      4,
				End:        11,
			}},
		},
		{
			Sentence: text.Sentence{Index: 1, Text: "§§."},
		},
		{
			Sentence: text.Sentence{Index: 2, Text: "The system was started.", Tokens: text.Words("The system was started.")},
			Findings: []lint.Finding{{
				Kind:       lint.KindPassiveVoice,
				Message:    "Possible passive: 'was started'",
				Suggestion: "Use active voice where possible.",
				Begin:      11,
				End:        22,
			}},
		},
	}
}

func TestBuild(t *testing.T) {
	report := Build(sampleResults())

	assert.Equal(t, 3, report.Summary.Sentences)
	assert.Equal(t, 8, report.Summary.Words)
	assert.Equal(t, 2, report.Summary.Findings)
	assert.Equal(t, 1, report.Summary.SegmentationWarnings)
	assert.Equal(t, map[lint.Kind]int{
		lint.KindForbiddenWord:   1,
		lint.KindUnapprovedWord:  0,
		lint.KindSentenceTooLong: 0,
		lint.KindPassiveVoice:    1,
	}, report.Summary.ByKind)
	assert.Len(t, report.Results, 3)
}

func TestBuildEmpty(t *testing.T) {
	report := Build(nil)

	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.Summary.Sentences)
	assert.Equal(t, 0, report.Summary.Findings)
	assert.Len(t, report.Summary.ByKind, len(lint.Kinds))
}

func TestBuilderMatchesBuild(t *testing.T) {
	results := sampleResults()

	report := NewBuilder().
		Add(results[0]).
		Add(results[1], results[2]).
		Build()

	assert.Equal(t, Build(results), report)
}

func TestNewRendererUnknownFormat(t *testing.T) {
	r, err := NewRenderer("xml")
	assert.Nil(t, r)
	require.Error(t, err)
	assert.True(t, lib.IsConfigError(err))
	assert.Contains(t, err.Error(), "text, json, csv")
}

func TestTextRenderer(t *testing.T) {
	r, err := NewRenderer("text")
	require.NoError(t, err)

	out, err := r.Render(Build(sampleResults()))
	require.NoError(t, err)

	expected := strings.Join([]string{
		"[forbidden-word] Forbidden word: 'utilize' @ (4,11) (sentence 0)",
		"  suggestion: Replace with an approved alternative per ASD-STE100.",
		"[passive-voice] Possible passive: 'was started' @ (11,22) (sentence 2)",
		"  suggestion: Use active voice where possible.",
		"",
		"Total findings: 2",
		"  forbidden-word: 1",
		"  passive-voice: 1",
		"",
	}, "\n")
	assert.Equal(t, expected, string(out))
}

func TestTextRendererEmptyReport(t *testing.T) {
	r, err := NewRenderer("text")
	require.NoError(t, err)

	out, err := r.Render(Build(nil))
	require.NoError(t, err)
	assert.Equal(t, "\nTotal findings: 0\n", string(out))
}

func TestJsonRenderer(t *testing.T) {
	r, err := NewRenderer("json")
	require.NoError(t, err)

	report := Build(sampleResults())
	out, err := r.Render(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, report.Summary, decoded.Summary)
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "You utilize the system.", decoded.Results[0].Sentence.Text)

	// Rendering the same report twice is byte-identical.
	again, err := r.Render(report)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestCsvRenderer(t *testing.T) {
	r, err := NewRenderer("csv")
	require.NoError(t, err)

	out, err := r.Render(Build(sampleResults()))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"kind", "sentence", "begin", "end", "message", "suggestion"}, records[0])
	assert.Equal(t, []string{
		"forbidden-word", "0", "4", "11",
		"Forbidden word: 'utilize'",
		"Replace with an approved alternative per ASD-STE100.",
	}, records[1])
	assert.Equal(t, "passive-voice", records[2][0])
	assert.Equal(t, "2", records[2][1])
}
