package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name            string
		doc             string
		expectedTexts   []string
		expectedOffsets []int
	}{
		{
			name:            "empty input",
			doc:             "",
			expectedTexts:   nil,
			expectedOffsets: nil,
		},
		{
			name:            "whitespace only",
			doc:             "   \n\t ",
			expectedTexts:   nil,
			expectedOffsets: nil,
		},
		{
			name:            "two sentences",
			doc:             "The pump is on. The valve is closed.",
			expectedTexts:   []string{"The pump is on.", "The valve is closed."},
			expectedOffsets: []int{0, 16},
		},
		{
			name:            "question and exclamation terminators",
			doc:             "Is it safe? Stop now!",
			expectedTexts:   []string{"Is it safe?", "Stop now!"},
			expectedOffsets: []int{0, 12},
		},
		{
			name:            "abbreviation does not end the sentence",
			doc:             "See fig. 3 for details. Then stop.",
			expectedTexts:   []string{"See fig. 3 for details.", "Then stop."},
			expectedOffsets: []int{0, 24},
		},
		{
			name:            "decimal number does not end the sentence",
			doc:             "The pressure is 3.5 bar.",
			expectedTexts:   []string{"The pressure is 3.5 bar."},
			expectedOffsets: []int{0},
		},
		{
			name:            "single letter initial does not end the sentence",
			doc:             "J. Smith wrote it. Read it.",
			expectedTexts:   []string{"J. Smith wrote it.", "Read it."},
			expectedOffsets: []int{0, 19},
		},
		{
			name:            "unterminated trailing chunk is kept",
			doc:             "First point. second point without a full stop",
			expectedTexts:   []string{"First point.", "second point without a full stop"},
			expectedOffsets: []int{0, 13},
		},
		{
			name:            "repeated terminators stay with their sentence",
			doc:             "Stop!! Now.",
			expectedTexts:   []string{"Stop!!", "Now."},
			expectedOffsets: []int{0, 7},
		},
	}

	for _, test := range tests {
		sentences := Segment(test.doc)
		require.Equal(t, len(test.expectedTexts), len(sentences), test.name)
		for i, s := range sentences {
			assert.Equal(t, i, s.Index, test.name)
			assert.Equal(t, test.expectedTexts[i], s.Text, test.name)
			assert.Equal(t, test.expectedOffsets[i], s.Offset, test.name)
		}
	}
}

func TestSegmentTokenizes(t *testing.T) {
	sentences := Segment("Open the valve. Wait 10 seconds.")
	require.Len(t, sentences, 2)
	assert.Len(t, sentences[0].Tokens, 3)
	assert.Len(t, sentences[1].Tokens, 3)
	assert.Equal(t, "valve", sentences[0].Tokens[2].Normal)
	assert.Equal(t, "10", sentences[1].Tokens[1].Normal)
}

func TestSegmentKeepsWordlessSentences(t *testing.T) {
	sentences := Segment("§§. Real words here.")
	require.Len(t, sentences, 2)
	assert.Empty(t, sentences[0].Tokens)
	assert.Equal(t, "§§.", sentences[0].Text)
	assert.Len(t, sentences[1].Tokens, 3)
}

