package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name            string
		sentence        string
		expectedText    []string
		expectedNormal  []string
		expectedOffsets []int
	}{
		{
			name:            "plain words",
			sentence:        "The pump is on.",
			expectedText:    []string{"The", "pump", "is", "on"},
			expectedNormal:  []string{"the", "pump", "is", "on"},
			expectedOffsets: []int{0, 4, 9, 12},
		},
		{
			name:            "surrounding punctuation is stripped",
			sentence:        "Start the (main) pump.",
			expectedText:    []string{"Start", "the", "main", "pump"},
			expectedNormal:  []string{"start", "the", "main", "pump"},
			expectedOffsets: []int{0, 6, 11, 17},
		},
		{
			name:            "internal hyphens survive",
			sentence:        "A fail-safe interlock.",
			expectedText:    []string{"A", "fail-safe", "interlock"},
			expectedNormal:  []string{"a", "fail-safe", "interlock"},
			expectedOffsets: []int{0, 2, 12},
		},
		{
			name:            "internal apostrophes survive",
			sentence:        "the operator's manual",
			expectedText:    []string{"the", "operator's", "manual"},
			expectedNormal:  []string{"the", "operator's", "manual"},
			expectedOffsets: []int{0, 4, 15},
		},
		{
			name:            "unicode folding in the normal form",
			sentence:        "raise x² today",
			expectedText:    []string{"raise", "x²", "today"},
			expectedNormal:  []string{"raise", "x2", "today"},
			expectedOffsets: []int{0, 6, 9},
		},
		{
			name:            "punctuation only chunks are dropped",
			sentence:        "-- ... !!",
			expectedText:    []string{},
			expectedNormal:  []string{},
			expectedOffsets: []int{},
		},
		{
			name:            "empty input",
			sentence:        "",
			expectedText:    []string{},
			expectedNormal:  []string{},
			expectedOffsets: []int{},
		},
		{
			name:            "numbers are tokens",
			sentence:        "wait 10 seconds",
			expectedText:    []string{"wait", "10", "seconds"},
			expectedNormal:  []string{"wait", "10", "seconds"},
			expectedOffsets: []int{0, 5, 8},
		},
	}

	for _, test := range tests {
		var tokens []Token
		err := Tokenize(test.sentence, func(tok Token) error {
			tokens = append(tokens, tok)
			return nil
		})
		assert.NoError(t, err, test.name)
		assert.Equal(t, len(test.expectedText), len(tokens), test.name)
		for i, tok := range tokens {
			assert.Equal(t, test.expectedText[i], tok.Text, test.name)
			assert.Equal(t, test.expectedNormal[i], tok.Normal, test.name)
			assert.Equal(t, test.expectedOffsets[i], tok.Offset, test.name)
		}
	}
}

func TestTokenizeCallbackError(t *testing.T) {
	calls := 0
	err := Tokenize("one two three", func(tok Token) error {
		calls++
		return assert.AnError
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWords(t *testing.T) {
	tokens := Words("Close the drain valve.")
	assert.Len(t, tokens, 4)
	assert.Equal(t, "valve", tokens[3].Normal)
	assert.Equal(t, 16, tokens[3].Offset)
}
