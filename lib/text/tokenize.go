package text

import (
	"bytes"
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

const NonAlphaNumericChar = 0

// Token is a single word of a sentence.
type Token struct {
	// Text is the surface form as written, with surrounding punctuation
	// stripped but case preserved.
	Text string `json:"text"`
	// Normal is the NFKC lower-cased form used for lexicon lookups.
	Normal string `json:"normal"`
	// Offset is the rune offset of Text within the sentence.
	Offset int `json:"offset"`
}

// Tokenize
/**
	Tokenize splits a sentence into word tokens and calls onToken for each one.
	Segments are buffered until whitespace so that words with internal
	punctuation ("fail-safe", "operator's", "PSI-7") arrive as single tokens
	rather than being split at every boundary the segmenter reports.
	Each token's rune offset within the sentence is calculated and set.
	Buffered chunks that hold no word characters at all ("--", "...") are
	dropped.
**/
func Tokenize(sentence string, onToken func(Token) error) error {

	segmenter := segment.NewWordSegmenterDirect([]byte(sentence))
	buffer := bytes.NewBuffer([]byte{})

	var position = 0
	var tokenOffset = 0
	var canSetOffset = true

	flush := func() error {
		if buffer.Len() == 0 {
			return nil
		}
		tok, ok := newToken(buffer.String(), tokenOffset)
		buffer.Reset()
		if !ok {
			return nil
		}
		return onToken(tok)
	}

	for segmenter.Segment() {
		segmentBytes := segmenter.Bytes()

		if segmenter.Type() == NonAlphaNumericChar && isWhitespace(segmentBytes[0]) {
			if err := flush(); err != nil {
				return err
			}
			canSetOffset = true // after whitespace the next segment starts a token
			position += utf8.RuneCount(segmentBytes)
			continue
		}

		if canSetOffset {
			tokenOffset = position // start position of the buffered token
			canSetOffset = false
		}
		buffer.Write(segmentBytes)
		position += utf8.RuneCount(segmentBytes)
	}
	if err := segmenter.Err(); err != nil {
		return err
	}

	// whatever is left in the buffer once the segmenter has finished is the last token
	return flush()
}

// Words collects the tokens of a sentence into a slice.
func Words(sentence string) []Token {
	var tokens []Token
	_ = Tokenize(sentence, func(tok Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	return tokens
}

func isWhitespace(b byte) bool {
	whitespaceBoundary := byte(32)
	return b <= whitespaceBoundary
}

func newToken(raw string, offset int) (Token, bool) {
	stripped, lead := StripPunct(raw)
	if stripped == "" || !HasWordChar(stripped) {
		return Token{}, false
	}
	return Token{
		Text:   stripped,
		Normal: NormalizeWord(stripped),
		Offset: offset + lead,
	}, true
}
