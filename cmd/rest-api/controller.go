package main

import (
	"io"

	"gitlab.com/tech-pubs/simplified-english/lib/document"
	dochtml "gitlab.com/tech-pubs/simplified-english/lib/document/html"
	doctext "gitlab.com/tech-pubs/simplified-english/lib/document/text"
	"gitlab.com/tech-pubs/simplified-english/lib/lint"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/report"
	"gitlab.com/tech-pubs/simplified-english/lib/text"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

type contentType int

const (
	contentTypePlain contentType = iota
	contentTypeHTML
)

var allowedContentTypeEnumMap = map[string]contentType{
	"text/plain": contentTypePlain,
	"text/html":  contentTypeHTML,
}

type controller struct {
	vocab     *vocabulary.Vocabulary
	overrides *morph.Overrides
	linter    *lint.Linter
	rules     lint.Config
}

func (c controller) extract(reader io.Reader, content contentType) (string, error) {
	var blockReader document.Reader
	switch content {
	case contentTypeHTML:
		blockReader = dochtml.BlockReader{}
	default:
		blockReader = doctext.BlockReader{}
	}
	return document.ReadAll(blockReader, reader)
}

// LintDocument extracts the document text and checks every sentence. A
// maxWords above zero overrides the configured sentence-length threshold for
// this request only.
func (c controller) LintDocument(reader io.Reader, content contentType, maxWords int) (*report.Report, error) {
	doc, err := c.extract(reader, content)
	if err != nil {
		return nil, err
	}

	linter := c.linter
	if maxWords > 0 && maxWords != c.rules.MaxSentenceWords {
		rules := c.rules
		rules.MaxSentenceWords = maxWords
		if linter, err = lint.New(c.vocab, c.overrides, rules); err != nil {
			return nil, err
		}
	}

	return report.Build(linter.LintText(doc)), nil
}

func (c controller) Tokenize(reader io.Reader, content contentType) ([]text.Token, error) {
	doc, err := c.extract(reader, content)
	if err != nil {
		return nil, err
	}

	tokens := text.Words(doc)
	if tokens == nil {
		tokens = []text.Token{}
	}
	return tokens, nil
}

func (c controller) ExtractText(reader io.Reader) ([]byte, error) {
	doc, err := document.ReadAll(dochtml.BlockReader{}, reader)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

func (c controller) VocabularyStats() vocabulary.Stats {
	return c.vocab.Stats()
}
