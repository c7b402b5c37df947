package html

import (
	"io"
	"unicode/utf8"

	"golang.org/x/net/html"

	"gitlab.com/tech-pubs/simplified-english/lib/document"
)

// Nodes whose text content is never document prose.
var disallowedNodes = map[string]struct{}{
	"area":     {},
	"audio":    {},
	"head":     {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"input":    {},
	"textarea": {},
	"title":    {},
	"video":    {},
}

// Inline nodes that do not break a run of text; their content belongs to the
// enclosing block.
var nonBreakingNodes = map[string]struct{}{
	"span":   {},
	"sub":    {},
	"sup":    {},
	"b":      {},
	"del":    {},
	"i":      {},
	"ins":    {},
	"mark":   {},
	"q":      {},
	"s":      {},
	"strike": {},
	"strong": {},
	"u":      {},
	"big":    {},
	"small":  {},
	"a":      {},
	"emph":   {},
}

// Void elements have no end tag, so they must never go on the tag stack.
var voidNodes = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

type BlockReader struct{}

func (BlockReader) ReadBlocks(r io.Reader) <-chan document.Value {
	return ReadBlocks(r)
}

func (b BlockReader) ReadBlocksWithCallback(r io.Reader, onBlock func(*document.Block) error) error {
	return document.ReadChannelWithCallback(ReadBlocks(r), onBlock)
}

// ReadBlocks is a convenience function so that the caller doesn't need to
// instantiate a channel.
func ReadBlocks(r io.Reader) <-chan document.Value {
	values := make(chan document.Value)
	go htmlToBlocks(r, values)
	return values
}

/**
htmlToBlocks walks the html token stream, keeping a stack of open tags so
text under disallowed nodes is dropped and text inside inline tags is folded
into the enclosing block. A block is sent when its tag closes; tags still
open at end of input are flushed so a truncated document keeps its trailing
text. Offsets are rune positions in the raw html.
**/
func htmlToBlocks(r io.Reader, values chan document.Value) {
	htmlTokenizer := html.NewTokenizer(r)
	var position int
	var stack htmlStack

	stackPopCallback := func(tag *htmlTag) error {
		if len(tag.innerText) > 0 {
			values <- document.Value{Block: &document.Block{
				Text:   string(tag.innerText),
				Offset: tag.start,
			}}
		}
		return nil
	}

	for {
		htmlToken := htmlTokenizer.Next()
		switch htmlToken {
		case html.ErrorToken:
			// The html tokenizer returns an io.EOF when finished.
			err := htmlTokenizer.Err()
			if err == io.EOF {
				stack.drain(stackPopCallback)
			}
			values <- document.Value{Err: err}
			return
		case html.TextToken:
			htmlTokenBytes := htmlTokenizer.Text()

			// Only write to the buffer if we are not under any disallowed nodes.
			if !stack.disallowed {
				stack.collectText(htmlTokenBytes)
			}

			position += utf8.RuneCount(htmlTokenBytes)
		case html.StartTagToken:
			// Must read this first. Other read methods mutate the current token.
			htmlTokenBytes := htmlTokenizer.Raw()

			tn, _ := htmlTokenizer.TagName()
			name := string(tn)
			position += utf8.RuneCount(htmlTokenBytes)

			// A void element never gets an end tag. Translate a line break,
			// ignore the rest.
			if _, ok := voidNodes[name]; ok {
				if name == "br" && !stack.disallowed {
					stack.collectText([]byte{'\n'})
				}
				continue
			}

			stack.push(&htmlTag{name: name, start: position})
		case html.EndTagToken:
			// Must read this first. Other read methods mutate the current token.
			htmlTokenBytes := htmlTokenizer.Raw()

			if err := stack.pop(stackPopCallback); err != nil {
				values <- document.Value{Err: err}
				return
			}

			position += utf8.RuneCount(htmlTokenBytes)
		case html.SelfClosingTagToken:
			// Must read this first. Other read methods mutate the current token.
			htmlTokenBytes := htmlTokenizer.Raw()

			tn, _ := htmlTokenizer.TagName()
			if string(tn) == "br" && !stack.disallowed {
				stack.collectText([]byte{'\n'})
			}
			position += utf8.RuneCount(htmlTokenBytes)
		default:
			htmlTokenBytes := htmlTokenizer.Raw()
			position += utf8.RuneCount(htmlTokenBytes)
		}
	}
}
