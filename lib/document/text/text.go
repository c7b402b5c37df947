package text

import (
	"bufio"
	"io"
	"unicode/utf8"

	"gitlab.com/tech-pubs/simplified-english/lib/document"
)

type BlockReader struct{}

func (t BlockReader) ReadBlocks(r io.Reader) <-chan document.Value {
	return ReadBlocks(r)
}

func (t BlockReader) ReadBlocksWithCallback(r io.Reader, onBlock func(*document.Block) error) error {
	return document.ReadChannelWithCallback(ReadBlocks(r), onBlock)
}

// ReadBlocks emits one block per line, empty lines included so offsets and
// blank-line structure survive.
func ReadBlocks(r io.Reader) <-chan document.Value {
	values := make(chan document.Value)
	go readLines(r, values)
	return values
}

func readLines(r io.Reader, values chan document.Value) {
	scanner := bufio.NewScanner(r)
	offset := 0
	for scanner.Scan() {
		values <- document.Value{Block: &document.Block{
			Text:   scanner.Text(),
			Offset: offset,
		}}
		offset += utf8.RuneCountInString(scanner.Text()) + 1 // +1 for newline character
	}
	if err := scanner.Err(); err != nil {
		values <- document.Value{Err: err}
		return
	}
	values <- document.Value{Err: io.EOF}
}
