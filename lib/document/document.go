package document

import (
	"io"
	"strings"
)

// Block is one contiguous run of document text. Offset is the rune position
// in the source document where the block's text starts.
type Block struct {
	Text   string
	Offset int
}

// Value is what a Reader sends per block. A final Value with Err == io.EOF
// marks a clean end of input.
type Value struct {
	Block *Block
	Err   error
}

// Reader streams text blocks out of some document encoding.
type Reader interface {
	ReadBlocks(r io.Reader) <-chan Value
	ReadBlocksWithCallback(r io.Reader, onBlock func(*Block) error) error
}

// ReadChannelWithCallback drains reader values into the callback, treating
// the io.EOF sentinel as a clean stop.
func ReadChannelWithCallback(values <-chan Value, callback func(*Block) error) error {
	for value := range values {
		if value.Err == io.EOF {
			break
		} else if value.Err != nil {
			return value.Err
		}
		if err := callback(value.Block); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll extracts the whole document as one string, blocks separated by
// newlines, for callers that lint a document in a single pass.
func ReadAll(reader Reader, r io.Reader) (string, error) {
	var blocks []string
	err := reader.ReadBlocksWithCallback(r, func(block *Block) error {
		blocks = append(blocks, block.Text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n"), nil
}
