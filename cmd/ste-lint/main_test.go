package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dochtml "gitlab.com/tech-pubs/simplified-english/lib/document/html"
	doctext "gitlab.com/tech-pubs/simplified-english/lib/document/text"
)

func TestReaderFor(t *testing.T) {
	assert.IsType(t, dochtml.BlockReader{}, readerFor("manual.html"))
	assert.IsType(t, dochtml.BlockReader{}, readerFor("page.HTM"))
	assert.IsType(t, doctext.BlockReader{}, readerFor("notes.txt"))
	assert.IsType(t, doctext.BlockReader{}, readerFor("README"))
}

func TestReadInputPrefersText(t *testing.T) {
	config = steLintConfig{Text: "You start the system.", File: "ignored.txt"}
	defer func() { config = steLintConfig{} }()

	doc, err := readInput()
	assert.Nil(t, err)
	assert.Equal(t, "You start the system.", doc)
}

func TestReadInputFromTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.Nil(t, os.WriteFile(path, []byte("First line.\nSecond line."), 0644))
	config = steLintConfig{File: path}
	defer func() { config = steLintConfig{} }()

	doc, err := readInput()
	assert.Nil(t, err)
	assert.Equal(t, "First line.\nSecond line.", doc)
}

func TestReadInputFromHtmlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	require.Nil(t, os.WriteFile(path, []byte("<html><body><p>You start the system.</p></body></html>"), 0644))
	config = steLintConfig{File: path}
	defer func() { config = steLintConfig{} }()

	doc, err := readInput()
	assert.Nil(t, err)
	assert.Equal(t, "You start the system.", doc)
}

func TestReadInputMissingFile(t *testing.T) {
	config = steLintConfig{File: filepath.Join(t.TempDir(), "absent.txt")}
	defer func() { config = steLintConfig{} }()

	_, err := readInput()
	assert.NotNil(t, err)
}
