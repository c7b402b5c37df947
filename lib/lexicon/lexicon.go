package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Conventional file names for the derived word lists.
const (
	ApprovedFile  = "approved.txt"
	ForbiddenFile = "forbidden.txt"
	AllowedFile   = "allowed.txt"
)

// TaggedWord is one raw approved entry: a headword plus the part-of-speech
// annotation from the dictionary table it was taken from.
type TaggedWord struct {
	Word string
	Pos  string
}

// Lists carries the raw lexicon inputs into vocabulary construction.
type Lists struct {
	Approved  []TaggedWord
	Forbidden []string
	Allowed   []string
}

// DerivedLists carries the pre-expanded word lists the importer produces:
// every approved inflection spelled out, so no morphology is needed to load
// them.
type DerivedLists struct {
	Approved  []string
	Forbidden []string
	Allowed   []string
}

// ReadTagged parses word<TAB>pos lines. A line without a tab yields an empty
// pos. Blank lines and #-comments are skipped.
func ReadTagged(r io.Reader) ([]TaggedWord, error) {
	var out []TaggedWord
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		line := uncomment(scn.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		word := strings.TrimSpace(parts[0])
		if word == "" {
			continue
		}
		pos := ""
		if len(parts) == 2 {
			pos = strings.TrimSpace(parts[1])
		}
		out = append(out, TaggedWord{Word: word, Pos: pos})
	}
	return out, scn.Err()
}

// ReadList parses a one-word-per-line list. Blank lines and #-comments are
// skipped.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		line := uncomment(scn.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, scn.Err()
}

// WriteList writes words one per line, sorted and deduplicated, so rebuilt
// lists diff cleanly.
func WriteList(w io.Writer, words []string) error {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}
	sort.Strings(unique)

	buf := bufio.NewWriter(w)
	for _, word := range unique {
		if _, err := fmt.Fprintln(buf, word); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// LoadDir reads the derived lists from their conventional files under dir.
// A missing allowed list is tolerated, the other two are required.
func LoadDir(dir string) (DerivedLists, error) {
	var derived DerivedLists
	var err error

	if derived.Approved, err = readListFile(filepath.Join(dir, ApprovedFile)); err != nil {
		return DerivedLists{}, err
	}
	if derived.Forbidden, err = readListFile(filepath.Join(dir, ForbiddenFile)); err != nil {
		return DerivedLists{}, err
	}
	derived.Allowed, err = readListFile(filepath.Join(dir, AllowedFile))
	if err != nil && !os.IsNotExist(err) {
		return DerivedLists{}, err
	}

	return derived, nil
}

// WriteDir writes the derived lists to their conventional files under dir,
// creating it if necessary.
func WriteDir(dir string, derived DerivedLists) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := map[string][]string{
		ApprovedFile:  derived.Approved,
		ForbiddenFile: derived.Forbidden,
		AllowedFile:   derived.Allowed,
	}
	for name, words := range files {
		if err := writeListFile(filepath.Join(dir, name), words); err != nil {
			return err
		}
	}
	return nil
}

func readListFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadList(file)
}

func writeListFile(path string, words []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteList(file, words)
}

func uncomment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
