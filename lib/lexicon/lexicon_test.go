package lexicon

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTagged(t *testing.T) {
	input := strings.Join([]string{
		"# approved headwords",
		"START\tv",
		"VALVE\tn",
		"",
		"ABOUT",
		"CARRY OUT\tv # phrase",
	}, "\n")

	words, err := ReadTagged(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []TaggedWord{
		{Word: "START", Pos: "v"},
		{Word: "VALVE", Pos: "n"},
		{Word: "ABOUT", Pos: ""},
		{Word: "CARRY OUT", Pos: "v"},
	}, words)
}

func TestReadList(t *testing.T) {
	input := "alpha\n# comment\n\nbeta\ngamma # trailing\n"

	words, err := ReadList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, words)
}

func TestWriteListSortsAndDeduplicates(t *testing.T) {
	var buf bytes.Buffer
	err := WriteList(&buf, []string{"valve", "pump", "valve", "", "drain"})
	require.NoError(t, err)
	assert.Equal(t, "drain\npump\nvalve\n", buf.String())
}

func TestDirRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lexicon")

	derived := DerivedLists{
		Approved:  []string{"start", "starts", "started", "starting"},
		Forbidden: []string{"commence"},
		Allowed:   []string{"STE"},
	}
	require.NoError(t, WriteDir(dir, derived))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "started", "starting", "starts"}, loaded.Approved)
	assert.Equal(t, []string{"commence"}, loaded.Forbidden)
	assert.Equal(t, []string{"STE"}, loaded.Allowed)
}

func TestLoadDirToleratesMissingAllowed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ApprovedFile), []byte("start\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ForbiddenFile), []byte("commence\n"), 0o644))

	loaded, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, loaded.Allowed)
}

func TestLoadDirRequiresApproved(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ForbiddenFile), []byte("commence\n"), 0o644))

	_, err := LoadDir(dir)
	assert.Error(t, err)
}
