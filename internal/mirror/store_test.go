package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_SavedCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BACKUP")
	d := Dir{Path: path}

	saved, err := d.Saved()
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.DirExists(t, path)
}

func TestDir_SavedParsesNumericPrefixes(t *testing.T) {
	path := t.TempDir()
	for _, name := range []string{
		"1_First.post.md",
		"42_Answer.md",
		"notes.md",
		"draft_7.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(path, name), nil, 0644))
	}

	saved, err := Dir{Path: path}.Saved()
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 42: true}, saved)
}

func TestDir_Write(t *testing.T) {
	path := t.TempDir()
	d := Dir{Path: path}

	require.NoError(t, d.Write("3_Hello.md", "# hello"))

	data, err := os.ReadFile(filepath.Join(path, "3_Hello.md"))
	require.NoError(t, err)
	assert.Equal(t, "# hello", string(data))
}
