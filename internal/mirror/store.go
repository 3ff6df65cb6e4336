package mirror

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store is where backup documents live. Saved reports which issue numbers
// already have a backup; Write persists one document. The directory scan is
// behind this interface so tests can swap in a plain map.
type Store interface {
	Saved() (map[int]bool, error)
	Write(filename, content string) error
}

// Dir is the filesystem Store: one Markdown file per issue inside Path,
// named "{number}_{title}.md".
type Dir struct {
	Path string
}

// Saved scans the directory for numeric filename prefixes. The directory is
// created if it does not exist yet.
func (d Dir) Saved() (map[int]bool, error) {
	if err := os.MkdirAll(d.Path, 0755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	saved := make(map[int]bool)
	for _, entry := range entries {
		prefix, _, _ := strings.Cut(entry.Name(), "_")
		n, err := strconv.Atoi(prefix)
		if err != nil || n < 0 {
			continue
		}
		saved[n] = true
	}
	return saved, nil
}

// Write stores one backup document under the given filename.
func (d Dir) Write(filename, content string) error {
	return os.WriteFile(filepath.Join(d.Path, filename), []byte(content), 0644)
}
