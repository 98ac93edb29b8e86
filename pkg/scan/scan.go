// Package scan enumerates supported media files directly inside a directory.
package scan

import (
	"io/fs"
	"path"
	"strings"
)

type Options struct {
	// Extensions is matched case-sensitively against each filename's suffix.
	Extensions []string
}

func DefaultOptions() Options {
	return Options{
		Extensions: []string{".mp4", ".mov", ".avi", ".mkv", ".jpg"},
	}
}

// Scan returns the base names of matching files directly inside root.
//
// It does not recurse into subdirectories. The returned order follows
// fs.ReadDir and is not part of the contract.
func Scan(fsys fs.FS, root string, opts Options) ([]string, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	exts := normalizeExts(opts.Extensions)

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if exts[path.Ext(entry.Name())] {
			matches = append(matches, entry.Name())
		}
	}

	return matches, nil
}

func normalizeExts(exts []string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		e := strings.TrimSpace(ext)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	return m
}
