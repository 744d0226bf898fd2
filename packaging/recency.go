package packaging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrDirectoryNotFound is returned when a listing target is missing or not a directory.
var ErrDirectoryNotFound = errors.New("directory not found")

// ListByRecency returns the immediate children of dir, most recently modified first.
func ListByRecency(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	type child struct {
		path    string
		modTime time.Time
	}
	children := make([]child, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		// Stat follows symlinks so a linked world sorts by its target.
		fi, err := os.Stat(path)
		if err != nil {
			// Vanished or dangling entries sort last.
			children = append(children, child{path: path})
			continue
		}
		children = append(children, child{path: path, modTime: fi.ModTime()})
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].modTime.After(children[j].modTime)
	})

	paths := make([]string, len(children))
	for i, c := range children {
		paths[i] = c.path
	}
	return paths, nil
}
