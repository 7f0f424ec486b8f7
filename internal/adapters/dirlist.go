package adapters

import (
	"os"
	"path/filepath"

	"winkits/internal/ports"
)

// DirListAdapter enumerates directories through the local filesystem.
type DirListAdapter struct{}

func NewDirListAdapter() DirListAdapter {
	return DirListAdapter{}
}

// ListChildren returns the immediate children of path. Failure to read
// the directory itself is returned as an error; a child that cannot be
// stat'ed is still listed, with its failure recorded on the entry, so
// callers can skip it without losing the rest of the listing.
func (a DirListAdapter) ListChildren(path string) ([]ports.DirEntry, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]ports.DirEntry, 0, len(children))
	for _, child := range children {
		entry := ports.DirEntry{Path: filepath.Join(path, child.Name())}
		if _, err := child.Info(); err != nil {
			entry.Err = err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

var _ ports.DirListPort = DirListAdapter{}
