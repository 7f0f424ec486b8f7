package core

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winkits/internal/ports"
	"winkits/internal/types"
)

type fakeRegistry struct {
	values map[string]string
	err    error
	reads  int
}

func (f *fakeRegistry) ReadStringValue(keyPath string, valueName string) (string, error) {
	f.reads++
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.values[keyPath+`\`+valueName]
	if !ok {
		return "", errors.New("value not found")
	}
	return value, nil
}

type fakeDirList struct {
	children map[string][]ports.DirEntry
	errs     map[string]error
}

func (f fakeDirList) ListChildren(path string) ([]ports.DirEntry, error) {
	if err := f.errs[path]; err != nil {
		return nil, err
	}
	return f.children[path], nil
}

func entriesFor(base string, names ...string) []ports.DirEntry {
	var entries []ports.DirEntry
	for _, name := range names {
		entries = append(entries, ports.DirEntry{Path: filepath.Join(base, name)})
	}
	return entries
}

const testRoot = `C:\Program Files (x86)\Windows Kits\10`

func TestNewReadsInstallationRootOnce(t *testing.T) {
	registry := &fakeRegistry{values: map[string]string{
		InstalledRootsKeyPath + `\` + KitsRootValueName: testRoot,
	}}
	kits, err := New(registry, fakeDirList{})
	require.NoError(t, err)
	assert.Equal(t, testRoot, kits.Root())
	assert.Equal(t, 1, registry.reads)

	// Subsequent queries never touch the registry again.
	kits.Dir(types.DirectoryTypeHeaders)
	_, _ = kits.VersionDir(types.DirectoryTypeHeaders)
	assert.Equal(t, 1, registry.reads)
}

func TestNewRegistryFailure(t *testing.T) {
	kits, err := New(&fakeRegistry{err: errors.New("access is denied")}, fakeDirList{})
	require.Error(t, err)
	assert.Nil(t, kits)
	assert.False(t, IsDirectoryNotFound(err))
	assert.Contains(t, err.Error(), "failed to read the Windows Kits installation root")
}

func TestDirExactSubpaths(t *testing.T) {
	kits := NewWithRoot(testRoot, fakeDirList{})
	assert.Equal(t, filepath.Join(testRoot, "bin"), kits.Dir(types.DirectoryTypeBinaries))
	assert.Equal(t, filepath.Join(testRoot, "Include"), kits.Dir(types.DirectoryTypeHeaders))
	assert.Equal(t, filepath.Join(testRoot, "Lib"), kits.Dir(types.DirectoryTypeLibraries))
}

func TestDirIsPure(t *testing.T) {
	kits := NewWithRoot(testRoot, fakeDirList{})
	for _, directoryType := range types.DirectoryTypes() {
		assert.Equal(t, kits.Dir(directoryType), kits.Dir(directoryType))
	}
}

func TestDirIsStableForAnyRoot(t *testing.T) {
	for _, root := range []string{testRoot, `D:\sdks\kits`, "/opt/winkits/10"} {
		kits := NewWithRoot(root, fakeDirList{})
		assert.Equal(t, filepath.Join(root, "Include"), kits.Dir(types.DirectoryTypeHeaders))
	}
}

func TestVersionDirPicksHighest(t *testing.T) {
	base := filepath.Join(testRoot, "Include")
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: entriesFor(base, "10.0.10240.0", "10.0.19041.0", "9.0", "notes.txt"),
	}})
	dir, err := kits.VersionDir(types.DirectoryTypeHeaders)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "10.0.19041.0"), dir)
}

func TestVersionDirEmptyDirectory(t *testing.T) {
	base := filepath.Join(testRoot, "Lib")
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: nil,
	}})
	_, err := kits.VersionDir(types.DirectoryTypeLibraries)
	require.Error(t, err)
	assert.True(t, IsDirectoryNotFound(err))
}

func TestVersionDirNoMatchingPrefix(t *testing.T) {
	base := filepath.Join(testRoot, "bin")
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: entriesFor(base, "8.1", "arm64", "x64"),
	}})
	_, err := kits.VersionDir(types.DirectoryTypeBinaries)
	require.Error(t, err)
	assert.True(t, IsDirectoryNotFound(err))
}

func TestVersionDirMissingDirectory(t *testing.T) {
	kits := NewWithRoot(testRoot, fakeDirList{errs: map[string]error{
		filepath.Join(testRoot, "Include"): errors.New("the system cannot find the path specified"),
	}})
	_, err := kits.VersionDir(types.DirectoryTypeHeaders)
	require.Error(t, err)
	assert.False(t, IsDirectoryNotFound(err))
	assert.Contains(t, err.Error(), "failed to list the category directory")
}

func TestVersionDirSkipsUnreadableEntries(t *testing.T) {
	base := filepath.Join(testRoot, "Include")
	entries := entriesFor(base, "10.0.17763.0")
	entries = append(entries, ports.DirEntry{
		Path: filepath.Join(base, "10.0.99999.0"),
		Err:  errors.New("permission denied"),
	})
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: entries,
	}})
	dir, err := kits.VersionDir(types.DirectoryTypeHeaders)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "10.0.17763.0"), dir)
}

func TestVersionDirIsIdempotent(t *testing.T) {
	base := filepath.Join(testRoot, "bin")
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: entriesFor(base, "10.0.18362.0", "10.0.22000.0"),
	}})
	first, err := kits.VersionDir(types.DirectoryTypeBinaries)
	require.NoError(t, err)
	second, err := kits.VersionDir(types.DirectoryTypeBinaries)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Selection is byte-wise over the path, not a numeric comparison, so a
// shorter component with a larger leading digit wins: "10.9" outranks
// "10.10". This pins the observed ordering.
func TestVersionDirOrderingIsLexicographic(t *testing.T) {
	base := filepath.Join(testRoot, "Lib")
	kits := NewWithRoot(testRoot, fakeDirList{children: map[string][]ports.DirEntry{
		base: entriesFor(base, "10.10", "10.9"),
	}})
	dir, err := kits.VersionDir(types.DirectoryTypeLibraries)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "10.9"), dir)
}
