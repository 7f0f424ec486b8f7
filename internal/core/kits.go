// Package core resolves installed Windows Kits directories for build
// tooling: the installation root from the registry, the per-category
// base directories, and the versioned subdirectory a toolchain should
// use when several SDK versions are installed side by side.
package core

import (
	"path/filepath"
	"strings"

	"winkits/internal/ports"
	"winkits/internal/types"
)

const (
	// InstalledRootsKeyPath is the registry key recording where the
	// Windows SDKs are installed.
	InstalledRootsKeyPath = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`
	// KitsRootValueName is the string value holding the kits root,
	// typically `C:\Program Files (x86)\Windows Kits\10`.
	KitsRootValueName = "KitsRoot10"

	versionPrefix = "10."
)

// categorySubpaths is the fixed, total mapping from directory category
// to its subpath under the kits root.
var categorySubpaths = map[types.DirectoryType]string{
	types.DirectoryTypeBinaries:  "bin",
	types.DirectoryTypeHeaders:   "Include",
	types.DirectoryTypeLibraries: "Lib",
}

// WindowsKits resolves directories of an installed Windows Kits tree.
// The installation root is read from the registry exactly once, at
// construction; the value is immutable afterwards, so a WindowsKits is
// safe for concurrent use.
type WindowsKits struct {
	root string
	dirs ports.DirListPort
}

// New queries the registry for the Windows Kits installation root and
// returns a resolver anchored at it. A registry failure is fatal: no
// resolver is returned.
func New(registry ports.RegistryPort, dirs ports.DirListPort) (*WindowsKits, error) {
	root, err := registry.ReadStringValue(InstalledRootsKeyPath, KitsRootValueName)
	if err != nil {
		return nil, ioError("failed to read the Windows Kits installation root", err)
	}
	return NewWithRoot(root, dirs), nil
}

// NewWithRoot returns a resolver anchored at an explicit installation
// root, bypassing the registry. Intended for hosts where the SDK was
// copied into place without registry entries, and for tests.
func NewWithRoot(root string, dirs ports.DirListPort) *WindowsKits {
	return &WindowsKits{root: root, dirs: dirs}
}

// Root returns the installation root read at construction.
func (k *WindowsKits) Root() string {
	return k.root
}

// Dir returns the base directory for the given category. It is a pure
// join of the root and the category subpath; the result is not checked
// for existence.
func (k *WindowsKits) Dir(directoryType types.DirectoryType) string {
	return filepath.Join(k.root, categorySubpaths[directoryType])
}

// VersionDir returns the versioned directory for the given category,
// selected by enumerating the category directory and picking the
// highest version. Selection is byte-wise over the path: among the
// entries whose name starts with "10.", the lexicographically maximal
// path wins. The filesystem is re-enumerated on every call.
func (k *WindowsKits) VersionDir(directoryType types.DirectoryType) (string, error) {
	entries, err := k.dirs.ListChildren(k.Dir(directoryType))
	if err != nil {
		return "", ioError("failed to list the category directory", err)
	}
	selected := ""
	for _, entry := range entries {
		if entry.Err != nil {
			continue
		}
		if !strings.HasPrefix(filepath.Base(entry.Path), versionPrefix) {
			continue
		}
		if entry.Path > selected {
			selected = entry.Path
		}
	}
	if selected == "" {
		return "", directoryNotFound()
	}
	return selected, nil
}
