package ports

// DirEntry is one immediate child of an enumerated directory. Err is
// set when the entry itself could not be read; the listing as a whole
// still succeeds in that case.
type DirEntry struct {
	Path string
	Err  error
}

// DirListPort enumerates the immediate children of a directory. It
// never recurses. A failure to enumerate the directory itself is
// returned as an error; per-entry failures are carried on the entries.
type DirListPort interface {
	ListChildren(path string) ([]DirEntry, error)
}
