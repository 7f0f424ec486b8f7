package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ioError wraps a registry or filesystem failure, keeping the
// underlying system error attached for diagnostics.
func ioError(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}

// directoryNotFound is returned when enumeration succeeded but no
// entry matched the version prefix.
func directoryNotFound() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("cannot find the directory")
}

// IsDirectoryNotFound reports whether err means "no versioned
// directory matched", as opposed to an IO failure reaching the
// directory at all.
func IsDirectoryNotFound(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeNotFound
}
