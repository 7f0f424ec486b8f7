//go:build !windows

package adapters

import (
	"errors"

	"winkits/internal/ports"
)

// ErrRegistryUnavailable is returned for every read on platforms
// without a Windows registry. Callers on these platforms must supply
// an explicit kits root instead.
var ErrRegistryUnavailable = errors.New("windows registry is not available on this platform")

// RegistryAdapter is a stub on non-Windows platforms.
type RegistryAdapter struct{}

func NewRegistryAdapter() RegistryAdapter {
	return RegistryAdapter{}
}

func (a RegistryAdapter) ReadStringValue(keyPath string, valueName string) (string, error) {
	return "", ErrRegistryUnavailable
}

var _ ports.RegistryPort = RegistryAdapter{}
