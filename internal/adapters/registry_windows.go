//go:build windows

package adapters

import (
	"golang.org/x/sys/windows/registry"

	"winkits/internal/ports"
)

// RegistryAdapter reads string values from the local-machine hive.
type RegistryAdapter struct{}

func NewRegistryAdapter() RegistryAdapter {
	return RegistryAdapter{}
}

func (a RegistryAdapter) ReadStringValue(keyPath string, valueName string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()
	value, _, err := key.GetStringValue(valueName)
	if err != nil {
		return "", err
	}
	return value, nil
}

var _ ports.RegistryPort = RegistryAdapter{}
