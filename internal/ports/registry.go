package ports

// RegistryPort reads values from the host configuration store. The
// core only ever reads; implementations must not create or modify
// registry state.
type RegistryPort interface {
	// ReadStringValue opens keyPath under the local-machine hive and
	// returns the string value named valueName. Any failure (missing
	// key, missing value, type mismatch) is returned as-is so the
	// caller can classify it.
	ReadStringValue(keyPath string, valueName string) (string, error)
}
