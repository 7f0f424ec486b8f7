package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"winkits/internal/types"
)

func (s Service) Resolve(req ResolveRequest) (ResolveResult, error) {
	directoryType, err := parseDirectoryType(req.Type)
	if err != nil {
		return ResolveResult{}, err
	}
	kits, err := s.newKits(req.KitsRoot)
	if err != nil {
		return ResolveResult{}, err
	}
	result := ResolveResult{
		KitsRoot: kits.Root(),
		Type:     directoryType,
	}
	if !req.Versioned {
		result.Dir = kits.Dir(directoryType)
		return result, nil
	}
	dir, err := kits.VersionDir(directoryType)
	if err != nil {
		return ResolveResult{}, err
	}
	result.Dir = dir
	return result, nil
}

// parseDirectoryType accepts the canonical category names plus the
// on-disk subpath names as aliases.
func parseDirectoryType(value string) (types.DirectoryType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "binaries", "bin":
		return types.DirectoryTypeBinaries, nil
	case "headers", "include":
		return types.DirectoryTypeHeaders, nil
	case "libraries", "lib":
		return types.DirectoryTypeLibraries, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown directory type: " + value)
	}
}
