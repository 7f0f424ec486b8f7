package app

import "winkits/internal/types"

type ResolveRequest struct {
	// Type names the directory category: binaries, headers, or
	// libraries (aliases bin, include, lib are accepted).
	Type string
	// Versioned selects the version-resolved directory instead of the
	// category base directory.
	Versioned bool
	// KitsRoot overrides the registry-provided installation root.
	KitsRoot string
}

type ResolveResult struct {
	KitsRoot string
	Type     types.DirectoryType
	Dir      string
}

type SurveyRequest struct {
	KitsRoot string
}

type SurveyResult struct {
	Report types.SurveyReport
}
