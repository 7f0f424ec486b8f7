package types

// CategorySurvey describes one directory category of an installed kit:
// where it lives, which versioned subdirectories were found, and which
// one resolution would pick.
type CategorySurvey struct {
	Type       DirectoryType `yaml:"type" json:"type"`
	BaseDir    string        `yaml:"base_dir" json:"base_dir"`
	Candidates []string      `yaml:"candidates,omitempty" json:"candidates,omitempty"`
	// Selected is the directory the resolver picks: the byte-wise
	// maximal candidate path, not the semantically highest version.
	Selected string `yaml:"selected,omitempty" json:"selected,omitempty"`
	// HighestVersion is the semantically highest candidate version
	// name. It is diagnostic only and can disagree with Selected.
	HighestVersion string `yaml:"highest_version,omitempty" json:"highest_version,omitempty"`
	Error          string `yaml:"error,omitempty" json:"error,omitempty"`
}

type SurveyReport struct {
	KitsRoot   string           `yaml:"kits_root" json:"kits_root"`
	Categories []CategorySurvey `yaml:"categories" json:"categories"`
}
