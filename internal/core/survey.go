package core

import (
	"path/filepath"
	"sort"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"winkits/internal/types"
)

// Survey enumerates every category and reports its candidate version
// directories, the path VersionDir would select, and the semantically
// highest version name. The two can disagree: selection is byte-wise,
// so "10.9" outranks "10.10" even though 10.10 is the newer SDK. The
// report surfaces that disagreement without changing the selection.
func (k *WindowsKits) Survey() types.SurveyReport {
	report := types.SurveyReport{KitsRoot: k.root}
	for _, directoryType := range types.DirectoryTypes() {
		report.Categories = append(report.Categories, k.surveyCategory(directoryType))
	}
	return report
}

func (k *WindowsKits) surveyCategory(directoryType types.DirectoryType) types.CategorySurvey {
	survey := types.CategorySurvey{
		Type:    directoryType,
		BaseDir: k.Dir(directoryType),
	}
	entries, err := k.dirs.ListChildren(survey.BaseDir)
	if err != nil {
		survey.Error = err.Error()
		return survey
	}
	for _, entry := range entries {
		if entry.Err != nil {
			continue
		}
		if strings.HasPrefix(filepath.Base(entry.Path), versionPrefix) {
			survey.Candidates = append(survey.Candidates, entry.Path)
		}
	}
	if len(survey.Candidates) == 0 {
		return survey
	}
	sort.Strings(survey.Candidates)
	survey.Selected = survey.Candidates[len(survey.Candidates)-1]
	survey.HighestVersion = highestVersionName(survey.Candidates)
	return survey
}

// highestVersionName picks the semantically highest version among the
// candidate directory names. Names that do not parse as dotted
// versions are ignored.
func highestVersionName(candidates []string) string {
	var highest *goversion.Version
	name := ""
	for _, candidate := range candidates {
		base := filepath.Base(candidate)
		parsed, err := goversion.NewVersion(base)
		if err != nil {
			continue
		}
		if highest == nil || parsed.GreaterThan(highest) {
			highest = parsed
			name = base
		}
	}
	return name
}
