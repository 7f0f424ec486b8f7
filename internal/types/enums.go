package types

// DirectoryType selects one of the fixed Windows Kits directory
// categories.
type DirectoryType string

const (
	DirectoryTypeBinaries  DirectoryType = "binaries"
	DirectoryTypeHeaders   DirectoryType = "headers"
	DirectoryTypeLibraries DirectoryType = "libraries"
)

// DirectoryTypes lists every category in declaration order.
func DirectoryTypes() []DirectoryType {
	return []DirectoryType{
		DirectoryTypeBinaries,
		DirectoryTypeHeaders,
		DirectoryTypeLibraries,
	}
}

type ReportFormat string

const (
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatJSON ReportFormat = "json"
)
