package app

import (
	"strings"

	"winkits/internal/adapters"
	"winkits/internal/core"
	"winkits/internal/ports"
)

type Service struct {
	Registry     ports.RegistryPort
	DirList      ports.DirListPort
	ReportWriter ports.ReportWriterPort
}

func NewService() Service {
	return Service{
		Registry:     adapters.NewRegistryAdapter(),
		DirList:      adapters.NewDirListAdapter(),
		ReportWriter: adapters.NewReportWriterAdapter(),
	}
}

// newKits builds a resolver. An explicit root skips the registry
// lookup entirely; otherwise construction performs the one registry
// read.
func (s Service) newKits(root string) (*core.WindowsKits, error) {
	if strings.TrimSpace(root) != "" {
		return core.NewWithRoot(root, s.DirList), nil
	}
	return core.New(s.Registry, s.DirList)
}
