package app

import (
	"devrando/internal/adapters"
	"devrando/internal/ports"
)

type Service struct {
	BundleSource  ports.BundleSourcePort
	Templates     ports.StarterTemplatePort
	Installed     ports.InstalledPackagesPort
	ProjectReader ports.ProjectReaderPort
	ProjectWriter ports.ProjectWriterPort
	NewSeed       func() (string, error)
}

func NewService() Service {
	files := adapters.NewProjectFilesAdapter()
	return Service{
		BundleSource:  adapters.NewBundleHTTPAdapter(0),
		Templates:     adapters.NewStarterTemplateAdapter(),
		Installed:     adapters.NewNpmTreeAdapter(),
		ProjectReader: files,
		ProjectWriter: files,
	}
}
