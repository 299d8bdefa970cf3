package ports

import "go.trai.ch/mutrun/internal/core/domain"

// ConfigLoader defines the interface for loading the layout.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the layout for the working directory cwd from path.
	// An empty path selects domain.ConfigFileName in cwd; a relative one is
	// resolved against cwd. A missing default file is not an error and yields
	// the default layout.
	Load(cwd, path string) (domain.Layout, error)
}
