package ports

import "go.trai.ch/viewgraph/internal/core/domain"

// ViewLoader defines the interface for loading a workspace file.
//
//go:generate go run go.uber.org/mock/mockgen -source=view_loader.go -destination=mocks/mock_view_loader.go -package=mocks
type ViewLoader interface {
	// Load reads the workspace at path and returns the compiled view and target catalogue.
	Load(path string) (*domain.Workspace, error)
}
