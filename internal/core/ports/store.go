package ports

import "go.trai.ch/viewgraph/internal/core/domain"

// LedgerStore defines the interface for persisting resolution ledger snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LedgerStore interface {
	// Load reads the snapshot stored at path.
	// A missing file yields an empty snapshot and no error.
	Load(path string) (domain.LedgerSnapshot, error)

	// Save writes the snapshot to path.
	Save(path string, snapshot domain.LedgerSnapshot) error
}
