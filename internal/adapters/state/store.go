// Package state persists resolution ledger snapshots as JSON files.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// formatVersion is written into every snapshot file.
const formatVersion = 1

type snapshotFile struct {
	Version           int                   `json:"version"`
	VersionCorrection versionCorrectionJSON `json:"versionCorrection"`
	Entries           []entryJSON           `json:"entries"`
	Expired           []domain.UniqueID     `json:"expired"`
}

type versionCorrectionJSON struct {
	VersionAsOf time.Time `json:"versionAsOf,omitzero"`
	CorrectedTo time.Time `json:"correctedTo,omitzero"`
}

type entryJSON struct {
	Reference string          `json:"reference"`
	Resolved  domain.UniqueID `json:"resolved"`
}

// Store implements ports.LedgerStore using flat JSON files.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the snapshot at path. A missing or empty file yields an empty snapshot.
func (s *Store) Load(path string) (domain.LedgerSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.LedgerSnapshot{}, nil
		}
		return domain.LedgerSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return domain.LedgerSnapshot{}, nil
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.LedgerSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
	}

	snapshot := domain.LedgerSnapshot{
		VersionCorrection: domain.VersionCorrection{
			VersionAsOf: file.VersionCorrection.VersionAsOf,
			CorrectedTo: file.VersionCorrection.CorrectedTo,
		},
		Entries: make([]domain.LedgerEntry, 0, len(file.Entries)),
		Expired: file.Expired,
	}
	for _, e := range file.Entries {
		ref, err := domain.ParseTargetReference(e.Reference)
		if err != nil {
			return domain.LedgerSnapshot{}, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", path)
		}
		snapshot.Entries = append(snapshot.Entries, domain.LedgerEntry{Reference: ref, Resolved: e.Resolved})
	}
	return snapshot, nil
}

// Save writes the snapshot to path, creating parent directories as needed.
func (s *Store) Save(path string, snapshot domain.LedgerSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file := snapshotFile{
		Version: formatVersion,
		VersionCorrection: versionCorrectionJSON{
			VersionAsOf: snapshot.VersionCorrection.VersionAsOf,
			CorrectedTo: snapshot.VersionCorrection.CorrectedTo,
		},
		Entries: make([]entryJSON, 0, len(snapshot.Entries)),
		Expired: snapshot.Expired,
	}
	if file.Expired == nil {
		file.Expired = []domain.UniqueID{}
	}
	for _, e := range snapshot.Entries {
		file.Entries = append(file.Entries, entryJSON{Reference: e.Reference.String(), Resolved: e.Resolved})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", path)
	}
	return nil
}
