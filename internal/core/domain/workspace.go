package domain

import "time"

// TargetRecord describes one version of a resolvable object.
type TargetRecord struct {
	ID          UniqueID
	Type        TargetType
	ExternalIDs ExternalIDBundle
	// ValidFrom is the instant this version became current; zero means "always".
	ValidFrom time.Time
	Value     map[string]any
}

// Workspace is everything a workspace file declares: a compiled view and the catalogue
// of objects its references resolve against.
type Workspace struct {
	View      *CompiledView
	Targets   []TargetRecord
	DeepTypes []TargetType
}

// LedgerEntry records the identifier a reference currently resolves to.
type LedgerEntry struct {
	Reference TargetReference
	Resolved  UniqueID
}

// LedgerSnapshot is the persistable state of a resolution ledger.
type LedgerSnapshot struct {
	VersionCorrection VersionCorrection
	Entries           []LedgerEntry
	Expired           []UniqueID
}
