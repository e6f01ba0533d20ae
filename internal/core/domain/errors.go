package domain

import "go.trai.ch/zerr"

var (
	// ErrCycleDetected is returned when the input relation of a graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrMissingInput is returned when a node's input is not part of the graph being assembled.
	ErrMissingInput = zerr.New("node input is not part of the graph")

	// ErrUnownedSpecification is returned when a terminal output mapping references a specification
	// that no node of the graph produces.
	ErrUnownedSpecification = zerr.New("terminal specification has no owning node")

	// ErrDuplicateOutput is returned when two nodes produce the same value specification.
	ErrDuplicateOutput = zerr.New("value specification produced by more than one node")

	// ErrDuplicateRequirement is returned when a requirement is mapped to two different specifications.
	ErrDuplicateRequirement = zerr.New("requirement already mapped to a different specification")

	// ErrForeignNode is returned when a builder is handed a node it did not create.
	ErrForeignNode = zerr.New("node does not belong to this graph builder")

	// ErrGraphFrozen is returned when a builder is used after Build.
	ErrGraphFrozen = zerr.New("graph builder is frozen")

	// ErrMalformedGraph is returned when a traversal finds a node before one of its inputs.
	ErrMalformedGraph = zerr.New("malformed dependency graph")

	// ErrDuplicateGraph is returned when a compiled view holds two graphs for one calculation configuration.
	ErrDuplicateGraph = zerr.New("duplicate calculation configuration")

	// ErrInvalidIdentifier is returned when an identifier cannot be parsed.
	ErrInvalidIdentifier = zerr.New("invalid identifier")

	// ErrInvalidReference is returned when a target reference cannot be parsed.
	ErrInvalidReference = zerr.New("invalid target reference")

	// ErrTargetNotFound is returned when a resolver has no object for a reference.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrAmbiguousReference is returned when a requirement matches more than one object.
	ErrAmbiguousReference = zerr.New("target reference matches more than one object")

	// ErrDuplicateTarget is returned when a catalogue lists the same identifier twice.
	ErrDuplicateTarget = zerr.New("duplicate target identifier")

	// ErrConfigReadFailed is returned when the workspace file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read workspace file")

	// ErrConfigParseFailed is returned when the workspace file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse workspace file")

	// ErrInvalidWorkspace is returned when the workspace file is well-formed YAML but describes an invalid view.
	ErrInvalidWorkspace = zerr.New("invalid workspace")

	// ErrStateReadFailed is returned when the ledger snapshot cannot be read.
	ErrStateReadFailed = zerr.New("failed to read ledger state")

	// ErrStateWriteFailed is returned when the ledger snapshot cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write ledger state")

	// ErrInvalidInstant is returned when an instant flag cannot be parsed.
	ErrInvalidInstant = zerr.New("invalid instant, expected RFC 3339")
)
