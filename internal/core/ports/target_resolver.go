package ports

import (
	"context"

	"go.trai.ch/viewgraph/internal/core/domain"
)

// ResolutionDepth tells whether a resolved object is self-contained or depends on
// nested sub-resolutions when its content is read.
type ResolutionDepth uint8

const (
	// ResolveShallow objects carry everything they need once resolved.
	ResolveShallow ResolutionDepth = iota
	// ResolveDeep objects resolve further references when their content is accessed.
	ResolveDeep
)

// Target is a concrete domain object a target specification resolved to.
type Target interface {
	// UniqueID identifies the resolved object, including its version.
	UniqueID() domain.UniqueID
	// Type returns the target type of the object.
	Type() domain.TargetType
	// Value exposes the object's content. Reading it counts as consuming the resolution.
	Value() any
}

// TargetResolver turns target references into specifications and objects.
//
//go:generate go run go.uber.org/mock/mockgen -source=target_resolver.go -destination=mocks/mock_target_resolver.go -package=mocks
type TargetResolver interface {
	// Resolve materialises the object a specification points at.
	Resolve(ctx context.Context, spec domain.TargetSpecification, vc domain.VersionCorrection) (Target, error)

	// ResolveSpecification binds a reference to a fully-qualified specification.
	ResolveSpecification(
		ctx context.Context, ref domain.TargetReference, vc domain.VersionCorrection,
	) (domain.TargetSpecification, error)

	// ResolveSpecifications binds many references at once. References that cannot be
	// resolved are absent from the result.
	ResolveSpecifications(
		ctx context.Context, refs []domain.TargetReference, vc domain.VersionCorrection,
	) (map[domain.TargetReference]domain.TargetSpecification, error)

	// Depth declares how objects of the given type must be resolved.
	Depth(targetType domain.TargetType) ResolutionDepth
}

// ResolverFactory builds a resolver over the object catalogue of a workspace.
type ResolverFactory interface {
	// NewResolver returns a resolver for the workspace's targets.
	NewResolver(ws *domain.Workspace) (TargetResolver, error)
}
