// Package config loads workspace files: a compiled view plus the catalogue of objects
// its references resolve against.
package config

import (
	"os"
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ViewLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the workspace file at path.
func (l *Loader) Load(path string) (*domain.Workspace, error) {
	var file WorkspaceFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	ws, err := l.decode(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return ws, nil
}

// Parse decodes a workspace from YAML bytes.
func (l *Loader) Parse(data []byte) (*domain.Workspace, error) {
	var file WorkspaceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return l.decode(&file)
}

func (l *Loader) decode(file *WorkspaceFile) (*domain.Workspace, error) {
	if file.View == "" {
		return nil, zerr.With(domain.ErrInvalidWorkspace, "reason", "view name is empty")
	}

	graphs := make([]*domain.Graph, 0, len(file.Graphs))
	for i := range file.Graphs {
		g, err := l.buildGraph(&file.Graphs[i])
		if err != nil {
			return nil, zerr.With(err, "calculation_configuration", file.Graphs[i].Name)
		}
		graphs = append(graphs, g)
	}

	resolutions := make(map[domain.TargetReference]domain.UniqueID, len(file.Resolutions))
	for _, r := range file.Resolutions {
		ref, err := r.Reference.reference()
		if err != nil {
			return nil, err
		}
		id, err := domain.ParseUniqueID(r.ID)
		if err != nil {
			return nil, zerr.With(err, "reference", ref.String())
		}
		resolutions[ref] = id
	}

	vc := domain.Latest
	if file.VersionCorrection != nil {
		vc = domain.VersionCorrection{
			VersionAsOf: file.VersionCorrection.VersionAsOf,
			CorrectedTo: file.VersionCorrection.CorrectedTo,
		}
	}
	if file.CompiledAt.IsZero() {
		l.Logger.Warn("workspace has no compilation instant", "view", file.View)
	}

	view, err := domain.NewCompiledView(file.View, file.CompiledAt, vc, graphs, resolutions)
	if err != nil {
		return nil, err
	}

	targets := make([]domain.TargetRecord, 0, len(file.Targets))
	for _, dto := range file.Targets {
		record, err := dto.record()
		if err != nil {
			return nil, err
		}
		targets = append(targets, record)
	}

	deep := make([]domain.TargetType, 0, len(file.DeepTypes))
	for _, name := range file.DeepTypes {
		deep = append(deep, domain.NewTargetType(name))
	}

	return &domain.Workspace{View: view, Targets: targets, DeepTypes: deep}, nil
}

func (l *Loader) buildGraph(dto *GraphDTO) (*domain.Graph, error) {
	if dto.Name == "" {
		return nil, zerr.With(domain.ErrInvalidWorkspace, "reason", "graph name is empty")
	}

	b := domain.NewGraphBuilder(dto.Name)
	nodes := make(map[string]*domain.Node, len(dto.Nodes))

	// First pass: create every node so that inputs may refer forward.
	for i := range dto.Nodes {
		n := &dto.Nodes[i]
		if n.ID == "" {
			return nil, zerr.With(domain.ErrInvalidWorkspace, "reason", "node id is empty")
		}
		if _, exists := nodes[n.ID]; exists {
			return nil, zerr.With(zerr.With(domain.ErrInvalidWorkspace, "reason", "duplicate node id"), "node", n.ID)
		}
		target, err := n.Target.specification()
		if err != nil {
			return nil, zerr.With(err, "node", n.ID)
		}
		node := b.AddNode(target, n.Function.assignment())
		for _, out := range n.Outputs {
			spec := domain.NewValueSpecification(out.Value, target, domain.NewValueProperties(out.Properties))
			if err := b.AddOutput(node, spec); err != nil {
				return nil, zerr.With(err, "node", n.ID)
			}
		}
		nodes[n.ID] = node
	}

	// Second pass: wire inputs.
	for i := range dto.Nodes {
		n := &dto.Nodes[i]
		for _, label := range n.Inputs {
			input, ok := nodes[label]
			if !ok {
				err := zerr.With(domain.ErrInvalidWorkspace, "reason", "unknown input")
				err = zerr.With(err, "node", n.ID)
				return nil, zerr.With(err, "input", label)
			}
			if err := b.AddInput(nodes[n.ID], input); err != nil {
				return nil, zerr.With(err, "node", n.ID)
			}
		}
	}

	for _, t := range dto.Terminals {
		if err := addTerminal(b, nodes, t); err != nil {
			return nil, err
		}
	}
	if len(dto.Terminals) == 0 {
		l.Logger.Warn("graph has no terminal outputs", "calculation_configuration", dto.Name)
	}

	return b.Build()
}

func addTerminal(b *domain.GraphBuilder, nodes map[string]*domain.Node, t TerminalDTO) error {
	node, ok := nodes[t.Node]
	if !ok {
		return zerr.With(zerr.With(domain.ErrInvalidWorkspace, "reason", "terminal refers to unknown node"), "node", t.Node)
	}
	name := t.Output
	if name == "" {
		name = t.Requirement.Value
	}

	var spec domain.ValueSpecification
	matches := 0
	for _, out := range node.Outputs() {
		if out.Name.String() == name {
			spec = out
			matches++
		}
	}
	if matches != 1 {
		err := zerr.With(domain.ErrInvalidWorkspace, "reason", "terminal output must match exactly one node output")
		err = zerr.With(err, "node", t.Node)
		return zerr.With(err, "output", name)
	}

	target, err := t.Requirement.Target.reference()
	if err != nil {
		return zerr.With(err, "node", t.Node)
	}
	req := domain.NewValueRequirement(t.Requirement.Value, target, domain.NewValueProperties(t.Requirement.Constraints))
	return b.AddTerminalOutput(req, spec)
}

// reference converts the DTO into a specification or a requirement.
func (t TargetRefDTO) reference() (domain.TargetReference, error) {
	if len(t.ExternalIDs) == 0 {
		return t.specification()
	}
	if t.ID != "" {
		return nil, zerr.With(domain.ErrInvalidReference, "reason", "both id and externalIds are set")
	}
	if t.Type == "" {
		return nil, zerr.With(domain.ErrInvalidReference, "reason", "type is empty")
	}
	ids := make([]domain.ExternalID, 0, len(t.ExternalIDs))
	for _, raw := range t.ExternalIDs {
		id, err := domain.ParseExternalID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return domain.NewTargetRequirement(domain.NewTargetType(t.Type), ids...), nil
}

// specification converts the DTO into a specification. No id means the null target.
func (t TargetRefDTO) specification() (domain.TargetSpecification, error) {
	if len(t.ExternalIDs) > 0 {
		return domain.NullTarget, zerr.With(domain.ErrInvalidReference, "reason", "node targets must be specifications")
	}
	if t.ID == "" {
		if t.Type != "" && t.Type != domain.TargetTypeNull.String() {
			return domain.NullTarget, zerr.With(domain.ErrInvalidReference, "type", t.Type)
		}
		return domain.NullTarget, nil
	}
	if t.Type == "" {
		return domain.NullTarget, zerr.With(domain.ErrInvalidReference, "reason", "type is empty")
	}
	id, err := domain.ParseUniqueID(t.ID)
	if err != nil {
		return domain.NullTarget, err
	}
	return domain.NewTargetSpecification(domain.NewTargetType(t.Type), id), nil
}

func (f FunctionDTO) assignment() domain.FunctionAssignment {
	return domain.FunctionAssignment{
		FunctionID: f.ID,
		Earliest:   bound(f.Earliest),
		Latest:     bound(f.Latest),
	}
}

func bound(t *time.Time) domain.Bound {
	if t == nil {
		return domain.Unbounded()
	}
	return domain.BoundAt(*t)
}

func (t TargetDTO) record() (domain.TargetRecord, error) {
	id, err := domain.ParseUniqueID(t.ID)
	if err != nil {
		return domain.TargetRecord{}, err
	}
	if t.Type == "" {
		return domain.TargetRecord{}, zerr.With(zerr.With(domain.ErrInvalidWorkspace, "reason", "target type is empty"), "target", t.ID)
	}
	ids := make([]domain.ExternalID, 0, len(t.ExternalIDs))
	for _, raw := range t.ExternalIDs {
		ext, err := domain.ParseExternalID(raw)
		if err != nil {
			return domain.TargetRecord{}, zerr.With(err, "target", t.ID)
		}
		ids = append(ids, ext)
	}
	return domain.TargetRecord{
		ID:          id,
		Type:        domain.NewTargetType(t.Type),
		ExternalIDs: domain.NewExternalIDBundle(ids...),
		ValidFrom:   t.ValidFrom,
		Value:       t.Value,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}
