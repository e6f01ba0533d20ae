package config

import "time"

// WorkspaceFile is the structure of a workspace YAML file.
type WorkspaceFile struct {
	View              string                `yaml:"view"`
	CompiledAt        time.Time             `yaml:"compiledAt"`
	VersionCorrection *VersionCorrectionDTO `yaml:"versionCorrection"`
	Graphs            []GraphDTO            `yaml:"graphs"`
	Resolutions       []ResolutionDTO       `yaml:"resolutions"`
	Targets           []TargetDTO           `yaml:"targets"`
	DeepTypes         []string              `yaml:"deepTypes"`
}

// VersionCorrectionDTO is the as-of context the view was compiled under.
type VersionCorrectionDTO struct {
	VersionAsOf time.Time `yaml:"versionAsOf"`
	CorrectedTo time.Time `yaml:"correctedTo"`
}

// GraphDTO is the dependency graph of one calculation configuration.
type GraphDTO struct {
	Name      string        `yaml:"name"`
	Nodes     []NodeDTO     `yaml:"nodes"`
	Terminals []TerminalDTO `yaml:"terminals"`
}

// NodeDTO is a computation node. ID is a label local to the file.
type NodeDTO struct {
	ID       string       `yaml:"id"`
	Target   TargetRefDTO `yaml:"target"`
	Function FunctionDTO  `yaml:"function"`
	Inputs   []string     `yaml:"inputs"`
	Outputs  []OutputDTO  `yaml:"outputs"`
}

// TargetRefDTO is either a specification (id) or a requirement (externalIds).
type TargetRefDTO struct {
	Type        string   `yaml:"type"`
	ID          string   `yaml:"id"`
	ExternalIDs []string `yaml:"externalIds"`
}

// FunctionDTO is the function assigned to a node.
type FunctionDTO struct {
	ID       string     `yaml:"id"`
	Earliest *time.Time `yaml:"earliest"`
	Latest   *time.Time `yaml:"latest"`
}

// OutputDTO is a value a node produces.
type OutputDTO struct {
	Value      string              `yaml:"value"`
	Properties map[string][]string `yaml:"properties"`
}

// TerminalDTO maps a requirement to the output of a node.
type TerminalDTO struct {
	Requirement RequirementDTO `yaml:"requirement"`
	Node        string         `yaml:"node"`
	Output      string         `yaml:"output"`
}

// RequirementDTO is a requested value.
type RequirementDTO struct {
	Value       string              `yaml:"value"`
	Target      TargetRefDTO        `yaml:"target"`
	Constraints map[string][]string `yaml:"constraints"`
}

// ResolutionDTO is a reference binding recorded while compiling.
type ResolutionDTO struct {
	Reference TargetRefDTO `yaml:"reference"`
	ID        string       `yaml:"id"`
}

// TargetDTO is one version of a resolvable object.
type TargetDTO struct {
	ID          string         `yaml:"id"`
	Type        string         `yaml:"type"`
	ExternalIDs []string       `yaml:"externalIds"`
	ValidFrom   time.Time      `yaml:"validFrom"`
	Value       map[string]any `yaml:"value"`
}
