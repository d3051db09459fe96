package registry

// Definition is the canonical entry shared by most content domains.
type Definition struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

// DefinitionID returns the registry key.
func (d Definition) DefinitionID() string { return d.ID }

// ResourceDefinition describes a resource keyed by string id.
type ResourceDefinition struct {
	Key         string
	Label       string
	Icon        string
	Description string
	Tags        []string
}

// DefinitionID returns the registry key.
func (d ResourceDefinition) DefinitionID() string { return d.Key }

// StepDefinition describes one step of a phase.
type StepDefinition struct {
	ID          string
	Title       string
	Icon        string
	Description string
	Triggers    []string
}

// PhaseDefinition describes a turn phase and its ordered steps.
type PhaseDefinition struct {
	ID     string
	Label  string
	Icon   string
	Action bool
	Steps  []StepDefinition
}

// DefinitionID returns the registry key.
func (d PhaseDefinition) DefinitionID() string { return d.ID }

// TriggerDefinition describes a hand-authored trigger.
type TriggerDefinition struct {
	ID     string
	Label  string
	Icon   string
	Future string
	Past   string
}

// DefinitionID returns the registry key.
func (d TriggerDefinition) DefinitionID() string { return d.ID }
