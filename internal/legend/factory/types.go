package factory

import (
	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
)

// StatDescriptor is a stat descriptor with formatting hints.
type StatDescriptor struct {
	descriptor.Descriptor
	DisplayAsPercent bool
	Format           *metadata.StatFormat
}

// Percent reports whether stat values render as percentages.
func (s *StatDescriptor) Percent() bool {
	if s == nil {
		return false
	}
	return s.DisplayAsPercent || (s.Format != nil && s.Format.Percent)
}

// PhaseStep is one step inside a phase.
type PhaseStep struct {
	ID          string
	Label       string
	Icon        string
	Description string
	Index       int
	Triggers    []string
}

// PhaseDescriptor is a phase with its ordered, id-indexed steps.
type PhaseDescriptor struct {
	descriptor.Descriptor
	Action    bool
	Steps     []*PhaseStep
	StepsByID map[string]*PhaseStep
}

// Step returns the step with id.
func (p *PhaseDescriptor) Step(id string) (*PhaseStep, bool) {
	step, ok := p.StepsByID[id]
	return step, ok
}

// TriggerDescriptor is hand-authored trigger text.
type TriggerDescriptor struct {
	descriptor.Descriptor
	Future string
	Past   string
}

// AssetType names a singleton asset.
type AssetType string

const (
	AssetLand       AssetType = "land"
	AssetSlot       AssetType = "slot"
	AssetPassive    AssetType = "passive"
	AssetPopulation AssetType = "population"
	AssetUpkeep     AssetType = "upkeep"
)

// RequiredAssets lists the asset types consumers cannot render without.
var RequiredAssets = []AssetType{AssetLand, AssetSlot, AssetPassive}

// AssetDescriptor is the descriptor of a singleton asset.
type AssetDescriptor struct {
	descriptor.Descriptor
	Type AssetType
}
