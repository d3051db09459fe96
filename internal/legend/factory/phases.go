package factory

import (
	"fmt"

	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/registry"
)

// Phases builds the phase table with embedded step tables.
func Phases(reg *registry.Registry[registry.PhaseDefinition], overrides map[string]metadata.PhaseOverride, opts ...descriptor.Option) *descriptor.Table[PhaseDescriptor] {
	ids := knownIDs(keysOf(reg), overrides)
	entries := make([]descriptor.Entry[PhaseDescriptor], 0, len(ids))
	for _, id := range ids {
		var def registry.PhaseDefinition
		if reg != nil {
			def, _ = reg.Get(id)
		}
		entries = append(entries, descriptor.Entry[PhaseDescriptor]{
			ID:    id,
			Value: buildPhase(id, def, overrides[id]),
		})
	}
	return descriptor.Build(DomainPhases, entries, descriptor.Graceful(func(id string) *PhaseDescriptor {
		return buildPhase(id, registry.PhaseDefinition{}, metadata.PhaseOverride{})
	}), opts...)
}

func buildPhase(id string, def registry.PhaseDefinition, override metadata.PhaseOverride) *PhaseDescriptor {
	phase := &PhaseDescriptor{
		Descriptor: descriptor.Descriptor{
			ID:          id,
			Label:       descriptor.FirstNonEmpty(override.Label, def.Label, descriptor.FallbackLabel(id)),
			Icon:        descriptor.FirstNonEmpty(override.Icon, def.Icon),
			Description: override.Description,
		},
		Action: def.Action,
	}
	if override.Action != nil {
		phase.Action = *override.Action
	}

	steps := make([]metadata.StepOverride, 0, len(def.Steps)+len(override.Steps))
	positions := make(map[string]int, len(def.Steps))
	for index, step := range def.Steps {
		stepID := step.ID
		if stepID == "" {
			stepID = SyntheticStepID(id, index)
		}
		positions[stepID] = len(steps)
		steps = append(steps, metadata.StepOverride{
			ID:          stepID,
			Title:       step.Title,
			Icon:        step.Icon,
			Description: step.Description,
			Triggers:    step.Triggers,
		})
	}
	for _, step := range override.Steps {
		if pos, ok := positions[step.ID]; ok && step.ID != "" {
			merged := steps[pos]
			merged.Title = descriptor.FirstNonEmpty(step.Title, merged.Title)
			merged.Icon = descriptor.FirstNonEmpty(step.Icon, merged.Icon)
			merged.Description = descriptor.FirstNonEmpty(step.Description, merged.Description)
			if step.Triggers != nil {
				merged.Triggers = step.Triggers
			}
			steps[pos] = merged
			continue
		}
		stepID := step.ID
		if stepID == "" {
			stepID = SyntheticStepID(id, len(steps))
		}
		positions[stepID] = len(steps)
		step.ID = stepID
		steps = append(steps, step)
	}

	phase.Steps = make([]*PhaseStep, 0, len(steps))
	phase.StepsByID = make(map[string]*PhaseStep, len(steps))
	for index, step := range steps {
		triggers := make([]string, len(step.Triggers))
		copy(triggers, step.Triggers)
		built := &PhaseStep{
			ID:          step.ID,
			Label:       descriptor.FirstNonEmpty(step.Title, descriptor.FallbackLabel(step.ID)),
			Icon:        step.Icon,
			Description: step.Description,
			Index:       index,
			Triggers:    triggers,
		}
		phase.Steps = append(phase.Steps, built)
		phase.StepsByID[built.ID] = built
	}
	return phase
}

// SyntheticStepID names a step that was authored without an id.
func SyntheticStepID(phaseID string, index int) string {
	return fmt.Sprintf("%s:step:%d", phaseID, index)
}
