package factory

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/registry"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

// Triggers builds the strict trigger table. Resolving an id that is neither
// registered nor overridden fails with CodeTriggerMissingLabel.
func Triggers(reg *registry.Registry[registry.TriggerDefinition], overrides map[string]metadata.TriggerOverride, opts ...descriptor.Option) *descriptor.Table[TriggerDescriptor] {
	ids := knownIDs(keysOf(reg), overrides)
	entries := make([]descriptor.Entry[TriggerDescriptor], 0, len(ids))
	for _, id := range ids {
		var def registry.TriggerDefinition
		if reg != nil {
			def, _ = reg.Get(id)
		}
		override := overrides[id]
		entries = append(entries, descriptor.Entry[TriggerDescriptor]{
			ID: id,
			Value: &TriggerDescriptor{
				Descriptor: descriptor.Descriptor{
					ID:    id,
					Label: descriptor.FirstNonEmpty(override.Label, def.Label, descriptor.FallbackLabel(id)),
					Icon:  descriptor.FirstNonEmpty(override.Icon, def.Icon),
				},
				Future: descriptor.FirstNonEmpty(override.Future, def.Future),
				Past:   descriptor.FirstNonEmpty(override.Past, def.Past),
			},
		})
	}
	return descriptor.Build(DomainTriggers, entries, func(id string) (*TriggerDescriptor, error) {
		return nil, MissingTriggerLabel(id, ids)
	}, opts...)
}

// MissingTriggerLabel reports a trigger id without any registered descriptor.
func MissingTriggerLabel(id string, known []string) error {
	return triggerError(apperrors.CodeTriggerMissingLabel, fmt.Sprintf("Trigger %q is missing a label", id), id, known)
}

// TriggerNotFound reports a dependency link naming an unregistered trigger.
func TriggerNotFound(id string, known []string) error {
	return triggerError(apperrors.CodeTriggerNotFound, fmt.Sprintf("Trigger %q not found in assets", id), id, known)
}

func triggerError(code apperrors.Code, message, id string, known []string) error {
	meta := map[string]string{"trigger_id": id}
	if suggestion := SuggestID(id, known); suggestion != "" {
		meta["suggestion"] = suggestion
	}
	return apperrors.WithMetadata(code, message, meta)
}

// SuggestID returns the known id closest to id by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func SuggestID(id string, known []string) string {
	if id == "" || len(known) == 0 {
		return ""
	}
	candidates := make([]string, len(known))
	copy(candidates, known)
	sort.Strings(candidates)

	best := ""
	bestDist := suggestionLimit(len(id)) + 1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(id, candidate)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
