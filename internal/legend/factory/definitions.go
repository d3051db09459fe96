package factory

import (
	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/registry"
)

// Domain names used as descriptor table and cache namespaces.
const (
	DomainResources    = "resources"
	DomainPopulations  = "populations"
	DomainBuildings    = "buildings"
	DomainDevelopments = "developments"
	DomainActions      = "actions"
	DomainStats        = "stats"
	DomainPhases       = "phases"
	DomainTriggers     = "triggers"
	DomainAssets       = "assets"
)

// Resources builds the resource table.
func Resources(reg *registry.Registry[registry.ResourceDefinition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	ids := knownIDs(keysOf(reg), overrides)
	entries := make([]descriptor.Entry[descriptor.Descriptor], 0, len(ids))
	for _, id := range ids {
		var def registry.ResourceDefinition
		if reg != nil {
			def, _ = reg.Get(id)
		}
		override := overrides[id]
		entries = append(entries, descriptor.Entry[descriptor.Descriptor]{
			ID: id,
			Value: &descriptor.Descriptor{
				ID:          id,
				Label:       descriptor.FirstNonEmpty(override.Label, def.Label, descriptor.FallbackLabel(id)),
				Icon:        descriptor.FirstNonEmpty(override.Icon, def.Icon),
				Description: descriptor.FirstNonEmpty(override.Description, def.Description),
			},
		})
	}
	return descriptor.Build(DomainResources, entries, descriptor.Graceful(descriptor.Fallback), opts...)
}

// Populations builds the population role table.
func Populations(reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	return definitionTable(DomainPopulations, reg, overrides, opts...)
}

// Buildings builds the building table.
func Buildings(reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	return definitionTable(DomainBuildings, reg, overrides, opts...)
}

// Developments builds the development table.
func Developments(reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	return definitionTable(DomainDevelopments, reg, overrides, opts...)
}

// Actions builds the action table.
func Actions(reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	return definitionTable(DomainActions, reg, overrides, opts...)
}

func definitionTable(domain string, reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[descriptor.Descriptor] {
	ids := knownIDs(keysOf(reg), overrides)
	entries := make([]descriptor.Entry[descriptor.Descriptor], 0, len(ids))
	for _, id := range ids {
		var def registry.Definition
		if reg != nil {
			def, _ = reg.Get(id)
		}
		override := overrides[id]
		entries = append(entries, descriptor.Entry[descriptor.Descriptor]{
			ID: id,
			Value: &descriptor.Descriptor{
				ID:          id,
				Label:       descriptor.FirstNonEmpty(override.Label, def.Name, descriptor.FallbackLabel(id)),
				Icon:        descriptor.FirstNonEmpty(override.Icon, def.Icon),
				Description: descriptor.FirstNonEmpty(override.Description, def.Description),
			},
		})
	}
	return descriptor.Build(domain, entries, descriptor.Graceful(descriptor.Fallback), opts...)
}

// Stats builds the stat table. Stat labels never come from the registry name:
// an override label wins, otherwise the id is formatted.
func Stats(reg *registry.Registry[registry.Definition], overrides map[string]metadata.Override, opts ...descriptor.Option) *descriptor.Table[StatDescriptor] {
	ids := knownIDs(keysOf(reg), overrides)
	entries := make([]descriptor.Entry[StatDescriptor], 0, len(ids))
	for _, id := range ids {
		var def registry.Definition
		if reg != nil {
			def, _ = reg.Get(id)
		}
		override := overrides[id]
		stat := &StatDescriptor{
			Descriptor: descriptor.Descriptor{
				ID:          id,
				Label:       descriptor.FirstNonEmpty(override.Label, descriptor.FallbackLabel(id)),
				Icon:        descriptor.FirstNonEmpty(override.Icon, def.Icon),
				Description: descriptor.FirstNonEmpty(override.Description, def.Description),
			},
		}
		if override.DisplayAsPercent != nil {
			stat.DisplayAsPercent = *override.DisplayAsPercent
		}
		if override.Format != nil {
			format := *override.Format
			stat.Format = &format
		}
		entries = append(entries, descriptor.Entry[StatDescriptor]{ID: id, Value: stat})
	}
	return descriptor.Build(DomainStats, entries, descriptor.Graceful(func(id string) *StatDescriptor {
		return &StatDescriptor{Descriptor: *descriptor.Fallback(id)}
	}), opts...)
}

func keysOf[T registry.Keyed](reg *registry.Registry[T]) []string {
	if reg == nil {
		return nil
	}
	return reg.Keys()
}

// knownIDs returns registry ids in registration order followed by ids only
// present in overrides, in lexical order.
func knownIDs[V any](registered []string, overrides map[string]V) []string {
	seen := make(map[string]struct{}, len(registered)+len(overrides))
	ids := make([]string, 0, len(registered)+len(overrides))
	for _, id := range registered {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, id := range metadata.SortedKeys(overrides) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
