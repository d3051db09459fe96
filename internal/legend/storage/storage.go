// Package storage defines the persistence contract for game content
// definitions.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/legend/internal/legend/registry"
)

// ErrNotFound is returned when a content entry does not exist.
var ErrNotFound = errors.New("record not found")

// DefinitionDomain names a domain stored as a plain registry.Definition.
type DefinitionDomain string

const (
	DomainPopulations  DefinitionDomain = "populations"
	DomainBuildings    DefinitionDomain = "buildings"
	DomainDevelopments DefinitionDomain = "developments"
	DomainActions      DefinitionDomain = "actions"
	DomainStats        DefinitionDomain = "stats"
)

// DefinitionDomains lists every plain definition domain.
var DefinitionDomains = []DefinitionDomain{
	DomainPopulations,
	DomainBuildings,
	DomainDevelopments,
	DomainActions,
	DomainStats,
}

// Valid reports whether d is a known definition domain.
func (d DefinitionDomain) Valid() bool {
	for _, known := range DefinitionDomains {
		if d == known {
			return true
		}
	}
	return false
}

// ContentWriter persists content definitions.
type ContentWriter interface {
	PutResource(ctx context.Context, def registry.ResourceDefinition) error
	PutDefinition(ctx context.Context, domain DefinitionDomain, def registry.Definition) error
	PutPhase(ctx context.Context, def registry.PhaseDefinition) error
	PutTrigger(ctx context.Context, def registry.TriggerDefinition) error
}

// ContentReader reads content definitions.
type ContentReader interface {
	GetResource(ctx context.Context, id string) (registry.ResourceDefinition, error)
	GetDefinition(ctx context.Context, domain DefinitionDomain, id string) (registry.Definition, error)
	GetPhase(ctx context.Context, id string) (registry.PhaseDefinition, error)
	GetTrigger(ctx context.Context, id string) (registry.TriggerDefinition, error)
	LoadRegistries(ctx context.Context) (*registry.Registries, error)
}

// ContentStore reads and writes content definitions.
type ContentStore interface {
	ContentWriter
	ContentReader
}

// Registry returns the registry of regs backing domain.
func Registry(regs *registry.Registries, domain DefinitionDomain) *registry.Registry[registry.Definition] {
	switch domain {
	case DomainPopulations:
		return regs.Populations
	case DomainBuildings:
		return regs.Buildings
	case DomainDevelopments:
		return regs.Developments
	case DomainActions:
		return regs.Actions
	case DomainStats:
		return regs.Stats
	default:
		return nil
	}
}
