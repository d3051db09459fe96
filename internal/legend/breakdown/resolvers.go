package breakdown

import (
	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/factory"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/provider"
)

// Lookup is the read API the engine needs from one selector.
type Lookup[T any] interface {
	Select(id string) (*T, error)
	Has(id string) bool
	ByID() descriptor.Record[T]
}

// Catalog is the ResourceV2 API the engine needs.
type Catalog interface {
	DeclaredDisplay(id string) (metadata.Display, bool)
	ResolvePercentFlag(id string) bool
}

// Resolvers are the descriptor sources consulted while summarizing.
type Resolvers struct {
	Resources    Lookup[descriptor.Descriptor]
	Buildings    Lookup[descriptor.Descriptor]
	Developments Lookup[descriptor.Descriptor]
	Actions      Lookup[descriptor.Descriptor]
	Stats        Lookup[factory.StatDescriptor]
	Phases       Lookup[factory.PhaseDescriptor]
	Triggers     Lookup[factory.TriggerDescriptor]
	Assets       Lookup[factory.AssetDescriptor]
	Catalog      Catalog
}

// FromProvider wires every resolver from a session provider.
func FromProvider(p *provider.Provider) Resolvers {
	return Resolvers{
		Resources:    p.Resources,
		Buildings:    p.Buildings,
		Developments: p.Developments,
		Actions:      p.Actions,
		Stats:        p.Stats,
		Phases:       p.Phases,
		Triggers:     p.Triggers,
		Assets:       p.Assets,
		Catalog:      p.Catalog,
	}
}
