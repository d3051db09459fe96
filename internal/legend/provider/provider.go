// Package provider composes content registries and a session metadata payload
// into the selectors, singleton assets and ResourceV2 catalog of one session.
//
// A Provider is built once per (registries, metadata) pairing and is
// read-only afterwards. Construction fails when the metadata omits one of the
// required singleton assets.
package provider

import (
	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/factory"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/registry"
	"github.com/louisbranch/legend/internal/legend/resourcev2"
	"github.com/louisbranch/legend/internal/legend/selector"
)

// Option configures provider construction.
type Option func(*options)

type options struct {
	cache    *descriptor.FallbackCache
	required []factory.AssetType
}

// WithCache shares a fallback cache, e.g. one cache per host process.
func WithCache(cache *descriptor.FallbackCache) Option {
	return func(o *options) {
		o.cache = cache
	}
}

// WithRequiredAssets replaces the asset types that must be present.
func WithRequiredAssets(types ...factory.AssetType) Option {
	return func(o *options) {
		o.required = types
	}
}

// Provider exposes every descriptor selector of one session.
type Provider struct {
	Resources    *selector.Selector[descriptor.Descriptor]
	Populations  *selector.Selector[descriptor.Descriptor]
	Buildings    *selector.Selector[descriptor.Descriptor]
	Developments *selector.Selector[descriptor.Descriptor]
	Actions      *selector.Selector[descriptor.Descriptor]
	Stats        *selector.Selector[factory.StatDescriptor]
	Phases       *selector.Selector[factory.PhaseDescriptor]
	Triggers     *selector.Selector[factory.TriggerDescriptor]
	Assets       *selector.Selector[factory.AssetDescriptor]
	Catalog      *resourcev2.Catalog

	cache *descriptor.FallbackCache
}

// New builds a provider. regs and session may be nil, in which case only
// fallbacks resolve; a nil session fails the required asset check.
func New(regs *registry.Registries, session *metadata.Session, opts ...Option) (*Provider, error) {
	o := options{required: factory.RequiredAssets}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.cache == nil {
		o.cache = descriptor.NewFallbackCache()
	}
	if regs == nil {
		regs = registry.NewRegistries()
	}
	if session == nil {
		session = &metadata.Session{}
	}

	shared := descriptor.WithCache(o.cache)
	assets, err := factory.Assets(session.Assets, o.required, shared)
	if err != nil {
		return nil, err
	}

	return &Provider{
		Resources:    selector.New(factory.Resources(regs.Resources, session.Resources, shared)),
		Populations:  selector.New(factory.Populations(regs.Populations, session.Populations, shared)),
		Buildings:    selector.New(factory.Buildings(regs.Buildings, session.Buildings, shared)),
		Developments: selector.New(factory.Developments(regs.Developments, session.Developments, shared)),
		Actions:      selector.New(factory.Actions(regs.Actions, session.Actions, shared)),
		Stats:        selector.New(factory.Stats(regs.Stats, session.Stats, shared)),
		Phases:       selector.New(factory.Phases(regs.Phases, session.Phases, shared)),
		Triggers:     selector.New(factory.Triggers(regs.Triggers, session.Triggers, shared)),
		Assets:       selector.New(assets),
		Catalog:      resourcev2.FromMetadata(session),
		cache:        o.cache,
	}, nil
}

// Asset returns a built-in singleton asset descriptor.
func (p *Provider) Asset(assetType factory.AssetType) *factory.AssetDescriptor {
	asset, err := p.Assets.Select(string(assetType))
	if err != nil {
		// The asset table fallback never fails.
		return &factory.AssetDescriptor{Type: assetType, Descriptor: *descriptor.Fallback(string(assetType))}
	}
	return asset
}

// Land returns the land asset descriptor.
func (p *Provider) Land() *factory.AssetDescriptor { return p.Asset(factory.AssetLand) }

// Slot returns the development slot asset descriptor.
func (p *Provider) Slot() *factory.AssetDescriptor { return p.Asset(factory.AssetSlot) }

// Passive returns the passive asset descriptor.
func (p *Provider) Passive() *factory.AssetDescriptor { return p.Asset(factory.AssetPassive) }

// Population returns the population asset descriptor.
func (p *Provider) Population() *factory.AssetDescriptor { return p.Asset(factory.AssetPopulation) }

// Upkeep returns the upkeep asset descriptor.
func (p *Provider) Upkeep() *factory.AssetDescriptor { return p.Asset(factory.AssetUpkeep) }

// Reset drops every fallback descriptor synthesized for this provider.
func (p *Provider) Reset() {
	p.cache.Reset()
}

// CachedFallbacks returns the number of synthesized descriptors.
func (p *Provider) CachedFallbacks() int {
	return p.cache.Len()
}
