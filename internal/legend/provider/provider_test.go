package provider

import (
	"strings"
	"testing"

	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/factory"
	"github.com/louisbranch/legend/internal/legend/metadata"
	"github.com/louisbranch/legend/internal/legend/registry"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

func requiredAssets() map[string]metadata.Override {
	return map[string]metadata.Override{
		"land":    {Label: "Land"},
		"slot":    {Label: "Slot"},
		"passive": {Label: "Passive"},
	}
}

func TestNewRequiresLandAsset(t *testing.T) {
	session := &metadata.Session{Assets: map[string]metadata.Override{
		"slot":    {},
		"passive": {},
	}}
	_, err := New(nil, session)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "assets.land") {
		t.Fatalf("error = %q, want assets.land", err.Error())
	}
	if apperrors.GetCode(err) != apperrors.CodeRequiredAssetMissing {
		t.Fatalf("code = %q", apperrors.GetCode(err))
	}
}

func TestNewNilSessionFails(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected required asset error")
	}
	p, err := New(nil, nil, WithRequiredAssets())
	if err != nil {
		t.Fatalf("new without required assets: %v", err)
	}
	if p.Land().Label != "Land" {
		t.Fatalf("land = %+v", p.Land())
	}
}

func TestProviderWiresSelectors(t *testing.T) {
	regs := registry.NewRegistries()
	regs.Resources.Register(registry.ResourceDefinition{Key: "gold", Label: "Gold", Icon: "🪙"})
	regs.Buildings.Register(registry.Definition{ID: "farm", Name: "Farm", Icon: "🌾"})
	regs.Triggers.Register(registry.TriggerDefinition{ID: "onBuild", Label: "On build"})
	session := &metadata.Session{
		Assets:    requiredAssets(),
		Resources: map[string]metadata.Override{"gold": {Label: "Treasury"}},
		ResourceMetadata: map[string]metadata.Resource{
			"happiness": {ID: "happiness", Display: metadata.Display{Name: "Happiness"}},
		},
	}

	p, err := New(regs, session)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	gold, err := p.Resources.Select("gold")
	if err != nil || gold.Label != "Treasury" || gold.Icon != "🪙" {
		t.Fatalf("gold = %+v, %v", gold, err)
	}
	if farm, _ := p.Buildings.Select("farm"); farm.Label != "Farm" {
		t.Fatalf("farm = %+v", farm)
	}
	if _, err := p.Triggers.Select("missing-trigger"); err == nil || err.Error() != `Trigger "missing-trigger" is missing a label` {
		t.Fatalf("trigger err = %v", err)
	}
	if display, ok := p.Catalog.ResolveDisplay("happiness"); !ok || display.Name != "Happiness" {
		t.Fatalf("catalog display = %+v", display)
	}
	if p.Slot().Label != "Slot" || p.Upkeep().Label != "Upkeep" || p.Population().Icon != "👥" || p.Passive().Label != "Passive" {
		t.Fatal("unexpected asset descriptors")
	}
	if got := p.Asset(factory.AssetType("transfer")); got.Label != "Transfer" {
		t.Fatalf("transfer = %+v", got)
	}
}

func TestProviderResetDropsFallbacks(t *testing.T) {
	cache := descriptor.NewFallbackCache()
	p, err := New(nil, &metadata.Session{Assets: requiredAssets()}, WithCache(cache))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	first, _ := p.Resources.Select("unknown-x")
	if second, _ := p.Resources.Select("unknown-x"); second != first {
		t.Fatal("expected cached fallback")
	}
	if p.CachedFallbacks() == 0 || cache.Len() != p.CachedFallbacks() {
		t.Fatalf("cached = %d, shared = %d", p.CachedFallbacks(), cache.Len())
	}
	p.Reset()
	if p.CachedFallbacks() != 0 {
		t.Fatalf("cached after reset = %d", p.CachedFallbacks())
	}
	if third, _ := p.Resources.Select("unknown-x"); third == first {
		t.Fatal("expected fresh fallback after reset")
	}
}
