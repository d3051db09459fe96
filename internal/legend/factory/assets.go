package factory

import (
	"fmt"

	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
	apperrors "github.com/louisbranch/legend/internal/platform/errors"
)

var defaultAssets = []AssetDescriptor{
	{Type: AssetLand, Descriptor: descriptor.Descriptor{Label: "Land", Icon: "🗺️", Description: "Territory that holds development slots."}},
	{Type: AssetSlot, Descriptor: descriptor.Descriptor{Label: "Development Slot", Icon: "🧩", Description: "Room on a land tile for one development."}},
	{Type: AssetPassive, Descriptor: descriptor.Descriptor{Label: "Passive", Icon: "♾️", Description: "Effects that stay active while their source remains."}},
	{Type: AssetPopulation, Descriptor: descriptor.Descriptor{Label: "Population", Icon: "👥", Description: "Citizens assigned to roles."}},
	{Type: AssetUpkeep, Descriptor: descriptor.Descriptor{Label: "Upkeep", Icon: "🧹", Description: "Recurring costs paid each turn."}},
}

// Assets builds the singleton asset table. Every built-in asset type resolves
// to exactly one descriptor; any required type missing from overrides fails
// with CodeRequiredAssetMissing naming the "assets.<type>" key.
func Assets(overrides map[string]metadata.Override, required []AssetType, opts ...descriptor.Option) (*descriptor.Table[AssetDescriptor], error) {
	for _, assetType := range required {
		if _, ok := overrides[string(assetType)]; !ok {
			key := "assets." + string(assetType)
			return nil, apperrors.WithMetadata(
				apperrors.CodeRequiredAssetMissing,
				fmt.Sprintf("session metadata is missing required %s", key),
				map[string]string{"key": key},
			)
		}
	}

	entries := make([]descriptor.Entry[AssetDescriptor], 0, len(defaultAssets))
	for _, def := range defaultAssets {
		override := overrides[string(def.Type)]
		id := string(def.Type)
		entries = append(entries, descriptor.Entry[AssetDescriptor]{
			ID: id,
			Value: &AssetDescriptor{
				Type: def.Type,
				Descriptor: descriptor.Descriptor{
					ID:          id,
					Label:       descriptor.FirstNonEmpty(override.Label, def.Label),
					Icon:        descriptor.FirstNonEmpty(override.Icon, def.Icon),
					Description: descriptor.FirstNonEmpty(override.Description, def.Description),
				},
			},
		})
	}
	for _, id := range metadata.SortedKeys(overrides) {
		if isDefaultAsset(AssetType(id)) {
			continue
		}
		override := overrides[id]
		entries = append(entries, descriptor.Entry[AssetDescriptor]{
			ID: id,
			Value: &AssetDescriptor{
				Type: AssetType(id),
				Descriptor: descriptor.Descriptor{
					ID:          id,
					Label:       descriptor.FirstNonEmpty(override.Label, descriptor.FallbackLabel(id)),
					Icon:        override.Icon,
					Description: override.Description,
				},
			},
		})
	}
	return descriptor.Build(DomainAssets, entries, descriptor.Graceful(func(id string) *AssetDescriptor {
		return &AssetDescriptor{Type: AssetType(id), Descriptor: *descriptor.Fallback(id)}
	}), opts...), nil
}

func isDefaultAsset(assetType AssetType) bool {
	for _, def := range defaultAssets {
		if def.Type == assetType {
			return true
		}
	}
	return false
}
