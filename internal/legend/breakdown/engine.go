package breakdown

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"

	"github.com/louisbranch/legend/internal/legend/contribution"
	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/factory"
	"github.com/louisbranch/legend/internal/legend/metadata"
)

const (
	TitleOngoing   = "Ongoing"
	TitlePermanent = "Permanent"

	missingStart = "[MISSING:start]"
)

// Item is one line of a summary, or a nested group.
type Item struct {
	Text  string
	Group *Group
}

// Group is a titled list of items.
type Group struct {
	Title string
	Items []Item
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the locale used to format amounts.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

type placeholderKey struct {
	kind string
	id   string
}

// Engine summarizes contribution sources. It is safe for concurrent use.
type Engine struct {
	resolvers Resolvers
	locale    language.Tag

	mu           sync.Mutex
	placeholders map[placeholderKey]string
}

// New creates an engine over resolvers.
func New(resolvers Resolvers, opts ...Option) *Engine {
	e := &Engine{
		resolvers:    resolvers,
		locale:       language.English,
		placeholders: make(map[placeholderKey]string),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Reset clears the placeholder cache.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.placeholders = make(map[placeholderKey]string)
}

// Placeholder returns the cached "[MISSING:<kind>:<id>]" text for a pair.
func (e *Engine) Placeholder(kind, id string) string {
	key := placeholderKey{kind: kind, id: id}
	e.mu.Lock()
	defer e.mu.Unlock()
	if text, ok := e.placeholders[key]; ok {
		return text
	}
	text := fmt.Sprintf("[MISSING:%s:%s]", kind, id)
	e.placeholders[key] = text
	return text
}

type originKey struct {
	kind string
	id   string
}

type bucket struct {
	title   string
	order   []originKey
	origins map[originKey]*Group
}

// Summarize explains the value target through its sources.
//
// The result holds at most two groups, Ongoing before Permanent, each listing
// one group per origin in first-seen order.
func (e *Engine) Summarize(target string, sources contribution.SourceMap) ([]Group, error) {
	percent := e.targetPercent(target)
	buckets := []*bucket{
		{title: TitleOngoing, origins: make(map[originKey]*Group)},
		{title: TitlePermanent, origins: make(map[originKey]*Group)},
	}

	for _, source := range sources {
		b := buckets[1]
		if source.Meta.Longevity == contribution.LongevityOngoing {
			b = buckets[0]
		}
		kind, id := e.originOf(source.Meta.Kind, source.Meta.RawKind, source.Meta.ID)
		key := originKey{kind: kindKey(kind, source.Meta.RawKind), id: id}

		group, ok := b.origins[key]
		if !ok {
			title, err := e.resolveLabel(kind, source.Meta.RawKind, id, "")
			if err != nil {
				return nil, err
			}
			group = &Group{Title: title}
			b.origins[key] = group
			b.order = append(b.order, key)
		}

		group.Items = append(group.Items, Item{Text: FormatAmount(e.locale, source.Amount, percent)})
		if source.Meta.Longevity == contribution.LongevityOngoing {
			group.Items = append(group.Items, Item{Text: fmt.Sprintf("Ongoing as long as %s remains active", group.Title)})
		} else {
			group.Items = append(group.Items, Item{Text: TitlePermanent})
		}

		lines, err := e.dependencyLines(kind, id, source.Meta)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			group.Items = append(group.Items, Item{Text: line})
		}
	}

	var out []Group
	for _, b := range buckets {
		if len(b.order) == 0 {
			continue
		}
		top := Group{Title: b.title, Items: make([]Item, 0, len(b.order))}
		for _, key := range b.order {
			top.Items = append(top.Items, Item{Group: b.origins[key]})
		}
		out = append(out, top)
	}
	return out, nil
}

func (e *Engine) targetPercent(target string) bool {
	if e.resolvers.Stats != nil && e.resolvers.Stats.Has(target) {
		stat, err := e.resolvers.Stats.Select(target)
		if err == nil && stat.Percent() {
			return true
		}
	}
	if e.resolvers.Catalog != nil {
		return e.resolvers.Catalog.ResolvePercentFlag(target)
	}
	return false
}

// originOf maps a source or link kind onto an origin. A kind string naming a
// known resource is a resource origin.
func (e *Engine) originOf(kind contribution.Kind, rawKind, id string) (contribution.Kind, string) {
	if kind != contribution.KindUnknown || rawKind == "" {
		return kind, id
	}
	if e.isResource(rawKind) {
		return contribution.KindResource, descriptor.FirstNonEmpty(id, rawKind)
	}
	return kind, id
}

func (e *Engine) isResource(id string) bool {
	if e.resolvers.Resources != nil && e.resolvers.Resources.Has(id) {
		return true
	}
	if e.resolvers.Catalog != nil {
		_, ok := e.resolvers.Catalog.DeclaredDisplay(id)
		return ok
	}
	return false
}

type linkKey struct {
	origin originKey
	detail string
}

// dependencyLines renders one line per distinct link. Links back to the
// source's own origin are skipped.
func (e *Engine) dependencyLines(originKind contribution.Kind, originID string, meta contribution.Meta) ([]string, error) {
	self := originKey{kind: kindKey(originKind, meta.RawKind), id: originID}
	seen := make(map[linkKey]struct{}, len(meta.DependsOn))
	lines := make([]string, 0, len(meta.DependsOn))
	for _, link := range meta.DependsOn {
		kind, id := e.originOf(link.Kind, link.RawKind, link.ID)
		key := linkKey{origin: originKey{kind: kindKey(kind, link.RawKind), id: id}, detail: link.Detail}
		if key.origin == self {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		label, err := e.resolveLabel(kind, link.RawKind, id, link.Detail)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("Triggered by %s (%s)", label, linkValue(kind, link)))
	}
	return lines, nil
}

func linkValue(kind contribution.Kind, link contribution.DependencyLink) string {
	if link.Detail != "" {
		return descriptor.FallbackLabel(link.Detail)
	}
	if kind == contribution.KindUnknown && link.RawKind != "" {
		return descriptor.FallbackLabel(link.RawKind)
	}
	return kind.Noun()
}

// resolveLabel returns the display label for an origin or dependency link.
func (e *Engine) resolveLabel(kind contribution.Kind, rawKind, id, detail string) (string, error) {
	switch kind {
	case contribution.KindResource:
		return e.resourceLabel(id)
	case contribution.KindBuilding:
		return e.selectLabel(e.resolvers.Buildings, kind, id)
	case contribution.KindDevelopment:
		return e.selectLabel(e.resolvers.Developments, kind, id)
	case contribution.KindAction:
		return e.selectLabel(e.resolvers.Actions, kind, id)
	case contribution.KindLand:
		return e.assetLabel(factory.AssetLand)
	case contribution.KindPassive:
		return e.assetLabel(factory.AssetPassive)
	case contribution.KindPhase:
		return e.phaseLabel(id, detail)
	case contribution.KindTrigger:
		return e.triggerLabel(id)
	case contribution.KindStart:
		return missingStart, nil
	default:
		raw := descriptor.FirstNonEmpty(rawKind, kind.String())
		if id == "" || detail == "" {
			return e.Placeholder(raw, id), nil
		}
		return id + " " + descriptor.FallbackLabel(detail), nil
	}
}

// resourceLabel prefers the authored catalog display and fills its blank name
// or icon from the resource descriptor.
func (e *Engine) resourceLabel(id string) (string, error) {
	if id == "" {
		return e.Placeholder(contribution.KindResource.String(), id), nil
	}
	var display metadata.Display
	declared := false
	if e.resolvers.Catalog != nil {
		display, declared = e.resolvers.Catalog.DeclaredDisplay(id)
	}
	if display.Name != "" && display.Icon != "" {
		return FormatKindLabel(display.Icon, display.Name), nil
	}
	if e.resolvers.Resources != nil && e.resolvers.Resources.Has(id) {
		if desc, err := e.resolvers.Resources.Select(id); err == nil {
			return FormatKindLabel(
				descriptor.FirstNonEmpty(display.Icon, desc.Icon),
				descriptor.FirstNonEmpty(display.Name, desc.Label),
			), nil
		}
	}
	if declared {
		return FormatKindLabel(display.Icon, descriptor.FirstNonEmpty(display.Name, descriptor.FallbackLabel(id))), nil
	}
	return e.selectLabel(e.resolvers.Resources, contribution.KindResource, id)
}

func (e *Engine) selectLabel(lookup Lookup[descriptor.Descriptor], kind contribution.Kind, id string) (string, error) {
	if lookup == nil || id == "" {
		return e.Placeholder(kind.String(), id), nil
	}
	desc, err := lookup.Select(id)
	if err != nil {
		return e.Placeholder(kind.String(), id), nil
	}
	return FormatKindLabel(desc.Icon, desc.Label), nil
}

func (e *Engine) assetLabel(assetType factory.AssetType) (string, error) {
	if e.resolvers.Assets == nil {
		return e.Placeholder(string(assetType), ""), nil
	}
	asset, err := e.resolvers.Assets.Select(string(assetType))
	if err != nil {
		return e.Placeholder(string(assetType), ""), nil
	}
	return FormatKindLabel(asset.Icon, asset.Label), nil
}

func (e *Engine) phaseLabel(id, detail string) (string, error) {
	if e.resolvers.Phases == nil || id == "" {
		return e.Placeholder(contribution.KindPhase.String(), id), nil
	}
	phase, err := e.resolvers.Phases.Select(id)
	if err != nil {
		return e.Placeholder(contribution.KindPhase.String(), id), nil
	}
	label := FormatKindLabel(phase.Icon, phase.Label)
	if step, ok := phase.Step(detail); ok {
		label += " · " + FormatKindLabel(step.Icon, step.Label)
	}
	return label, nil
}

func (e *Engine) triggerLabel(id string) (string, error) {
	if e.resolvers.Triggers == nil || !e.resolvers.Triggers.Has(id) {
		var known []string
		if e.resolvers.Triggers != nil {
			known = e.resolvers.Triggers.ByID().Keys()
		}
		return "", factory.TriggerNotFound(id, known)
	}
	trigger, err := e.resolvers.Triggers.Select(id)
	if err != nil {
		return "", err
	}
	return FormatKindLabel(trigger.Icon, trigger.Label), nil
}

func kindKey(kind contribution.Kind, raw string) string {
	if kind == contribution.KindUnknown && raw != "" {
		return raw
	}
	return kind.String()
}
