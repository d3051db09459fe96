package resourcev2

import (
	"sort"

	"github.com/louisbranch/legend/internal/legend/descriptor"
	"github.com/louisbranch/legend/internal/legend/metadata"
)

// Tracking reports which breakdowns the UI records for a value.
type Tracking struct {
	Value bool
	Bound bool
}

// GroupView is the resolved display of a group. A declared parent's display
// and percent flag take precedence over anything its children declare.
type GroupView struct {
	ID       string
	Display  metadata.Display
	Percent  bool
	Parent   *metadata.Parent
	Children []string
}

// Option configures catalog construction.
type Option func(*Catalog)

// WithParents registers standalone parent snapshots keyed by parent id. They
// replace the parent embedded in a group when ids match.
func WithParents(parents ...metadata.Parent) Option {
	return func(c *Catalog) {
		for _, parent := range parents {
			if parent.ID == "" {
				continue
			}
			c.parents[parent.ID] = parent
		}
	}
}

// WithParentIndex maps resource ids to parent ids.
func WithParentIndex(index map[string]string) Option {
	return func(c *Catalog) {
		for resourceID, parentID := range index {
			if parentID != "" {
				c.parentByResource[resourceID] = parentID
			}
		}
	}
}

// WithOrder sets the snapshot order of resources and groups.
func WithOrder(resourceIDs, groupIDs []string) Option {
	return func(c *Catalog) {
		c.resourceOrder = append([]string(nil), resourceIDs...)
		c.groupOrder = append([]string(nil), groupIDs...)
	}
}

// Catalog is the read-only ResourceV2 model of one session snapshot.
type Catalog struct {
	resources        map[string]metadata.Resource
	groups           map[string]metadata.Group
	parents          map[string]metadata.Parent
	groupByParent    map[string]string
	parentByResource map[string]string
	resourceOrder    []string
	groupOrder       []string
}

// Build creates a catalog from resource and group snapshots.
func Build(resources []metadata.Resource, groups []metadata.Group, opts ...Option) *Catalog {
	c := &Catalog{
		resources:        make(map[string]metadata.Resource, len(resources)),
		groups:           make(map[string]metadata.Group, len(groups)),
		parents:          make(map[string]metadata.Parent),
		groupByParent:    make(map[string]string),
		parentByResource: make(map[string]string),
	}
	for _, resource := range resources {
		if resource.ID == "" {
			continue
		}
		c.resources[resource.ID] = resource
	}
	for _, group := range groups {
		if group.ID == "" {
			continue
		}
		c.groups[group.ID] = group
		if group.Parent != nil && group.Parent.ID != "" {
			c.parents[group.Parent.ID] = *group.Parent
			c.groupByParent[group.Parent.ID] = group.ID
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if len(c.resourceOrder) == 0 {
		c.resourceOrder = c.sortedResourceIDs()
	}
	if len(c.groupOrder) == 0 {
		c.groupOrder = c.sortedGroupIDs()
	}
	return c
}

// FromMetadata builds the catalog from a session payload.
func FromMetadata(session *metadata.Session) *Catalog {
	if session == nil {
		return Build(nil, nil)
	}
	resources := make([]metadata.Resource, 0, len(session.ResourceMetadata))
	for _, id := range metadata.SortedKeys(session.ResourceMetadata) {
		resources = append(resources, session.ResourceMetadata[id])
	}
	groups := make([]metadata.Group, 0, len(session.ResourceGroups))
	for _, id := range metadata.SortedKeys(session.ResourceGroups) {
		groups = append(groups, session.ResourceGroups[id])
	}
	parents := make([]metadata.Parent, 0, len(session.ResourceGroupParents))
	for _, id := range metadata.SortedKeys(session.ResourceGroupParents) {
		parents = append(parents, session.ResourceGroupParents[id])
	}
	return Build(resources, groups,
		WithParents(parents...),
		WithParentIndex(session.ParentIDByResourceID),
		WithOrder(session.OrderedResourceIDs, session.OrderedResourceGroupIDs),
	)
}

// Resource returns the resource snapshot for id.
func (c *Catalog) Resource(id string) (metadata.Resource, bool) {
	resource, ok := c.resources[id]
	return resource, ok
}

// Parent returns the parent snapshot for a parent id.
func (c *Catalog) Parent(id string) (metadata.Parent, bool) {
	parent, ok := c.parents[id]
	return parent, ok
}

// Group returns the group snapshot for id.
func (c *Catalog) Group(id string) (metadata.Group, bool) {
	group, ok := c.groups[id]
	return group, ok
}

// ParentGroup returns the group that declares a parent.
func (c *Catalog) ParentGroup(parentID string) (metadata.Group, bool) {
	groupID, ok := c.groupByParent[parentID]
	if !ok {
		return metadata.Group{}, false
	}
	return c.Group(groupID)
}

// GroupOf returns the group a resource belongs to.
func (c *Catalog) GroupOf(resourceID string) (metadata.Group, bool) {
	resource, ok := c.resources[resourceID]
	if !ok || resource.GroupID == "" {
		return metadata.Group{}, false
	}
	return c.Group(resource.GroupID)
}

// ParentOf returns the parent aggregate of a resource: its own parent id, the
// snapshot parent index, or the parent declared by its group.
func (c *Catalog) ParentOf(resourceID string) (metadata.Parent, bool) {
	resource, ok := c.resources[resourceID]
	if ok && resource.ParentID != "" {
		if parent, found := c.parents[resource.ParentID]; found {
			return parent, true
		}
	}
	if parentID, found := c.parentByResource[resourceID]; found {
		if parent, ok := c.parents[parentID]; ok {
			return parent, true
		}
	}
	group, ok := c.GroupOf(resourceID)
	if !ok || group.Parent == nil {
		return metadata.Parent{}, false
	}
	return c.Parent(group.Parent.ID)
}

// ResolveDisplay returns the resource display, else the parent display. An
// unnamed display is named after its id.
func (c *Catalog) ResolveDisplay(id string) (metadata.Display, bool) {
	display, ok := c.DeclaredDisplay(id)
	if !ok {
		return metadata.Display{}, false
	}
	return withName(display, id), true
}

// DeclaredDisplay returns the display block exactly as authored for the
// resource or parent id.
func (c *Catalog) DeclaredDisplay(id string) (metadata.Display, bool) {
	if resource, ok := c.resources[id]; ok {
		return resource.Display, true
	}
	if parent, ok := c.parents[id]; ok {
		return parent.Display, true
	}
	return metadata.Display{}, false
}

// ResolveBounds returns the bounds declared by the resource or parent id.
func (c *Catalog) ResolveBounds(id string) (metadata.Bounds, bool) {
	if resource, ok := c.resources[id]; ok {
		if resource.Bounds == nil {
			return metadata.Bounds{}, false
		}
		return *resource.Bounds, true
	}
	if parent, ok := c.parents[id]; ok && parent.Bounds != nil {
		return *parent.Bounds, true
	}
	return metadata.Bounds{}, false
}

// ResolveTierTrack returns the resource tier track, else its parent's.
func (c *Catalog) ResolveTierTrack(id string) (*metadata.TierTrack, bool) {
	if resource, ok := c.resources[id]; ok {
		if resource.TierTrack != nil {
			return resource.TierTrack, true
		}
		if parent, ok := c.ParentOf(id); ok && parent.TierTrack != nil {
			return parent.TierTrack, true
		}
		return nil, false
	}
	if parent, ok := c.parents[id]; ok && parent.TierTrack != nil {
		return parent.TierTrack, true
	}
	return nil, false
}

// ResolvePercentFlag reports whether id renders as a percentage. A resource
// without its own flag inherits the flag of its group's parent.
func (c *Catalog) ResolvePercentFlag(id string) bool {
	if resource, ok := c.resources[id]; ok {
		if resource.Display.DisplayAsPercent != nil {
			return *resource.Display.DisplayAsPercent
		}
		if parent, ok := c.ParentOf(id); ok {
			return flag(parent.Display.DisplayAsPercent)
		}
		return false
	}
	if parent, ok := c.parents[id]; ok {
		return flag(parent.Display.DisplayAsPercent)
	}
	return false
}

// ResolveGlobalCost returns the global action cost of a resource. Parents
// never carry one and children never inherit it.
func (c *Catalog) ResolveGlobalCost(id string) (*metadata.GlobalActionCost, bool) {
	resource, ok := c.resources[id]
	if !ok || resource.GlobalActionCost == nil {
		return nil, false
	}
	return resource.GlobalActionCost, true
}

// ResolveTracking returns the breakdown tracking flags of id, with the parent
// as the default for resources that omit them.
func (c *Catalog) ResolveTracking(id string) Tracking {
	if resource, ok := c.resources[id]; ok {
		parent, hasParent := c.ParentOf(id)
		tracking := Tracking{
			Value: flag(resource.TrackValueBreakdown),
			Bound: flag(resource.TrackBoundBreakdown),
		}
		if resource.TrackValueBreakdown == nil && hasParent {
			tracking.Value = flag(parent.TrackValueBreakdown)
		}
		if resource.TrackBoundBreakdown == nil && hasParent {
			tracking.Bound = flag(parent.TrackBoundBreakdown)
		}
		return tracking
	}
	if parent, ok := c.parents[id]; ok {
		return Tracking{Value: flag(parent.TrackValueBreakdown), Bound: flag(parent.TrackBoundBreakdown)}
	}
	return Tracking{}
}

// ResolveGroup returns the display of a group with its ordered members.
func (c *Catalog) ResolveGroup(groupID string) (GroupView, bool) {
	group, ok := c.groups[groupID]
	if !ok {
		return GroupView{}, false
	}
	view := GroupView{
		ID:       groupID,
		Display:  metadata.Display{Name: descriptor.FallbackLabel(groupID), Order: group.Order},
		Children: c.GroupMembers(groupID),
	}
	if group.Parent != nil {
		if parent, ok := c.parents[group.Parent.ID]; ok {
			view.Parent = &parent
			view.Display = withName(parent.Display, parent.ID)
			view.Percent = flag(parent.Display.DisplayAsPercent)
		}
	}
	return view, true
}

// GroupMembers returns the resources of a group in reconciled display order.
func (c *Catalog) GroupMembers(groupID string) []string {
	group, ok := c.groups[groupID]
	if !ok {
		return nil
	}
	var members []string
	for _, id := range c.resourceOrder {
		if resource, ok := c.resources[id]; ok && resource.GroupID == groupID {
			members = append(members, id)
		}
	}
	return ReconcileOrder(group.Children, members)
}

// OrderGroupMembers orders runtime members of a group against its declared
// children.
func (c *Catalog) OrderGroupMembers(groupID string, members []string) []string {
	group, ok := c.groups[groupID]
	if !ok {
		return ReconcileOrder(nil, members)
	}
	return ReconcileOrder(group.Children, members)
}

// OrderedResourceIDs returns resource ids in snapshot order.
func (c *Catalog) OrderedResourceIDs() []string {
	return append([]string(nil), c.resourceOrder...)
}

// OrderedGroupIDs returns group ids in snapshot order.
func (c *Catalog) OrderedGroupIDs() []string {
	return append([]string(nil), c.groupOrder...)
}

// IsParent reports whether id names a parent aggregate.
func (c *Catalog) IsParent(id string) bool {
	_, ok := c.parents[id]
	return ok
}

func (c *Catalog) sortedResourceIDs() []string {
	ids := metadata.SortedKeys(c.resources)
	sort.SliceStable(ids, func(i, j int) bool {
		return c.resources[ids[i]].Display.Order < c.resources[ids[j]].Display.Order
	})
	return ids
}

func (c *Catalog) sortedGroupIDs() []string {
	ids := metadata.SortedKeys(c.groups)
	sort.SliceStable(ids, func(i, j int) bool {
		return c.groups[ids[i]].Order < c.groups[ids[j]].Order
	})
	return ids
}

func withName(display metadata.Display, id string) metadata.Display {
	if display.Name == "" {
		display.Name = descriptor.FallbackLabel(id)
	}
	return display
}

func flag(value *bool) bool {
	return value != nil && *value
}
