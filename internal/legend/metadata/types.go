package metadata

// Override replaces parts of a canonical definition for one id.
type Override struct {
	Label            string      `json:"label,omitempty" yaml:"label,omitempty"`
	Icon             string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description      string      `json:"description,omitempty" yaml:"description,omitempty"`
	DisplayAsPercent *bool       `json:"displayAsPercent,omitempty" yaml:"displayAsPercent,omitempty"`
	Format           *StatFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

// StatFormat controls how a stat value is rendered.
type StatFormat struct {
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Percent bool   `json:"percent,omitempty" yaml:"percent,omitempty"`
}

// StepOverride overrides one phase step, matched by id.
type StepOverride struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Triggers    []string `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// PhaseOverride overrides a phase and its steps.
type PhaseOverride struct {
	Label       string         `json:"label,omitempty" yaml:"label,omitempty"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Action      *bool          `json:"action,omitempty" yaml:"action,omitempty"`
	Steps       []StepOverride `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// TriggerOverride overrides hand-authored trigger text.
type TriggerOverride struct {
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Icon   string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Future string `json:"future,omitempty" yaml:"future,omitempty"`
	Past   string `json:"past,omitempty" yaml:"past,omitempty"`
}

// Relation is the aggregation by which a parent combines its group children.
type Relation string

const (
	// RelationSumOfAll means the parent value is the sum of its children.
	RelationSumOfAll Relation = "sumOfAll"
)

// Valid reports whether r is a known relation.
func (r Relation) Valid() bool {
	return r == RelationSumOfAll
}

// Display is the display block of a resource or parent aggregate.
type Display struct {
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	Icon             string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	Order            int    `json:"order,omitempty" yaml:"order,omitempty"`
	DisplayAsPercent *bool  `json:"displayAsPercent,omitempty" yaml:"displayAsPercent,omitempty"`
}

// Bounds are optional lower and upper value limits.
type Bounds struct {
	LowerBound *float64 `json:"lowerBound,omitempty" yaml:"lowerBound,omitempty"`
	UpperBound *float64 `json:"upperBound,omitempty" yaml:"upperBound,omitempty"`
}

// Tier is one step of a tier track.
type Tier struct {
	ID        string  `json:"id" yaml:"id"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// TierTrack is an ordered set of value tiers.
type TierTrack struct {
	ID    string `json:"id" yaml:"id"`
	Tiers []Tier `json:"tiers,omitempty" yaml:"tiers,omitempty"`
}

// GlobalActionCost is the amount of a resource every action consumes.
type GlobalActionCost struct {
	Amount float64 `json:"amount" yaml:"amount"`
}

// Resource is one ResourceV2 resource snapshot.
type Resource struct {
	ID                  string            `json:"id,omitempty" yaml:"id,omitempty"`
	Display             Display           `json:"display" yaml:"display"`
	Bounds              *Bounds           `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	GroupID             string            `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	ParentID            string            `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	TierTrack           *TierTrack        `json:"tierTrack,omitempty" yaml:"tierTrack,omitempty"`
	GlobalActionCost    *GlobalActionCost `json:"globalActionCost,omitempty" yaml:"globalActionCost,omitempty"`
	TrackValueBreakdown *bool             `json:"trackValueBreakdown,omitempty" yaml:"trackValueBreakdown,omitempty"`
	TrackBoundBreakdown *bool             `json:"trackBoundBreakdown,omitempty" yaml:"trackBoundBreakdown,omitempty"`
}

// Parent is the aggregate declared by a resource group.
type Parent struct {
	ID                  string     `json:"id,omitempty" yaml:"id,omitempty"`
	Order               int        `json:"order,omitempty" yaml:"order,omitempty"`
	Relation            Relation   `json:"relation" yaml:"relation"`
	Display             Display    `json:"display" yaml:"display"`
	Bounds              *Bounds    `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	TierTrack           *TierTrack `json:"tierTrack,omitempty" yaml:"tierTrack,omitempty"`
	TrackValueBreakdown *bool      `json:"trackValueBreakdown,omitempty" yaml:"trackValueBreakdown,omitempty"`
	TrackBoundBreakdown *bool      `json:"trackBoundBreakdown,omitempty" yaml:"trackBoundBreakdown,omitempty"`
}

// Group is a ResourceV2 group; Children declares display order.
type Group struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Order    int      `json:"order,omitempty" yaml:"order,omitempty"`
	Children []string `json:"children,omitempty" yaml:"children,omitempty"`
	Parent   *Parent  `json:"parent,omitempty" yaml:"parent,omitempty"`
}
