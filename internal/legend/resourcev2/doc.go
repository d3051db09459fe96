// Package resourcev2 models the hierarchical resource catalog: resources,
// groups, and the parent aggregate a group may declare.
//
// The catalog resolves display, bounds, tier tracks and flags for an id,
// letting a group's parent act as the default for its children where a
// resource omits a value. It also reconciles a group's declared child order
// with the members actually present at runtime.
//
// Parent aggregate values (relation sumOfAll) are supplied by the simulation
// snapshot; the catalog describes the relation but never recomputes it.
package resourcev2
