// Package metadata decodes the session metadata payload produced by the
// simulation layer.
//
// The payload carries per-domain descriptor overrides plus the ResourceV2
// snapshot (resources, groups and parent aggregates). It is decoded and
// validated once at the process boundary; the rest of the pipeline consumes
// the typed Session without re-checking shapes.
package metadata
