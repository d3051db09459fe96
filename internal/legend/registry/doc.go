// Package registry holds canonical content definitions keyed by id.
//
// Registries are the authoritative source of game content (resources,
// populations, buildings, developments, actions, stats, phases and triggers).
// They are populated once, usually from the content store, and read by the
// descriptor factories. Iteration follows registration order so descriptor
// tables inherit a stable declaration order.
package registry
