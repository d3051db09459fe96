// Package descriptor resolves identifiers into display descriptors.
//
// A Table is built once from the known entries of one content domain plus a
// fallback factory. Known ids resolve to their authored descriptor; any other
// id is synthesized by the fallback on first use and cached, so repeated
// lookups observe the same pointer. Fallback entries live in a FallbackCache
// that a provider may share across every table of a session and reset when
// the session ends.
package descriptor
