// Package factory adapts canonical content definitions and session overrides
// into descriptor tables, one per content domain.
//
// Each factory applies its domain's label priority. Most domains degrade
// gracefully to a synthesized fallback for unknown ids; triggers are strict
// because trigger text is hand-authored and a missing entry is a content bug.
// Singleton assets are the only descriptors a consumer may require.
package factory
