// Package breakdown explains a value by summarizing its contribution sources.
//
// Sources are split into an Ongoing and a Permanent bucket, grouped by origin
// within each bucket, and rendered as amount, condition and "Triggered by"
// lines. Dependency links resolve through the descriptor selectors and the
// ResourceV2 catalog. Links that cannot be resolved degrade to a cached
// "[MISSING:<kind>:<id>]" placeholder, except trigger links, which fail.
package breakdown
