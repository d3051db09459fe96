// Package errors provides structured, coded errors for descriptor resolution.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Trigger errors
	CodeTriggerMissingLabel Code = "TRIGGER_MISSING_LABEL"
	CodeTriggerNotFound     Code = "TRIGGER_NOT_FOUND"

	// Asset errors
	CodeRequiredAssetMissing Code = "REQUIRED_ASSET_MISSING"

	// Boundary validation errors
	CodeInvalidMetadata Code = "INVALID_METADATA"
	CodeInvalidContent  Code = "INVALID_CONTENT"
	CodeInvalidSources  Code = "INVALID_SOURCES"
)

// Authoring reports whether the code marks a content-authoring defect.
//
// Authoring defects must surface immediately; retrying a metadata lookup
// never changes the outcome.
func (c Code) Authoring() bool {
	switch c {
	case CodeTriggerMissingLabel, CodeTriggerNotFound, CodeRequiredAssetMissing:
		return true
	default:
		return false
	}
}
