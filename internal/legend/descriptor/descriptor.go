package descriptor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Descriptor is the resolved display data for one id.
//
// Descriptors are shared between callers and must be treated as read-only.
type Descriptor struct {
	ID          string
	Label       string
	Icon        string
	Description string
}

// Entry pairs a known id with its authored descriptor.
type Entry[T any] struct {
	ID    string
	Value *T
}

var separatorRuns = regexp.MustCompile(`[_\-]+`)

// FormatFallbackLabel converts an id such as "resource_one-two" into the
// label "Resource One Two".
func FormatFallbackLabel(id string) string {
	spaced := separatorRuns.ReplaceAllString(id, " ")
	words := strings.Fields(spaced)
	if len(words) == 0 {
		return ""
	}
	// Casers carry state and are not safe to share between goroutines.
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(strings.Join(words, " "))
}

// FallbackLabel returns a non-empty label for id.
func FallbackLabel(id string) string {
	if label := FormatFallbackLabel(id); label != "" {
		return label
	}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		return trimmed
	}
	return "Unknown"
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// Fallback synthesizes a descriptor for an id that has no known entry.
func Fallback(id string) *Descriptor {
	return &Descriptor{ID: id, Label: FallbackLabel(id)}
}
