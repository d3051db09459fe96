package descriptor

import (
	"errors"
	"testing"
)

func TestFormatFallbackLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resource_one-two", "Resource One Two"},
		{"gold", "Gold"},
		{"happiness__max--value", "Happiness Max Value"},
		{"_leading-", "Leading"},
		{"already Spaced", "Already Spaced"},
		{"camelCase", "CamelCase"},
		{"", ""},
		{"__", ""},
	}
	for _, tt := range tests {
		if got := FormatFallbackLabel(tt.in); got != tt.want {
			t.Fatalf("FormatFallbackLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFallbackLabelNeverEmpty(t *testing.T) {
	if got := FallbackLabel("--"); got != "--" {
		t.Fatalf("FallbackLabel(--) = %q, want raw id", got)
	}
	if got := FallbackLabel(""); got != "Unknown" {
		t.Fatalf("FallbackLabel(\"\") = %q, want Unknown", got)
	}
}

func TestTableReturnsKnownEntries(t *testing.T) {
	gold := &Descriptor{ID: "gold", Label: "Gold", Icon: "🪙"}
	table := Build("resources", []Entry[Descriptor]{{ID: "gold", Value: gold}}, Graceful(Fallback))

	got, err := table.Get("gold")
	if err != nil {
		t.Fatalf("get gold: %v", err)
	}
	if got != gold {
		t.Fatalf("Get(gold) = %p, want %p", got, gold)
	}
	if !table.Has("gold") {
		t.Fatal("expected gold to be known")
	}
}

func TestTableFallbackIsIdempotent(t *testing.T) {
	calls := 0
	table := Build("resources", nil, Graceful(func(id string) *Descriptor {
		calls++
		return Fallback(id)
	}))

	first, err := table.Get("unknown-x")
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := table.Get("unknown-x")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if first != second {
		t.Fatal("expected identical pointer for repeated fallback lookups")
	}
	if calls != 1 {
		t.Fatalf("fallback calls = %d, want 1", calls)
	}
	if first.Label != "Unknown X" {
		t.Fatalf("label = %q, want Unknown X", first.Label)
	}
	if table.Has("unknown-x") {
		t.Fatal("fallback ids must not become known")
	}
}

func TestTableRecordOnlyListsKnownIDs(t *testing.T) {
	table := Build("buildings", []Entry[Descriptor]{
		{ID: "farm", Value: &Descriptor{ID: "farm", Label: "Farm"}},
		{ID: "mill", Value: &Descriptor{ID: "mill", Label: "Mill"}},
		{ID: "", Value: &Descriptor{Label: "Ignored"}},
		{ID: "farm", Value: &Descriptor{ID: "farm", Label: "Duplicate"}},
	}, Graceful(Fallback))

	if _, err := table.Get("tower"); err != nil {
		t.Fatalf("get tower: %v", err)
	}
	record := table.Record()
	if record.Len() != 2 {
		t.Fatalf("record len = %d, want 2", record.Len())
	}
	keys := record.Keys()
	if keys[0] != "farm" || keys[1] != "mill" {
		t.Fatalf("keys = %v", keys)
	}
	keys[0] = "mutated"
	if record.Keys()[0] != "farm" {
		t.Fatal("record keys must not be mutable through returned slice")
	}
	farm, _ := record.Get("farm")
	if farm.Label != "Farm" {
		t.Fatalf("farm label = %q, want first entry", farm.Label)
	}
	if _, ok := record.Get("tower"); ok {
		t.Fatal("fallback entry must not be enumerable")
	}
}

func TestTableStrictFallbackErrorsAreNotCached(t *testing.T) {
	calls := 0
	missing := errors.New("missing")
	table := Build("triggers", nil, func(id string) (*Descriptor, error) {
		calls++
		return nil, missing
	})
	for i := 0; i < 2; i++ {
		if _, err := table.Get("x"); !errors.Is(err, missing) {
			t.Fatalf("Get error = %v, want missing", err)
		}
	}
	if calls != 2 {
		t.Fatalf("fallback calls = %d, want 2", calls)
	}
}

func TestSharedCacheResets(t *testing.T) {
	cache := NewFallbackCache()
	resources := Build("resources", nil, Graceful(Fallback), WithCache(cache))
	stats := Build("stats", nil, Graceful(Fallback), WithCache(cache))

	a, _ := resources.Get("x")
	b, _ := stats.Get("x")
	if a == b {
		t.Fatal("domains must not share fallback entries")
	}
	if cache.Len() != 2 {
		t.Fatalf("cache len = %d, want 2", cache.Len())
	}

	cache.Reset()
	if cache.Len() != 0 {
		t.Fatalf("cache len after reset = %d", cache.Len())
	}
	again, _ := resources.Get("x")
	if again == a {
		t.Fatal("expected a fresh fallback after reset")
	}
}

func TestRecordRangeStops(t *testing.T) {
	record := NewRecord([]Entry[Descriptor]{
		{ID: "a", Value: &Descriptor{ID: "a"}},
		{ID: "b", Value: &Descriptor{ID: "b"}},
	})
	var seen []string
	record.Range(func(id string, _ *Descriptor) bool {
		seen = append(seen, id)
		return false
	})
	if len(seen) != 1 || seen[0] != "a" {
		t.Fatalf("seen = %v", seen)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "b", "c"); got != "b" {
		t.Fatalf("FirstNonEmpty = %q, want b", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("FirstNonEmpty() = %q", got)
	}
}
