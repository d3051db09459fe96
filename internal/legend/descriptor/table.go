package descriptor

import "fmt"

// FallbackFunc synthesizes a descriptor for an unknown id. Returning an error
// marks the id as unresolvable; errors are never cached.
type FallbackFunc[T any] func(id string) (*T, error)

// Graceful adapts a fallback that always succeeds.
func Graceful[T any](fn func(id string) *T) FallbackFunc[T] {
	return func(id string) (*T, error) {
		return fn(id), nil
	}
}

// Option configures table construction.
type Option func(*tableOptions)

type tableOptions struct {
	cache *FallbackCache
}

// WithCache shares a fallback cache between tables.
func WithCache(cache *FallbackCache) Option {
	return func(o *tableOptions) {
		o.cache = cache
	}
}

// Table resolves ids of one domain.
type Table[T any] struct {
	domain   string
	known    Record[T]
	fallback FallbackFunc[T]
	cache    *FallbackCache
}

// Build creates a table from the known entries and a fallback factory.
//
// Entries with an empty id or nil value are skipped. The first entry wins when
// an id repeats.
func Build[T any](domain string, entries []Entry[T], fallback FallbackFunc[T], opts ...Option) *Table[T] {
	options := tableOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.cache == nil {
		options.cache = NewFallbackCache()
	}
	if fallback == nil {
		panic(fmt.Sprintf("descriptor table %s requires a fallback", domain))
	}
	filtered := make([]Entry[T], 0, len(entries))
	for _, entry := range entries {
		if entry.ID == "" || entry.Value == nil {
			continue
		}
		filtered = append(filtered, entry)
	}
	return &Table[T]{
		domain:   domain,
		known:    NewRecord(filtered),
		fallback: fallback,
		cache:    options.cache,
	}
}

// Domain returns the content domain name of the table.
func (t *Table[T]) Domain() string {
	return t.domain
}

// Has reports whether id is a known (non-fallback) entry.
func (t *Table[T]) Has(id string) bool {
	_, ok := t.known.Get(id)
	return ok
}

// Get resolves id, invoking the fallback at most once per id.
func (t *Table[T]) Get(id string) (*T, error) {
	if value, ok := t.known.Get(id); ok {
		return value, nil
	}
	value, err := t.cache.load(cacheKey{domain: t.domain, id: id}, func() (any, error) {
		return t.fallback(id)
	})
	if err != nil {
		return nil, err
	}
	typed, ok := value.(*T)
	if !ok {
		return nil, fmt.Errorf("descriptor table %s: cached fallback for %q has type %T", t.domain, id, value)
	}
	return typed, nil
}

// Record returns the immutable view over known ids only.
func (t *Table[T]) Record() Record[T] {
	return t.known
}

// Known returns the known ids in declaration order.
func (t *Table[T]) Known() []string {
	return t.known.Keys()
}
