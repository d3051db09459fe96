// Package selector provides the memoizing read API over descriptor tables.
package selector

import "github.com/louisbranch/legend/internal/legend/descriptor"

// Selector reads descriptors from one table.
//
// SelectMany and SelectRecord are built only from Select, so every accessor
// returns the same pointer for the same id.
type Selector[T any] struct {
	table *descriptor.Table[T]
}

// New creates a selector over table.
func New[T any](table *descriptor.Table[T]) *Selector[T] {
	return &Selector[T]{table: table}
}

// Domain returns the content domain of the underlying table.
func (s *Selector[T]) Domain() string {
	return s.table.Domain()
}

// Has reports whether id is a known (non-fallback) entry.
func (s *Selector[T]) Has(id string) bool {
	return s.table.Has(id)
}

// ByID returns the immutable view over known ids.
func (s *Selector[T]) ByID() descriptor.Record[T] {
	return s.table.Record()
}

// List returns the known descriptors in declaration order.
func (s *Selector[T]) List() []*T {
	record := s.table.Record()
	out := make([]*T, 0, record.Len())
	record.Range(func(_ string, value *T) bool {
		out = append(out, value)
		return true
	})
	return out
}

// Select resolves one id.
func (s *Selector[T]) Select(id string) (*T, error) {
	return s.table.Get(id)
}

// SelectMany resolves ids in order; repeated ids repeat the same pointer.
func (s *Selector[T]) SelectMany(ids []string) ([]*T, error) {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		value, err := s.Select(id)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

// SelectRecord resolves ids into an immutable record keyed by id.
func (s *Selector[T]) SelectRecord(ids []string) (descriptor.Record[T], error) {
	entries := make([]descriptor.Entry[T], 0, len(ids))
	for _, id := range ids {
		value, err := s.Select(id)
		if err != nil {
			return descriptor.Record[T]{}, err
		}
		entries = append(entries, descriptor.Entry[T]{ID: id, Value: value})
	}
	return descriptor.NewRecord(entries), nil
}
