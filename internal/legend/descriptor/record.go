package descriptor

// Record is an immutable id -> descriptor view.
type Record[T any] struct {
	keys   []string
	values map[string]*T
}

// NewRecord builds a record from entries; later duplicates are ignored.
func NewRecord[T any](entries []Entry[T]) Record[T] {
	record := Record[T]{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]*T, len(entries)),
	}
	for _, entry := range entries {
		if _, exists := record.values[entry.ID]; exists {
			continue
		}
		record.keys = append(record.keys, entry.ID)
		record.values[entry.ID] = entry.Value
	}
	return record
}

// Get returns the descriptor for id.
func (r Record[T]) Get(id string) (*T, bool) {
	value, ok := r.values[id]
	return value, ok
}

// Len returns the number of entries.
func (r Record[T]) Len() int {
	return len(r.keys)
}

// Keys returns the ids in insertion order.
func (r Record[T]) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Range calls fn for each entry in insertion order until fn returns false.
func (r Record[T]) Range(fn func(id string, value *T) bool) {
	for _, key := range r.keys {
		if !fn(key, r.values[key]) {
			return
		}
	}
}
