package registry

import (
	"fmt"
	"strings"
	"sync"
)

// Keyed is implemented by every definition type.
type Keyed interface {
	DefinitionID() string
}

// Registry is an insertion-ordered id -> definition map.
type Registry[T Keyed] struct {
	mu      sync.RWMutex
	name    string
	order   []string
	entries map[string]T
}

// New creates an empty registry.
func New[T Keyed](name string) *Registry[T] {
	return &Registry[T]{
		name:    name,
		entries: make(map[string]T),
	}
}

// Name returns the registry name.
func (r *Registry[T]) Name() string {
	return r.name
}

// Register adds a definition.
// Panics if the id is blank or already registered.
func (r *Registry[T]) Register(def T) {
	if err := r.Add(def); err != nil {
		panic(err.Error())
	}
}

// Add adds a definition, reporting blank or duplicate ids as errors.
func (r *Registry[T]) Add(def T) error {
	id := strings.TrimSpace(def.DefinitionID())
	if id == "" {
		return fmt.Errorf("%s definition id is required", r.name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("%s definition %s already registered", r.name, id)
	}
	r.order = append(r.order, id)
	r.entries[id] = def
	return nil
}

// Get returns the definition for id.
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.entries[id]
	return def, ok
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Keys returns registered ids in registration order.
func (r *Registry[T]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// List returns definitions in registration order.
func (r *Registry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id])
	}
	return out
}

// Len returns the number of definitions.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Registries groups the content registries of one game.
type Registries struct {
	Resources    *Registry[ResourceDefinition]
	Populations  *Registry[Definition]
	Buildings    *Registry[Definition]
	Developments *Registry[Definition]
	Actions      *Registry[Definition]
	Stats        *Registry[Definition]
	Phases       *Registry[PhaseDefinition]
	Triggers     *Registry[TriggerDefinition]
}

// NewRegistries creates empty registries for every domain.
func NewRegistries() *Registries {
	return &Registries{
		Resources:    New[ResourceDefinition]("resource"),
		Populations:  New[Definition]("population"),
		Buildings:    New[Definition]("building"),
		Developments: New[Definition]("development"),
		Actions:      New[Definition]("action"),
		Stats:        New[Definition]("stat"),
		Phases:       New[PhaseDefinition]("phase"),
		Triggers:     New[TriggerDefinition]("trigger"),
	}
}
