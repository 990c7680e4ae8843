package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gosimple/slug"
)

// Registry maps extension IDs to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// ValidID reports whether id is a non-empty slug.
func ValidID(id string) bool {
	return id != "" && slug.IsSlug(id)
}

// Register adds factory under id.
func (r *Registry) Register(id string, factory Factory) error {
	if !ValidID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidExtensionID, id)
	}
	if factory == nil {
		return fmt.Errorf("extension %s: nil factory", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateExtension, id)
	}
	r.factories[id] = factory
	return nil
}

// Lookup returns the factory registered under id.
func (r *Registry) Lookup(id string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, id)
	}
	return factory, nil
}

// IDs returns all registered IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
