package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory constructs a fresh annotation with its defaults applied.
type Factory func() Annotation

// Registry extends the built-in widget set with host-defined annotations.
// Lookup prefers built-ins so a custom factory cannot shadow them.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given widget name. Names colliding with
// a built-in widget or an earlier registration are rejected.
func (r *Registry) Register(name string, factory Factory) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("widgets: widget name is required")
	}
	if factory == nil {
		return fmt.Errorf("widgets: factory is required for %q", trimmed)
	}
	if _, err := New(trimmed); err == nil {
		return fmt.Errorf("widgets: %q is a built-in widget", trimmed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[trimmed]; exists {
		return fmt.Errorf("widgets: widget %q already registered", trimmed)
	}
	r.factories[trimmed] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New constructs the annotation for a widget name, checking built-ins first
// and registered factories second.
func (r *Registry) New(name string) (Annotation, error) {
	if annotation, err := New(name); err == nil {
		return annotation, nil
	}

	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("widgets: unknown widget %q", name)
	}
	return factory(), nil
}

// Has reports whether the name resolves to a built-in or registered widget.
func (r *Registry) Has(name string) bool {
	_, err := r.New(name)
	return err == nil
}

// Names lists the registered custom widget names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
