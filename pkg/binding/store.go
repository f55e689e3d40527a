package binding

import (
	"fmt"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

// Store is a map-backed value container for forms whose model is not a Go
// struct, such as definitions loaded from YAML or OpenAPI documents. Each
// bound name carries a declared type; accessors read and write the shared
// value map. Stores follow the single-threaded render contract and carry no
// locking.
type Store struct {
	values map[string]any
	types  map[string]model.DeclaredType
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
		types:  make(map[string]model.DeclaredType),
	}
}

// Bind registers name with the declared type and returns its accessor.
// Rebinding an existing name replaces its type but keeps the current value.
func (s *Store) Bind(name string, typ model.DeclaredType) Accessor {
	s.types[name] = typ
	return storeAccessor{store: s, name: name, typ: typ}
}

// Set writes a value through the bound accessor semantics.
func (s *Store) Set(name string, value any) error {
	typ, ok := s.types[name]
	if !ok {
		return fmt.Errorf("binding: name %q is not bound", name)
	}
	if err := assignable(typ, value); err != nil {
		return err
	}
	s.values[name] = value
	return nil
}

// Get returns the current value for name, or the declared type's zero value
// when unset.
func (s *Store) Get(name string) any {
	if value, ok := s.values[name]; ok {
		return value
	}
	if typ, ok := s.types[name]; ok {
		return typ.Zero()
	}
	return nil
}

// Values returns a copy of the current value map. Unset bound names are
// omitted.
func (s *Store) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

type storeAccessor struct {
	store *Store
	name  string
	typ   model.DeclaredType
}

func (a storeAccessor) DeclaredType() model.DeclaredType { return a.typ }

func (a storeAccessor) Read() any {
	if a.store == nil {
		return a.typ.Zero()
	}
	if value, ok := a.store.values[a.name]; ok {
		return value
	}
	return a.typ.Zero()
}

func (a storeAccessor) Write(value any) error {
	if err := assignable(a.typ, value); err != nil {
		return err
	}
	if a.store == nil {
		return nil
	}
	if value == nil {
		delete(a.store.values, a.name)
		return nil
	}
	a.store.values[a.name] = value
	return nil
}
