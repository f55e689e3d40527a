// Package form ties the pieces together: a Form pairs model properties with
// widget annotations and binding accessors, and the Generator resolves them
// into an emitted tree handed to a registered renderer.
package form

import (
	"fmt"

	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Field is one bound form entry. Annotation may be nil, in which case the
// default widget for the accessor's declared type is used. Path is optional
// traversal ancestry for walker-driven models.
type Field struct {
	Property   model.Property
	Annotation widgets.Annotation
	Accessor   binding.Accessor
	Path       binding.Path
}

// Form is an ordered collection of fields over one model. Store is set when
// the form's values live in a map-backed store rather than a Go struct.
type Form struct {
	Name   string
	Fields []Field
	Store  *binding.Store
}

// FromStruct builds a form from a struct pointer: one field per bindable
// exported struct field, each with the default annotation for its declared
// type.
func FromStruct(name string, target any) (*Form, error) {
	properties, accessors, err := binding.FromStruct(target)
	if err != nil {
		return nil, fmt.Errorf("form: build from struct: %w", err)
	}

	form := &Form{Name: name}
	for _, property := range properties {
		form.Fields = append(form.Fields, Field{
			Property:   property,
			Annotation: widgets.ForType(property.Type),
			Accessor:   accessors[property.Name],
		})
	}
	return form, nil
}

// Field returns the field with the given property name, or nil.
func (f *Form) Field(name string) *Field {
	for i := range f.Fields {
		if f.Fields[i].Property.Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}

// Values returns the current bound value per field.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.Fields))
	for _, field := range f.Fields {
		if field.Accessor != nil {
			out[field.Property.Name] = field.Accessor.Read()
		}
	}
	return out
}
