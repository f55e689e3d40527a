// Package openapi builds forms from OpenAPI 3 component schemas. Each object
// schema becomes a store-backed form: properties map onto declared types and
// default widget annotations, with x-widget extensions overriding the choice.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formwidgets/pkg/form"
)

// Extension keys recognised on property schemas.
const (
	widgetExtensionKey        = "x-widget"
	widgetOptionsExtensionKey = "x-widget-options"
)

// Options tunes document loading.
type Options struct {
	// ResolveReferences validates the document and resolves $ref targets
	// before reading component schemas.
	ResolveReferences bool
}

// Load parses an OpenAPI document from raw YAML or JSON.
func Load(ctx context.Context, data []byte, options Options) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: options.ResolveReferences,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	if options.ResolveReferences {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate document: %w", err)
		}
	}
	return doc, nil
}

// FormFromData loads the document and builds the form for one component
// schema in a single call.
func FormFromData(ctx context.Context, data []byte, component string, options Options) (*form.Form, error) {
	doc, err := Load(ctx, data, options)
	if err != nil {
		return nil, err
	}
	return FormFromComponent(doc, component)
}

// FormFromComponent builds a store-backed form from the named component
// schema, which must describe an object.
func FormFromComponent(doc *openapi3.T, component string) (*form.Form, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no component schemas")
	}

	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", component)
	}
	return FormFromSchema(component, ref.Value)
}

// Components lists the object component schemas a document offers, sorted by
// name.
func Components(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil {
		return nil
	}
	var names []string
	for name, ref := range doc.Components.Schemas {
		if ref != nil && ref.Value != nil && schemaType(ref.Value) == "object" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
