package form

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/logging"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry replaces the renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		if registry != nil {
			g.registry = registry
		}
	}
}

// WithRenderer registers an additional renderer. Registration failures
// surface on the first Generate call.
func WithRenderer(renderer render.Renderer) Option {
	return func(g *Generator) {
		if err := g.registry.Register(renderer); err != nil && g.registerErr == nil {
			g.registerErr = err
		}
	}
}

// WithDefaultRenderer selects the renderer used when a Generate call names
// none.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// WithLogger replaces the logger handed to widget resolution.
func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator resolves forms into emitted trees and dispatches them to
// registered renderers.
type Generator struct {
	registry        *render.Registry
	logger          logging.Logger
	defaultRenderer string
	registerErr     error
}

// New constructs a Generator with an empty registry and a no-op logger.
// Callers typically register at least one renderer via WithRenderer.
func New(options ...Option) *Generator {
	generator := &Generator{
		registry: render.NewRegistry(),
		logger:   logging.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(generator)
		}
	}
	if generator.defaultRenderer == "" {
		if names := generator.registry.List(); len(names) == 1 {
			generator.defaultRenderer = names[0]
		}
	}
	return generator
}

// Registry exposes the renderer registry for direct registration.
func (g *Generator) Registry() *render.Registry {
	return g.registry
}

// Resolve runs every field's annotation and collects the emitted nodes under
// a single container. Fields whose annotation skips (type mismatch, shallow
// path, unbindable property) are left out without error; a failing or
// panicking annotation aborts with a GenerationError naming the widget and
// field.
func (g *Generator) Resolve(form *Form) (*emit.Node, error) {
	if form == nil {
		return nil, fmt.Errorf("form: form is required")
	}

	root := emit.Element("div")
	for _, field := range form.Fields {
		annotation := field.Annotation
		if annotation == nil && field.Accessor != nil {
			annotation = widgets.ForType(field.Accessor.DeclaredType())
		}
		if annotation == nil {
			g.logger.Debug("no annotation for field", "form", form.Name, "field", field.Property.Name)
			continue
		}

		node, err := resolveField(annotation, widgets.ResolveContext{
			Path:     field.Path,
			Property: field.Property,
			Accessor: field.Accessor,
			Logger:   g.logger,
		})
		if err != nil {
			return nil, render.WrapGeneration(annotation.Widget(), field.Property.Name, err)
		}
		root.Append(node)
	}
	return root, nil
}

// resolveField runs one annotation, converting a panic into an error so the
// caller wraps both failure modes the same way.
func resolveField(annotation widgets.Annotation, rc widgets.ResolveContext) (node *emit.Node, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			node = nil
			err = fmt.Errorf("annotation panicked: %v", recovered)
		}
	}()
	return annotation.Resolve(rc)
}

// Generate resolves the form and renders it with the named renderer, falling
// back to the default renderer when name is empty. Panics out of annotations
// or renderers are recovered into a GenerationError so one widget cannot take
// down the host.
func (g *Generator) Generate(ctx context.Context, form *Form, rendererName string, options render.Options) (out []byte, err error) {
	if g.registerErr != nil {
		return nil, g.registerErr
	}

	name := rendererName
	if name == "" {
		name = g.defaultRenderer
	}
	if name == "" {
		return nil, fmt.Errorf("form: no renderer named and no default configured")
	}

	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, err
	}

	root, err := g.Resolve(form)
	if err != nil {
		return nil, err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			formName := ""
			if form != nil {
				formName = form.Name
			}
			err = render.WrapGeneration("", formName, fmt.Errorf("renderer %s panicked: %v", name, recovered))
		}
	}()

	out, err = renderer.Render(ctx, root, options)
	if err != nil {
		return nil, render.WrapGeneration("", "", err)
	}
	return out, nil
}
