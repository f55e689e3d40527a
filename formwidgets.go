// Package formwidgets generates input forms from annotated models. Widget
// annotations attach declarative configuration to model properties, a
// generator resolves them into an emitted tree with two-way value bindings,
// and registered renderers turn that tree into HTML or an interactive
// terminal session.
package formwidgets

import (
	"context"

	"github.com/goliatone/go-formwidgets/pkg/form"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/html"
	theme "github.com/goliatone/go-theme"
)

// Form pairs model properties with widget annotations and accessors.
type Form = form.Form

// Field is one bound form entry.
type Field = form.Field

// Generator resolves forms and dispatches them to renderers.
type Generator = form.Generator

// Option configures a Generator.
type Option = form.Option

// Options carries per-render settings such as the page title and
// server-side validation errors.
type Options = render.Options

// FromStruct builds a form from a struct pointer with default widgets per
// declared type.
func FromStruct(name string, target any) (*Form, error) {
	return form.FromStruct(name, target)
}

// New constructs a Generator with the HTML renderer pre-registered as the
// default. Additional renderers stack on via WithRenderer.
func New(options ...Option) (*Generator, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	base := []Option{
		form.WithRenderer(renderer),
		form.WithDefaultRenderer(renderer.Name()),
	}
	return form.New(append(base, options...)...), nil
}

// WithRenderer registers an additional renderer.
func WithRenderer(renderer render.Renderer) Option {
	return form.WithRenderer(renderer)
}

// WithDefaultRenderer selects the renderer used when none is named.
func WithDefaultRenderer(name string) Option {
	return form.WithDefaultRenderer(name)
}

// GenerateHTML builds a generator with a themed HTML renderer and renders
// the form in one call. It is the simplest entry point for callers that just
// want markup.
func GenerateHTML(ctx context.Context, f *Form, options Options, themeConfig *theme.RendererConfig) ([]byte, error) {
	renderer, err := html.New(html.WithTheme(themeConfig))
	if err != nil {
		return nil, err
	}
	generator := form.New(
		form.WithRenderer(renderer),
		form.WithDefaultRenderer(renderer.Name()),
	)
	return generator.Generate(ctx, f, "", options)
}
