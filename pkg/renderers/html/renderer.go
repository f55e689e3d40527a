// Package html renders emitted widget trees into standalone HTML forms. The
// field markup is built directly, the page chrome around it comes from a
// template engine so hosts can swap the bundled layout for their own.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/render"
	rendertemplate "github.com/goliatone/go-formwidgets/pkg/render/template"
	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
	theme "github.com/goliatone/go-theme"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	sanitizer        *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate chrome template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads chrome templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template engine for the page chrome.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies a theme configuration: tokens become widget classes and
// CSS variables become a :root style block in the page head.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithSanitizer overrides the policy applied to validation messages, which
// may carry inline markup from upstream validators.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// Renderer turns an emitted node tree into a complete HTML document.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     rendererTheme
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = messagePolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		theme:     buildThemeContext(cfg.theme),
		sanitizer: cfg.sanitizer,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the form fragment from the node tree and wraps it in the
// page chrome template.
func (r *Renderer) Render(_ context.Context, root *emit.Node, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}

	fields := newFieldRenderer(r.theme, r.sanitizer, options.Errors)
	fragment, err := fields.render(root)
	if err != nil {
		return nil, fmt.Errorf("html renderer: build fragment: %w", err)
	}

	result, err := r.templates.RenderTemplate("page", map[string]any{
		"title":        options.Title,
		"action":       options.Action,
		"method":       methodOrDefault(options.Method),
		"submit_label": submitOrDefault(options.SubmitLabel),
		"content":      fragment,
		"theme":        r.theme.Name,
		"variant":      r.theme.Variant,
		"css_vars":     r.theme.CSSVarsStyle,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page: %w", err)
	}
	return []byte(result), nil
}

// RenderFragment renders the form fields without page chrome, for embedding
// into an existing document.
func (r *Renderer) RenderFragment(root *emit.Node, options render.Options) ([]byte, error) {
	fields := newFieldRenderer(r.theme, r.sanitizer, options.Errors)
	fragment, err := fields.render(root)
	if err != nil {
		return nil, fmt.Errorf("html renderer: build fragment: %w", err)
	}
	return []byte(fragment), nil
}

func methodOrDefault(method string) string {
	if method == "" {
		return "post"
	}
	return method
}

func submitOrDefault(label string) string {
	if label == "" {
		return "Submit"
	}
	return label
}

// messagePolicy allows the inline emphasis tags validators commonly embed in
// their messages and strips everything else.
func messagePolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("strong", "em", "code")
	return policy
}
