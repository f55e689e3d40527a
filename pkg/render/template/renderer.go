// Package template defines the engine seam HTML renderers compose their page
// chrome through. The contract mirrors the github.com/goliatone/go-template
// engine so adapters for it drop in without translation.
package template

import (
	"io"
)

// TemplateRenderer renders named templates, ad-hoc template strings, and
// manages engine-wide filters and globals.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
