package render

import (
	"context"

	"github.com/goliatone/go-formwidgets/pkg/emit"
)

// Renderer converts a resolved widget tree into a byte representation (HTML,
// JSON, an interactive session transcript).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, root *emit.Node, options Options) ([]byte, error)
}

// Options describe per-request data renderers can use without mutating the
// resolved tree.
type Options struct {
	// Title is rendered as the form heading when non-empty.
	Title string
	// Action and Method configure the submission target for HTML output.
	Action string
	Method string
	// SubmitLabel overrides the submit control caption.
	SubmitLabel string
	// Errors surfaces server-side validation feedback keyed by property
	// name.
	Errors map[string][]string
}
