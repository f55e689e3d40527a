package widgets_test

import (
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

type markdownEditor struct {
	widgets.TextBox
}

func (m *markdownEditor) Widget() string { return "markdown" }

func newMarkdownEditor() widgets.Annotation {
	return &markdownEditor{TextBox: *widgets.NewTextBox()}
}

func TestRegistryCustomWidget(t *testing.T) {
	registry := widgets.NewRegistry()
	if err := registry.Register("markdown", newMarkdownEditor); err != nil {
		t.Fatalf("Register: %v", err)
	}

	annotation, err := registry.New("markdown")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if annotation.Widget() != "markdown" {
		t.Fatalf("widget = %s", annotation.Widget())
	}
	if !registry.Has("markdown") {
		t.Fatal("Has should report registered widget")
	}
	if got := registry.Names(); len(got) != 1 || got[0] != "markdown" {
		t.Fatalf("Names = %v", got)
	}
}

func TestRegistryFallsBackToBuiltins(t *testing.T) {
	registry := widgets.NewRegistry()

	annotation, err := registry.New(widgets.WidgetSlider)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := annotation.(*widgets.Slider); !ok {
		t.Fatalf("expected slider, got %T", annotation)
	}
}

func TestRegistryRejections(t *testing.T) {
	registry := widgets.NewRegistry()

	if err := registry.Register("", newMarkdownEditor); err == nil {
		t.Fatal("empty name should be rejected")
	}
	if err := registry.Register("markdown", nil); err == nil {
		t.Fatal("nil factory should be rejected")
	}
	if err := registry.Register(widgets.WidgetTextBox, newMarkdownEditor); err == nil {
		t.Fatal("builtin collision should be rejected")
	}

	if err := registry.Register("markdown", newMarkdownEditor); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register("markdown", newMarkdownEditor); err == nil {
		t.Fatal("duplicate should be rejected")
	}

	if _, err := registry.New("gadget"); err == nil {
		t.Fatal("unknown widget should error")
	}
	if registry.Has("gadget") {
		t.Fatal("Has should be false for unknown widget")
	}
}
