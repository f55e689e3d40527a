package form_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/form"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

type article struct {
	Title       string `form:"title,required"`
	Views       int64  `form:"views"`
	Published   bool   `form:"published"`
	PublishedAt time.Time
	Internal    string `form:"-"`
}

func TestFromStruct(t *testing.T) {
	target := &article{Title: "hello"}
	f, err := form.FromStruct("article", target)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	if len(f.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(f.Fields))
	}

	title := f.Field("title")
	if title == nil || !title.Property.Required {
		t.Fatalf("title field: %+v", title)
	}
	if title.Annotation.Widget() != widgets.WidgetTextBox {
		t.Fatalf("title widget = %s", title.Annotation.Widget())
	}
	if f.Field("views").Annotation.Widget() != widgets.WidgetNumberBox {
		t.Fatal("views should default to a number box")
	}
	if f.Field("published").Annotation.Widget() != widgets.WidgetCheckbox {
		t.Fatal("published should default to a checkbox")
	}
	if f.Field("PublishedAt").Annotation.Widget() != widgets.WidgetDatePicker {
		t.Fatal("PublishedAt should default to a date picker")
	}
	if f.Field("Internal") != nil {
		t.Fatal("excluded field should not appear")
	}

	if got := f.Values()["title"]; got != "hello" {
		t.Fatalf("Values()[title] = %v", got)
	}
}

func TestFromStructRejectsNonPointer(t *testing.T) {
	if _, err := form.FromStruct("bad", article{}); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
}

func TestResolveBuildsTree(t *testing.T) {
	target := &article{Title: "hello", Views: 3}
	f, err := form.FromStruct("article", target)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	root, err := form.New().Resolve(f)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	nodes := root.Widgets()
	if len(nodes) != 4 {
		t.Fatalf("expected 4 widget nodes, got %d", len(nodes))
	}
	if nodes[0].Field != "title" || nodes[0].Name != widgets.WidgetTextBox {
		t.Fatalf("first node %+v", nodes[0])
	}
}

func TestResolveSkipsMismatchedAnnotation(t *testing.T) {
	title := "x"
	f := &form.Form{
		Name: "article",
		Fields: []form.Field{{
			Property:   model.Property{Name: "title"},
			Annotation: widgets.NewNumberBox(),
			Accessor:   binding.String(&title),
		}},
	}

	root, err := form.New().Resolve(f)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(root.Widgets()) != 0 {
		t.Fatal("mismatched annotation should resolve to nothing")
	}
}

type stubRenderer struct {
	name   string
	output string
	fail   error
	panics bool
}

func (r *stubRenderer) Name() string        { return r.name }
func (r *stubRenderer) ContentType() string { return "text/plain" }

func (r *stubRenderer) Render(_ context.Context, root *emit.Node, _ render.Options) ([]byte, error) {
	if r.panics {
		panic("renderer exploded")
	}
	if r.fail != nil {
		return nil, r.fail
	}
	return []byte(r.output), nil
}

func TestGenerate(t *testing.T) {
	target := &article{}
	f, err := form.FromStruct("article", target)
	if err != nil {
		t.Fatalf("FromStruct: %v", err)
	}

	generator := form.New(form.WithRenderer(&stubRenderer{name: "stub", output: "rendered"}))
	out, err := generator.Generate(context.Background(), f, "", render.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(out) != "rendered" {
		t.Fatalf("output %q", out)
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	f := &form.Form{Name: "empty"}
	generator := form.New(form.WithRenderer(&stubRenderer{name: "stub"}))

	if _, err := generator.Generate(context.Background(), f, "missing", render.Options{}); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}

func TestGenerateNoDefault(t *testing.T) {
	generator := form.New(
		form.WithRenderer(&stubRenderer{name: "a"}),
		form.WithRenderer(&stubRenderer{name: "b"}),
	)
	if _, err := generator.Generate(context.Background(), &form.Form{}, "", render.Options{}); err == nil {
		t.Fatal("ambiguous default should error")
	}
}

type panickingAnnotation struct{}

func (panickingAnnotation) Widget() string   { return "faulty" }
func (panickingAnnotation) Spec() attrs.Spec { return nil }

func (panickingAnnotation) Resolve(widgets.ResolveContext) (*emit.Node, error) {
	panic("annotation exploded")
}

func TestGenerateRecoversAnnotationPanic(t *testing.T) {
	title := "x"
	f := &form.Form{
		Name: "article",
		Fields: []form.Field{{
			Property:   model.Property{Name: "title"},
			Annotation: panickingAnnotation{},
			Accessor:   binding.String(&title),
		}},
	}
	generator := form.New(form.WithRenderer(&stubRenderer{name: "stub"}))

	_, err := generator.Generate(context.Background(), f, "stub", render.Options{})
	if err == nil {
		t.Fatal("expected error from panicking annotation")
	}

	var genErr *render.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if genErr.Field != "title" || genErr.Widget != "faulty" {
		t.Fatalf("error names widget %q field %q", genErr.Widget, genErr.Field)
	}
	if !strings.Contains(err.Error(), "panicked") {
		t.Fatalf("error should mention the panic: %v", err)
	}
}

func TestGenerateRecoversPanic(t *testing.T) {
	f := &form.Form{Name: "article"}
	generator := form.New(form.WithRenderer(&stubRenderer{name: "stub", panics: true}))

	_, err := generator.Generate(context.Background(), f, "stub", render.Options{})
	if err == nil {
		t.Fatal("expected error from panicking renderer")
	}

	var genErr *render.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "panicked") {
		t.Fatalf("error %v", err)
	}
}

func TestGenerateWrapsRendererError(t *testing.T) {
	cause := errors.New("disk full")
	generator := form.New(form.WithRenderer(&stubRenderer{name: "stub", fail: cause}))

	_, err := generator.Generate(context.Background(), &form.Form{}, "stub", render.Options{})
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
	var genErr *render.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T", err)
	}
}

func TestDuplicateRendererSurfacesOnGenerate(t *testing.T) {
	generator := form.New(
		form.WithRenderer(&stubRenderer{name: "stub"}),
		form.WithRenderer(&stubRenderer{name: "stub"}),
	)
	if _, err := generator.Generate(context.Background(), &form.Form{}, "stub", render.Options{}); err == nil {
		t.Fatal("duplicate registration should surface")
	}
}
