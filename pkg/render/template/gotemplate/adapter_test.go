package gotemplate_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formwidgets/pkg/render/template/gotemplate"
)

func TestNewRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("Hello {{ name }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	files := fstest.MapFS{
		"page.tpl": {Data: []byte("<h1>{{ title }}</h1>")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("page", map[string]any{"title": "Settings"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "<h1>Settings</h1>" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderDetectsInlineContent(t *testing.T) {
	files := fstest.MapFS{
		"page.tpl": {Data: []byte("file")},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if out, _ := engine.Render("{{ x }}", map[string]any{"x": "inline"}); out != "inline" {
		t.Fatalf("inline render %q", out)
	}
	if out, _ := engine.Render("page", nil); out != "file" {
		t.Fatalf("file render %q", out)
	}
}

func TestRenderCopiesToWriters(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderString("ok", nil, &buf)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "ok" || buf.String() != "ok" {
		t.Fatalf("out=%q buf=%q", out, buf.String())
	}
}

func TestGlobalContext(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{}),
		gotemplate.WithGlobalData(map[string]any{"brand": "Acme"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("{{ brand }}/{{ section }}", map[string]any{"section": "forms"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Acme/forms" {
		t.Fatalf("rendered %q", out)
	}
}

func TestStructDataBehavesLikeMap(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := struct {
		Title string `json:"title"`
	}{Title: "Profile"}

	out, err := engine.RenderString("{{ title }}", data)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Profile" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("RegisterFilter: %v", err)
	}

	out, err := engine.RenderString("{{ word|shout }}", map[string]any{"word": "go"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "GO" {
		t.Fatalf("rendered %q", out)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatal("duplicate filter registration should fail")
	}
}
