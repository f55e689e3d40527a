package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-formwidgets/pkg/form"
	"github.com/goliatone/go-formwidgets/pkg/formdef"
	"github.com/goliatone/go-formwidgets/pkg/openapi"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/html"
	"github.com/goliatone/go-formwidgets/pkg/renderers/tui"
)

func main() {
	defPath := flag.String("def", "", "YAML form definition path")
	docPath := flag.String("openapi", "", "OpenAPI document path")
	component := flag.String("component", "", "component schema to render (with -openapi)")
	rendererName := flag.String("renderer", "html", "renderer to use: html or tui")
	format := flag.String("format", "pretty", "tui output format: pretty, json, or form")
	title := flag.String("title", "", "form title")
	action := flag.String("action", "", "form action URL")
	output := flag.String("output", "", "output file (stdout if empty)")
	dump := flag.Bool("dump", false, "dump collected values after rendering")
	flag.Parse()

	ctx := context.Background()

	f, err := loadForm(ctx, *defPath, *docPath, *component)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	generator, err := buildGenerator(*rendererName, *format)
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}

	out, err := generator.Generate(ctx, f, *rendererName, render.Options{
		Title:  *title,
		Action: *action,
	})
	if err != nil {
		log.Fatalf("Failed to generate form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}

	if *dump {
		spew.Fdump(os.Stderr, f.Values())
	}
}

func loadForm(ctx context.Context, defPath, docPath, component string) (*form.Form, error) {
	switch {
	case defPath != "":
		data, err := os.ReadFile(defPath)
		if err != nil {
			return nil, err
		}
		return formdef.Load(data)
	case docPath != "":
		if component == "" {
			return nil, fmt.Errorf("-component is required with -openapi")
		}
		data, err := os.ReadFile(docPath)
		if err != nil {
			return nil, err
		}
		return openapi.FormFromData(ctx, data, component, openapi.Options{})
	default:
		return nil, fmt.Errorf("either -def or -openapi is required")
	}
}

func buildGenerator(rendererName, format string) (*form.Generator, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	tuiRenderer := tui.New(tui.WithOutputFormat(tui.OutputFormat(format)))

	generator := form.New(
		form.WithRenderer(htmlRenderer),
		form.WithRenderer(tuiRenderer),
		form.WithDefaultRenderer(rendererName),
	)
	return generator, nil
}
