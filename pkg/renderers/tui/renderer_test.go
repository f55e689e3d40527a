package tui_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/logging"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/tui"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// fakeDriver replays scripted answers keyed by prompt message.
type fakeDriver struct {
	inputs   map[string]string
	confirms map[string]bool
	selects  map[string]int
	infos    []string
	prompts  []string
}

func (d *fakeDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	answer, ok := d.inputs[cfg.Message]
	if !ok {
		return cfg.Default, nil
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *fakeDriver) Password(ctx context.Context, cfg tui.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *fakeDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if answer, ok := d.confirms[cfg.Message]; ok {
		return answer, nil
	}
	return cfg.Default, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if index, ok := d.selects[cfg.Message]; ok {
		return index, nil
	}
	return cfg.DefaultIndex, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func resolveNode(t *testing.T, annotation widgets.Annotation, field string, accessor binding.Accessor) *emit.Node {
	t.Helper()
	node, err := annotation.Resolve(widgets.ResolveContext{
		Property: model.Property{Name: field},
		Accessor: accessor,
		Logger:   logging.Nop(),
	})
	if err != nil {
		t.Fatalf("resolve %s: %v", field, err)
	}
	if node == nil {
		t.Fatalf("resolve %s: skipped", field)
	}
	return node
}

func TestRenderWritesAnswersBack(t *testing.T) {
	title := "old title"
	views := 10
	published := false
	status := "draft"

	combo := widgets.NewComboBox()
	combo.Options = "draft,published"

	root := emit.Element("div",
		resolveNode(t, widgets.NewTextBox(), "title", binding.String(&title)),
		resolveNode(t, widgets.NewNumberBox(), "views", binding.Int(&views)),
		resolveNode(t, widgets.NewCheckbox(), "published", binding.Bool(&published)),
		resolveNode(t, combo, "status", binding.String(&status)),
	)

	driver := &fakeDriver{
		inputs:   map[string]string{"Title": "new title", "Views": "25"},
		confirms: map[string]bool{"Published": true},
		selects:  map[string]int{"Status": 1},
	}

	renderer := tui.New(tui.WithPromptDriver(driver))
	out, err := renderer.Render(context.Background(), root, render.Options{Title: "Edit Post"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if title != "new title" || views != 25 || !published || status != "published" {
		t.Fatalf("model not updated: title=%q views=%d published=%v status=%q",
			title, views, published, status)
	}
	if len(driver.infos) != 1 || driver.infos[0] != "Edit Post" {
		t.Fatalf("infos = %v", driver.infos)
	}

	summary := string(out)
	for _, want := range []string{"title: new title", "views: 25", "published: true", "status: published"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestRenderRadioGroup(t *testing.T) {
	plan := "free"
	group := widgets.NewRadioGroup()
	group.Options = "free,pro,team"
	group.Label = "Plan"

	root := resolveNode(t, group, "plan", binding.String(&plan))

	driver := &fakeDriver{selects: map[string]int{"Plan": 2}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	if _, err := renderer.Render(context.Background(), root, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if plan != "team" {
		t.Fatalf("plan = %q", plan)
	}
}

func TestRenderNullableEmptyClearsValue(t *testing.T) {
	initial := 4
	rating := &initial

	root := resolveNode(t, widgets.NewNumberBox(), "rating", binding.NullInt(&rating))

	driver := &fakeDriver{inputs: map[string]string{"Rating": ""}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	if _, err := renderer.Render(context.Background(), root, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rating != nil {
		t.Fatalf("rating should be cleared, got %v", *rating)
	}
}

func TestRenderNullableEmptyClearsString(t *testing.T) {
	initial := "old summary"
	summary := &initial

	root := resolveNode(t, widgets.NewTextBox(), "summary", binding.NullString(&summary))

	driver := &fakeDriver{inputs: map[string]string{"Summary": ""}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	if _, err := renderer.Render(context.Background(), root, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if summary != nil {
		t.Fatalf("summary should be cleared, got %q", *summary)
	}
}

func TestRenderEmptyKeepsNonNullableValue(t *testing.T) {
	views := 42
	root := resolveNode(t, widgets.NewNumberBox(), "views", binding.Int(&views))

	driver := &fakeDriver{inputs: map[string]string{"Views": ""}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	out, err := renderer.Render(context.Background(), root, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if views != 42 {
		t.Fatalf("views changed to %d", views)
	}
	if !strings.Contains(string(out), "views: 42") {
		t.Fatalf("summary:\n%s", out)
	}
}

func TestRenderRejectsBadNumber(t *testing.T) {
	views := 0
	root := resolveNode(t, widgets.NewNumberBox(), "views", binding.Int(&views))

	driver := &fakeDriver{inputs: map[string]string{"Views": "not a number"}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	if _, err := renderer.Render(context.Background(), root, render.Options{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRenderSliderEnforcesRange(t *testing.T) {
	volume := 5
	slider := widgets.NewSlider()
	slider.Max = 10
	root := resolveNode(t, slider, "volume", binding.Int(&volume))

	driver := &fakeDriver{inputs: map[string]string{"Volume": "11"}}
	renderer := tui.New(tui.WithPromptDriver(driver))

	if _, err := renderer.Render(context.Background(), root, render.Options{}); err == nil {
		t.Fatal("expected range error")
	}
	if volume != 5 {
		t.Fatalf("volume changed to %d", volume)
	}
}

func TestJSONOutput(t *testing.T) {
	name := ""
	active := false

	root := emit.Element("div",
		resolveNode(t, widgets.NewTextBox(), "name", binding.String(&name)),
		resolveNode(t, widgets.NewCheckbox(), "active", binding.Bool(&active)),
	)

	driver := &fakeDriver{
		inputs:   map[string]string{"Name": "Ada"},
		confirms: map[string]bool{"Active": true},
	}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatJSON))

	out, err := renderer.Render(context.Background(), root, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid JSON %s: %v", out, err)
	}
	if decoded["name"] != "Ada" || decoded["active"] != true {
		t.Fatalf("decoded = %v", decoded)
	}
}

func TestFormOutput(t *testing.T) {
	email := ""
	root := resolveNode(t, widgets.NewTextBox(), "email", binding.String(&email))

	driver := &fakeDriver{inputs: map[string]string{"Email": "a@b.co"}}
	renderer := tui.New(tui.WithPromptDriver(driver), tui.WithOutputFormat(tui.OutputFormatFormURLEncoded))

	out, err := renderer.Render(context.Background(), root, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "email=a%40b.co" {
		t.Fatalf("encoded = %q", out)
	}
}

func TestSubmitTransformer(t *testing.T) {
	name := ""
	root := resolveNode(t, widgets.NewTextBox(), "name", binding.String(&name))

	driver := &fakeDriver{inputs: map[string]string{"Name": "ada"}}
	renderer := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithSubmitTransformer(func(values map[string]any) (map[string]any, error) {
			values["source"] = "cli"
			return values, nil
		}),
		tui.WithOutputFormat(tui.OutputFormatJSON),
	)

	out, err := renderer.Render(context.Background(), root, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `"source": "cli"`) {
		t.Fatalf("transformed output:\n%s", out)
	}
}
