// Package tui renders an emitted widget tree as an interactive terminal
// session: one prompt per widget, answers written back through the widget's
// binding closures, and the collected values serialized for submission.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Renderer drives a prompt per widget node and serializes the answers.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the TUI renderer. Without options it prompts on the real
// terminal and emits a pretty-text summary.
func New(options ...Option) *Renderer {
	renderer := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatPrettyText,
	}
	for _, opt := range options {
		if opt != nil {
			opt(renderer)
		}
	}
	return renderer
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatJSON:
		return "application/json"
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render walks the widget tree, prompting for each field and writing every
// answer back onto the bound model before serializing the session.
func (r *Renderer) Render(ctx context.Context, root *emit.Node, options render.Options) ([]byte, error) {
	if root == nil {
		return r.serialize(nil, nil)
	}

	if options.Title != "" {
		if err := r.driver.Info(ctx, options.Title); err != nil {
			return nil, err
		}
	}

	session := &session{
		driver: r.driver,
		errors: options.Errors,
		values: make(map[string]any),
	}
	if err := session.walk(ctx, root); err != nil {
		return nil, err
	}

	values := session.values
	if r.submitTransformer != nil {
		transformed, err := r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: transform values: %w", err)
		}
		values = transformed
	}
	return r.serialize(session.order, values)
}

func (r *Renderer) serialize(order []string, values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatJSON:
		if values == nil {
			values = map[string]any{}
		}
		return json.MarshalIndent(values, "", "  ")
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for _, field := range order {
			if value, ok := values[field]; ok && value != nil {
				encoded.Set(field, fmt.Sprintf("%v", value))
			}
		}
		return []byte(encoded.Encode()), nil
	default:
		var builder strings.Builder
		for _, field := range order {
			value, ok := values[field]
			if !ok {
				continue
			}
			builder.WriteString(field)
			builder.WriteString(": ")
			if value == nil {
				builder.WriteString("(unset)")
			} else {
				fmt.Fprintf(&builder, "%v", value)
			}
			builder.WriteByte('\n')
		}
		return []byte(builder.String()), nil
	}
}

// session accumulates answers across the walk over one tree.
type session struct {
	driver PromptDriver
	errors map[string][]string
	order  []string
	values map[string]any
}

func (s *session) walk(ctx context.Context, node *emit.Node) error {
	switch node.Kind {
	case emit.KindWidget:
		return s.prompt(ctx, node)
	case emit.KindElement:
		if node.Name == "fieldset" && node.Field != "" {
			return s.promptRadioGroup(ctx, node)
		}
		for _, child := range node.Children {
			if err := s.walk(ctx, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (s *session) record(field string, value any) {
	if _, ok := s.values[field]; !ok {
		s.order = append(s.order, field)
	}
	s.values[field] = value
}

// fieldHelp surfaces prior validation messages as prompt help text.
func (s *session) fieldHelp(field string) string {
	messages := s.errors[field]
	if len(messages) == 0 {
		return ""
	}
	return strings.Join(messages, "; ")
}

func (s *session) prompt(ctx context.Context, node *emit.Node) error {
	switch node.Name {
	case widgets.WidgetCheckbox:
		return s.promptCheckbox(ctx, node)
	case widgets.WidgetComboBox:
		return s.promptComboBox(ctx, node)
	default:
		return s.promptScalar(ctx, node)
	}
}

func (s *session) promptCheckbox(ctx context.Context, node *emit.Node) error {
	answer, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: promptMessage(node),
		Default: node.BoolAttr(widgets.AttrChecked),
		Help:    s.fieldHelp(node.Field),
	})
	if err != nil {
		return err
	}
	if err := writeChecked(node, answer); err != nil {
		return fmt.Errorf("tui: write %s: %w", node.Field, err)
	}
	s.record(node.Field, answer)
	return nil
}

func (s *session) promptComboBox(ctx context.Context, node *emit.Node) error {
	var choices []string
	defaultIndex := -1
	for _, child := range node.Children {
		if child.Name != "option" {
			continue
		}
		if child.BoolAttr("Selected") {
			defaultIndex = len(choices)
		}
		choices = append(choices, child.StringAttr(widgets.AttrValue))
	}

	if node.BoolAttr("AllowCustomValue") || len(choices) == 0 {
		return s.promptScalar(ctx, node)
	}

	index, err := s.driver.Select(ctx, SelectConfig{
		Message:      promptMessage(node),
		Options:      choices,
		DefaultIndex: defaultIndex,
		Help:         s.fieldHelp(node.Field),
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(choices) {
		return fmt.Errorf("tui: selection out of range for %s", node.Field)
	}

	if err := writeValue(node, choices[index]); err != nil {
		return fmt.Errorf("tui: write %s: %w", node.Field, err)
	}
	s.record(node.Field, choices[index])
	return nil
}

func (s *session) promptRadioGroup(ctx context.Context, node *emit.Node) error {
	var radios []*emit.Node
	var choices []string
	defaultIndex := -1
	for _, child := range node.Children {
		if child.Kind != emit.KindWidget || child.Name != widgets.WidgetRadio {
			continue
		}
		if child.BoolAttr(widgets.AttrChecked) {
			defaultIndex = len(radios)
		}
		radios = append(radios, child)
		choices = append(choices, child.StringAttr(widgets.AttrValue))
	}
	if len(radios) == 0 {
		return nil
	}

	index, err := s.driver.Select(ctx, SelectConfig{
		Message:      groupMessage(node),
		Options:      choices,
		DefaultIndex: defaultIndex,
		Help:         s.fieldHelp(node.Field),
	})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(radios) {
		return fmt.Errorf("tui: selection out of range for %s", node.Field)
	}

	if err := writeChecked(radios[index], true); err != nil {
		return fmt.Errorf("tui: write %s: %w", node.Field, err)
	}
	s.record(node.Field, choices[index])
	return nil
}

func (s *session) promptScalar(ctx context.Context, node *emit.Node) error {
	cfg := InputConfig{
		Message:     promptMessage(node),
		Default:     displayValue(node),
		Placeholder: node.StringAttr("NullText"),
		Help:        s.fieldHelp(node.Field),
		Validator:   parseValidator(node),
	}

	ask := s.driver.Input
	if node.BoolAttr("Password") {
		cfg.Default = ""
		ask = s.driver.Password
	}

	raw, err := ask(ctx, cfg)
	if err != nil {
		return err
	}

	value, skip, err := parseScalar(node, raw)
	if err != nil {
		return fmt.Errorf("tui: parse %s: %w", node.Field, err)
	}
	if skip {
		s.record(node.Field, node.Attr(widgets.AttrValue))
		return nil
	}

	if err := writeValue(node, value); err != nil {
		return fmt.Errorf("tui: write %s: %w", node.Field, err)
	}
	s.record(node.Field, value)
	return nil
}

func writeValue(node *emit.Node, value any) error {
	write, ok := node.Attr(widgets.AttrValueChanged).(func(any) error)
	if !ok {
		return fmt.Errorf("node has no value binding")
	}
	return write(value)
}

func writeChecked(node *emit.Node, checked bool) error {
	write, ok := node.Attr(widgets.AttrCheckedChanged).(func(any) error)
	if !ok {
		return fmt.Errorf("node has no checked binding")
	}
	return write(checked)
}
