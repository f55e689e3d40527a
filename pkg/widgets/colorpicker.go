package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// ColorPicker annotates a string property holding a CSS color value.
type ColorPicker struct {
	// Swatches is a comma-separated list of preset colors offered next to
	// the free picker. Default: "".
	Swatches string
	// AllowEmpty keeps an explicit "no color" choice available. Default:
	// false.
	AllowEmpty bool
	// ReadOnly disables editing. Default: false.
	ReadOnly bool
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewColorPicker returns a color picker annotation with the documented
// defaults.
func NewColorPicker() *ColorPicker {
	return &ColorPicker{
		LabelPosition: "top",
	}
}

func (c *ColorPicker) Widget() string { return WidgetColorPicker }

func (c *ColorPicker) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Swatches", Value: c.Swatches, Default: ""},
		{Name: "AllowEmpty", Value: c.AllowEmpty, Default: false},
		{Name: "ReadOnly", Value: c.ReadOnly, Default: false},
		{Name: "LabelPosition", Value: c.LabelPosition, Default: "top"},
	}
}

// Resolve binds the color picker to string properties; any other declared
// type is skipped.
func (c *ColorPicker) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetColorPicker, c.Spec(), []model.Kind{model.KindString})
}

// SetOption overrides one option by name.
func (c *ColorPicker) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Swatches":
		c.Swatches, err = optString(name, value)
	case "AllowEmpty":
		c.AllowEmpty, err = optBool(name, value)
	case "ReadOnly":
		c.ReadOnly, err = optBool(name, value)
	case "LabelPosition":
		c.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetColorPicker, name)
	}
	return err
}
