package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
)

// Checkbox annotates a bool property. The binding uses Checked and
// CheckedChanged entries instead of Value/ValueChanged.
type Checkbox struct {
	// AllowIndeterminate enables the third, indeterminate state. Default:
	// false.
	AllowIndeterminate bool
	// ReadOnly disables toggling. Default: false.
	ReadOnly bool
	// LabelPosition places the label relative to the box and is emitted
	// only when it differs from the default "right".
	LabelPosition string
}

// NewCheckbox returns a checkbox annotation with the documented defaults.
func NewCheckbox() *Checkbox {
	return &Checkbox{
		LabelPosition: "right",
	}
}

func (c *Checkbox) Widget() string { return WidgetCheckbox }

func (c *Checkbox) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "AllowIndeterminate", Value: c.AllowIndeterminate, Default: false},
		{Name: "ReadOnly", Value: c.ReadOnly, Default: false},
		{Name: "LabelPosition", Value: c.LabelPosition, Default: "right"},
	}
}

// Resolve binds the checkbox to bool properties; any other declared type is
// skipped.
func (c *Checkbox) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveChecked(rc, WidgetCheckbox, c.Spec())
}

// SetOption overrides one option by name.
func (c *Checkbox) SetOption(name string, value any) error {
	var err error
	switch name {
	case "AllowIndeterminate":
		c.AllowIndeterminate, err = optBool(name, value)
	case "ReadOnly":
		c.ReadOnly, err = optBool(name, value)
	case "LabelPosition":
		c.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetCheckbox, name)
	}
	return err
}
