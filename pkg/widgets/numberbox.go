package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
)

// NumberBox annotates a numeric property with a spin-edit input. It binds to
// every numeric declared type (uint8, int, int64, float32, float64, decimal)
// and their nullable variants; each is a distinct instantiation.
type NumberBox struct {
	// NullText is the placeholder shown while the value is empty. Default:
	// "".
	NullText string
	// ShowSpinButtons toggles the increment/decrement controls. Default:
	// true, so the option serializes only when turned off.
	ShowSpinButtons bool
	// Increment is the step applied by the spin buttons. Default: 1.
	Increment float64
	// DisplayFormat formats the value for display, e.g. "0.00". Default:
	// "".
	DisplayFormat string
	// ReadOnly disables editing. Default: false.
	ReadOnly bool
	// FloatLabelType controls the floating-label animation and is always
	// emitted. Default: "auto".
	FloatLabelType string
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewNumberBox returns a number box annotation with the documented defaults.
func NewNumberBox() *NumberBox {
	return &NumberBox{
		ShowSpinButtons: true,
		Increment:       1,
		FloatLabelType:  "auto",
		LabelPosition:   "top",
	}
}

func (n *NumberBox) Widget() string { return WidgetNumberBox }

func (n *NumberBox) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "NullText", Value: n.NullText, Default: ""},
		{Name: "ShowSpinButtons", Value: n.ShowSpinButtons, Default: true},
		{Name: "Increment", Value: n.Increment, Default: float64(1)},
		{Name: "DisplayFormat", Value: n.DisplayFormat, Default: ""},
		{Name: "ReadOnly", Value: n.ReadOnly, Default: false},
		{Name: "FloatLabelType", Value: n.FloatLabelType, Default: "auto", Policy: attrs.EmitAlways},
		{Name: "LabelPosition", Value: n.LabelPosition, Default: "top"},
	}
}

// Resolve binds the number box to numeric properties; any other declared
// type is skipped.
func (n *NumberBox) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetNumberBox, n.Spec(), numericKinds)
}

// SetOption overrides one option by name.
func (n *NumberBox) SetOption(name string, value any) error {
	var err error
	switch name {
	case "NullText":
		n.NullText, err = optString(name, value)
	case "ShowSpinButtons":
		n.ShowSpinButtons, err = optBool(name, value)
	case "Increment":
		n.Increment, err = optFloat(name, value)
	case "DisplayFormat":
		n.DisplayFormat, err = optString(name, value)
	case "ReadOnly":
		n.ReadOnly, err = optBool(name, value)
	case "FloatLabelType":
		n.FloatLabelType, err = optString(name, value)
	case "LabelPosition":
		n.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetNumberBox, name)
	}
	return err
}
