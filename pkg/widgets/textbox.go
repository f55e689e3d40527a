package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// TextBox annotates a string property with a single-line text input.
type TextBox struct {
	// NullText is the placeholder shown while the value is empty. Default:
	// "".
	NullText string
	// Password masks typed characters. Default: false.
	Password bool
	// ClearButton shows an inline control that empties the value. Default:
	// false.
	ClearButton bool
	// ReadOnly disables editing. Default: false.
	ReadOnly bool
	// MaxLength caps the accepted input length; zero means unlimited.
	MaxLength int
	// FloatLabelType controls the floating-label animation and is always
	// emitted. Default: "auto".
	FloatLabelType string
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
	// CSSClass adds extra classes to the rendered control. Default: "".
	CSSClass string
}

// NewTextBox returns a text box annotation with the documented defaults.
func NewTextBox() *TextBox {
	return &TextBox{
		FloatLabelType: "auto",
		LabelPosition:  "top",
	}
}

func (t *TextBox) Widget() string { return WidgetTextBox }

func (t *TextBox) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "NullText", Value: t.NullText, Default: ""},
		{Name: "Password", Value: t.Password, Default: false},
		{Name: "ClearButton", Value: t.ClearButton, Default: false},
		{Name: "ReadOnly", Value: t.ReadOnly, Default: false},
		{Name: "MaxLength", Value: t.MaxLength, Default: 0},
		{Name: "FloatLabelType", Value: t.FloatLabelType, Default: "auto", Policy: attrs.EmitAlways},
		{Name: "LabelPosition", Value: t.LabelPosition, Default: "top"},
		{Name: "CSSClass", Value: t.CSSClass, Default: ""},
	}
}

// Resolve binds the text box to string properties; any other declared type
// is skipped.
func (t *TextBox) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetTextBox, t.Spec(), []model.Kind{model.KindString})
}

// SetOption overrides one option by name.
func (t *TextBox) SetOption(name string, value any) error {
	var err error
	switch name {
	case "NullText":
		t.NullText, err = optString(name, value)
	case "Password":
		t.Password, err = optBool(name, value)
	case "ClearButton":
		t.ClearButton, err = optBool(name, value)
	case "ReadOnly":
		t.ReadOnly, err = optBool(name, value)
	case "MaxLength":
		t.MaxLength, err = optInt(name, value)
	case "FloatLabelType":
		t.FloatLabelType, err = optString(name, value)
	case "LabelPosition":
		t.LabelPosition, err = optString(name, value)
	case "CSSClass":
		t.CSSClass, err = optString(name, value)
	default:
		return unknownOption(WidgetTextBox, name)
	}
	return err
}
