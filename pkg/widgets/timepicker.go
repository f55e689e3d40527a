package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// TimePicker annotates a time property with a clock input bound to the time
// portion of the value.
type TimePicker struct {
	// Format is the Go reference layout used to display the value.
	// Default: "15:04".
	Format string
	// NullText is the placeholder shown while the value is unset. Default:
	// "".
	NullText string
	// MinuteStep is the granularity of the minute selector. Default: 1.
	MinuteStep int
	// FloatLabelType controls the floating-label animation and is always
	// emitted. Default: "auto".
	FloatLabelType string
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewTimePicker returns a time picker annotation with the documented
// defaults.
func NewTimePicker() *TimePicker {
	return &TimePicker{
		Format:         "15:04",
		MinuteStep:     1,
		FloatLabelType: "auto",
		LabelPosition:  "top",
	}
}

func (t *TimePicker) Widget() string { return WidgetTimePicker }

func (t *TimePicker) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Format", Value: t.Format, Default: "15:04"},
		{Name: "NullText", Value: t.NullText, Default: ""},
		{Name: "MinuteStep", Value: t.MinuteStep, Default: 1},
		{Name: "FloatLabelType", Value: t.FloatLabelType, Default: "auto", Policy: attrs.EmitAlways},
		{Name: "LabelPosition", Value: t.LabelPosition, Default: "top"},
	}
}

// Resolve binds the time picker to time properties; any other declared type
// is skipped.
func (t *TimePicker) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetTimePicker, t.Spec(), []model.Kind{model.KindTime})
}

// SetOption overrides one option by name.
func (t *TimePicker) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Format":
		t.Format, err = optString(name, value)
	case "NullText":
		t.NullText, err = optString(name, value)
	case "MinuteStep":
		t.MinuteStep, err = optInt(name, value)
	case "FloatLabelType":
		t.FloatLabelType, err = optString(name, value)
	case "LabelPosition":
		t.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetTimePicker, name)
	}
	return err
}
