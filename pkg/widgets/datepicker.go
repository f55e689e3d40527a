package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// DatePicker annotates a time property with a calendar input bound to the
// date portion of the value.
type DatePicker struct {
	// Format is the Go reference layout used to display the value.
	// Default: "2006-01-02".
	Format string
	// NullText is the placeholder shown while the value is unset. Default:
	// "".
	NullText string
	// ShowWeekNumbers displays week numbers in the calendar dropdown.
	// Default: false.
	ShowWeekNumbers bool
	// ClearButton shows an inline control that unsets the value. Default:
	// false.
	ClearButton bool
	// FloatLabelType controls the floating-label animation and is always
	// emitted. Default: "auto".
	FloatLabelType string
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewDatePicker returns a date picker annotation with the documented
// defaults.
func NewDatePicker() *DatePicker {
	return &DatePicker{
		Format:         "2006-01-02",
		FloatLabelType: "auto",
		LabelPosition:  "top",
	}
}

func (d *DatePicker) Widget() string { return WidgetDatePicker }

func (d *DatePicker) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Format", Value: d.Format, Default: "2006-01-02"},
		{Name: "NullText", Value: d.NullText, Default: ""},
		{Name: "ShowWeekNumbers", Value: d.ShowWeekNumbers, Default: false},
		{Name: "ClearButton", Value: d.ClearButton, Default: false},
		{Name: "FloatLabelType", Value: d.FloatLabelType, Default: "auto", Policy: attrs.EmitAlways},
		{Name: "LabelPosition", Value: d.LabelPosition, Default: "top"},
	}
}

// Resolve binds the date picker to time properties; any other declared type
// is skipped.
func (d *DatePicker) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetDatePicker, d.Spec(), []model.Kind{model.KindTime})
}

// SetOption overrides one option by name.
func (d *DatePicker) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Format":
		d.Format, err = optString(name, value)
	case "NullText":
		d.NullText, err = optString(name, value)
	case "ShowWeekNumbers":
		d.ShowWeekNumbers, err = optBool(name, value)
	case "ClearButton":
		d.ClearButton, err = optBool(name, value)
	case "FloatLabelType":
		d.FloatLabelType, err = optString(name, value)
	case "LabelPosition":
		d.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetDatePicker, name)
	}
	return err
}
