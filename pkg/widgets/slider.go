package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
)

// Slider annotates a numeric property with a track-bar input. Like the
// number box it binds to the full numeric domain, nullable variants
// included.
type Slider struct {
	// Min is the lower bound of the track. Default: 0.
	Min int
	// Max is the upper bound of the track. Default: 100.
	Max int
	// Step is the smallest movement along the track. Default: 1.
	Step int
	// ShowTicks draws tick marks along the track. Default: false.
	ShowTicks bool
	// TickFrequency is the distance between tick marks. Default: 10.
	TickFrequency int
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewSlider returns a slider annotation with the documented defaults.
func NewSlider() *Slider {
	return &Slider{
		Max:           100,
		Step:          1,
		TickFrequency: 10,
		LabelPosition: "top",
	}
}

func (s *Slider) Widget() string { return WidgetSlider }

func (s *Slider) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Min", Value: s.Min, Default: 0},
		{Name: "Max", Value: s.Max, Default: 100},
		{Name: "Step", Value: s.Step, Default: 1},
		{Name: "ShowTicks", Value: s.ShowTicks, Default: false},
		{Name: "TickFrequency", Value: s.TickFrequency, Default: 10},
		{Name: "LabelPosition", Value: s.LabelPosition, Default: "top"},
	}
}

// Resolve binds the slider to numeric properties; any other declared type is
// skipped.
func (s *Slider) Resolve(rc ResolveContext) (*emit.Node, error) {
	return resolveValue(rc, WidgetSlider, s.Spec(), numericKinds)
}

// SetOption overrides one option by name.
func (s *Slider) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Min":
		s.Min, err = optInt(name, value)
	case "Max":
		s.Max, err = optInt(name, value)
	case "Step":
		s.Step, err = optInt(name, value)
	case "ShowTicks":
		s.ShowTicks, err = optBool(name, value)
	case "TickFrequency":
		s.TickFrequency, err = optInt(name, value)
	case "LabelPosition":
		s.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetSlider, name)
	}
	return err
}
