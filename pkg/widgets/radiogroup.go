package widgets

import (
	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// RadioGroup annotates a string property with a group of mutually exclusive
// radio buttons. Options and Label never pass through to the attribute map:
// Options splits into one radio sub-widget per choice and Label becomes the
// legend of the wrapping group.
type RadioGroup struct {
	// Options is the comma-separated choice list. Default: "". An empty
	// string yields an empty group, not an error.
	Options string
	// Label is the legend text of the group container. When empty the
	// property's display label is used.
	Label string
	// Layout arranges the buttons "vertical" (default) or "horizontal".
	Layout string
	// ReadOnly disables the whole group. Default: false.
	ReadOnly bool
}

// NewRadioGroup returns a radio group annotation with the documented
// defaults.
func NewRadioGroup() *RadioGroup {
	return &RadioGroup{
		Layout: "vertical",
	}
}

func (r *RadioGroup) Widget() string { return WidgetRadioGroup }

func (r *RadioGroup) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Options", Value: r.Options, Default: "", Policy: attrs.EmitNever},
		{Name: "Label", Value: r.Label, Default: "", Policy: attrs.EmitNever},
		{Name: "Layout", Value: r.Layout, Default: "vertical"},
		{Name: "ReadOnly", Value: r.ReadOnly, Default: false},
	}
}

// Resolve binds the group to string properties and emits a fieldset wrapper
// holding a legend plus one radio sub-widget per choice. The selected flag
// of every sub-widget is recomputed from the single bound string value.
func (r *RadioGroup) Resolve(rc ResolveContext) (*emit.Node, error) {
	accessor, ok, err := rc.bind(WidgetRadioGroup)
	if err != nil || !ok {
		return nil, err
	}

	typ := accessor.DeclaredType()
	if typ.Kind != model.KindString {
		rc.Logger.Debug("skipping property: declared type not supported",
			"widget", WidgetRadioGroup, "field", rc.Property.Name, "type", typ.String())
		return nil, nil
	}

	legend := r.Label
	if legend == "" {
		legend = rc.Property.DisplayLabel()
	}

	group := emit.Element("fieldset", emit.Element("legend", emit.Text(legend)))
	group.Field = rc.Property.Name
	group.Label = legend
	group.Description = rc.Property.Description
	group.Attrs = r.Spec().Serialize()

	current, _ := accessor.Read().(string)
	for _, choice := range splitChoices(r.Options) {
		choice := choice
		radio := emit.Widget(WidgetRadio, rc.Property.Name, typ, attrs.Map{
			AttrValue:   choice,
			AttrChecked: choice == current,
			AttrCheckedChanged: func(value any) error {
				if checked, _ := value.(bool); checked {
					return accessor.Write(choice)
				}
				return nil
			},
		})
		group.Append(radio)
	}

	rc.Logger.Debug("widget resolved",
		"widget", WidgetRadioGroup, "field", rc.Property.Name, "type", typ.String(),
		"choices", len(group.Children)-1)
	return group, nil
}

// SetOption overrides one option by name.
func (r *RadioGroup) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Options":
		r.Options, err = optString(name, value)
	case "Label":
		r.Label, err = optString(name, value)
	case "Layout":
		r.Layout, err = optString(name, value)
	case "ReadOnly":
		r.ReadOnly, err = optBool(name, value)
	default:
		return unknownOption(WidgetRadioGroup, name)
	}
	return err
}
