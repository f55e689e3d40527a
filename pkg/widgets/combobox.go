package widgets

import (
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// ComboBox annotates a string property with a dropdown selection. The
// Options string is a comma-separated choice list; it never passes through
// to the attribute map and instead expands into one option child per choice,
// split literally without trimming or deduplication.
type ComboBox struct {
	// Options is the comma-separated choice list. Default: "". An empty
	// string yields an empty choice set, not an error.
	Options string
	// NullText is the placeholder shown while nothing is selected. Default:
	// "".
	NullText string
	// AllowCustomValue accepts typed values outside the choice list.
	// Default: false.
	AllowCustomValue bool
	// ReadOnly disables editing. Default: false.
	ReadOnly bool
	// FloatLabelType controls the floating-label animation and is always
	// emitted. Default: "auto".
	FloatLabelType string
	// LabelPosition places the label relative to the input and is emitted
	// only when it differs from the default "top".
	LabelPosition string
}

// NewComboBox returns a combo box annotation with the documented defaults.
func NewComboBox() *ComboBox {
	return &ComboBox{
		FloatLabelType: "auto",
		LabelPosition:  "top",
	}
}

func (c *ComboBox) Widget() string { return WidgetComboBox }

func (c *ComboBox) Spec() attrs.Spec {
	return attrs.Spec{
		{Name: "Options", Value: c.Options, Default: "", Policy: attrs.EmitNever},
		{Name: "NullText", Value: c.NullText, Default: ""},
		{Name: "AllowCustomValue", Value: c.AllowCustomValue, Default: false},
		{Name: "ReadOnly", Value: c.ReadOnly, Default: false},
		{Name: "FloatLabelType", Value: c.FloatLabelType, Default: "auto", Policy: attrs.EmitAlways},
		{Name: "LabelPosition", Value: c.LabelPosition, Default: "top"},
	}
}

// Resolve binds the combo box to string properties, expanding the choice
// list into option children with the current selection marked.
func (c *ComboBox) Resolve(rc ResolveContext) (*emit.Node, error) {
	node, err := resolveValue(rc, WidgetComboBox, c.Spec(), []model.Kind{model.KindString})
	if err != nil || node == nil {
		return node, err
	}

	current, _ := node.Attrs[AttrValue].(string)
	for _, choice := range splitChoices(c.Options) {
		node.Append(&emit.Node{
			Kind: emit.KindElement,
			Name: "option",
			Attrs: attrs.Map{
				AttrValue:  choice,
				"Selected": choice == current,
			},
		})
	}
	return node, nil
}

// SetOption overrides one option by name.
func (c *ComboBox) SetOption(name string, value any) error {
	var err error
	switch name {
	case "Options":
		c.Options, err = optString(name, value)
	case "NullText":
		c.NullText, err = optString(name, value)
	case "AllowCustomValue":
		c.AllowCustomValue, err = optBool(name, value)
	case "ReadOnly":
		c.ReadOnly, err = optBool(name, value)
	case "FloatLabelType":
		c.FloatLabelType, err = optString(name, value)
	case "LabelPosition":
		c.LabelPosition, err = optString(name, value)
	default:
		return unknownOption(WidgetComboBox, name)
	}
	return err
}

// splitChoices splits a comma-separated option string literally: no
// trimming, no deduplication, and no empty-entry filtering beyond the empty
// input case.
func splitChoices(options string) []string {
	if options == "" {
		return nil
	}
	return strings.Split(options, ",")
}
