// Package widgets holds the declarative annotations that map model
// properties to concrete input components. Each annotation carries the
// configuration options of one widget kind, serializes them into an
// attribute map, and resolves into an emitted node carrying a two-way value
// binding for the property's declared type.
package widgets

import (
	"fmt"

	"github.com/goliatone/go-formwidgets/pkg/attrs"
	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/emit"
	"github.com/goliatone/go-formwidgets/pkg/logging"
	"github.com/goliatone/go-formwidgets/pkg/model"
)

// Widget identifiers used in emitted nodes and renderer lookups.
const (
	WidgetTextBox     = "textbox"
	WidgetNumberBox   = "numberbox"
	WidgetSlider      = "slider"
	WidgetDatePicker  = "datepicker"
	WidgetTimePicker  = "timepicker"
	WidgetComboBox    = "combobox"
	WidgetRadioGroup  = "radiogroup"
	WidgetRadio       = "radio"
	WidgetCheckbox    = "checkbox"
	WidgetColorPicker = "colorpicker"
)

// Binding entry names added to the attribute map by the binder.
const (
	AttrValue          = "Value"
	AttrValueChanged   = "ValueChanged"
	AttrChecked        = "Checked"
	AttrCheckedChanged = "CheckedChanged"
)

// Annotation is one widget's declarative configuration attached to a model
// property. Construction yields the documented defaults; callers may
// override any subset of options before the render pass. Resolve selects the
// typed widget instantiation for the bound property and returns the emitted
// node, or (nil, nil) when the property is skipped.
type Annotation interface {
	Widget() string
	Spec() attrs.Spec
	Resolve(rc ResolveContext) (*emit.Node, error)
}

// Configurable is implemented by annotations that accept option overrides by
// name, e.g. from YAML form definitions.
type Configurable interface {
	SetOption(name string, value any) error
}

// ResolveContext carries the collaborators one resolution needs: the
// traversal path supplied by a model walker, the property descriptor, the
// binding accessor, and a logger for skip/selection diagnostics.
type ResolveContext struct {
	Path     binding.Path
	Property model.Property
	Accessor binding.Accessor
	Logger   logging.Logger
}

// bind validates the context and returns the accessor to resolve against.
// A nil logger is a contract violation. A traversal path that is present but
// shallower than two entries skips the property without error, as does a
// property whose accessor cannot be derived.
func (rc ResolveContext) bind(widget string) (binding.Accessor, bool, error) {
	if rc.Logger == nil {
		return nil, false, fmt.Errorf("widgets: logger is required")
	}
	if rc.Path != nil && !rc.Path.Valid() {
		rc.Logger.Debug("skipping property: traversal path too shallow",
			"widget", widget, "field", rc.Property.Name, "depth", len(rc.Path))
		return nil, false, nil
	}

	if rc.Accessor != nil {
		return rc.Accessor, true, nil
	}

	if !rc.Path.Valid() {
		rc.Logger.Debug("skipping property: no accessor and no traversal path",
			"widget", widget, "field", rc.Property.Name)
		return nil, false, nil
	}

	_, accessor, err := binding.Field(rc.Path.Owner(), rc.Property.Name)
	if err != nil {
		rc.Logger.Debug("skipping property: not bindable",
			"widget", widget, "field", rc.Property.Name, "reason", err.Error())
		return nil, false, nil
	}
	return accessor, true, nil
}

// numericKinds lists the numeric domain in dispatch priority order.
var numericKinds = []model.Kind{
	model.KindUint8,
	model.KindInt,
	model.KindInt64,
	model.KindFloat32,
	model.KindFloat64,
	model.KindDecimal,
}

func kindSupported(kind model.Kind, supported []model.Kind) bool {
	for _, candidate := range supported {
		if kind == candidate {
			return true
		}
	}
	return false
}

// resolveValue is the shared terminal action for widgets bound through
// Value/ValueChanged. It checks the declared type against the widget's
// supported kinds, serializes the option table, augments the map with the
// binding entries, and emits the typed widget node. Unsupported declared
// types are logged and skipped.
func resolveValue(rc ResolveContext, widget string, spec attrs.Spec, supported []model.Kind) (*emit.Node, error) {
	accessor, ok, err := rc.bind(widget)
	if err != nil || !ok {
		return nil, err
	}

	typ := accessor.DeclaredType()
	if !kindSupported(typ.Kind, supported) {
		rc.Logger.Debug("skipping property: declared type not supported",
			"widget", widget, "field", rc.Property.Name, "type", typ.String())
		return nil, nil
	}

	attributes := spec.Serialize()
	attributes[AttrValue] = accessor.Read()
	attributes[AttrValueChanged] = accessor.Write

	rc.Logger.Debug("widget resolved",
		"widget", widget, "field", rc.Property.Name, "type", typ.String())
	node := emit.Widget(widget, rc.Property.Name, typ, attributes)
	node.Label = rc.Property.DisplayLabel()
	node.Description = rc.Property.Description
	return node, nil
}

// resolveChecked mirrors resolveValue for widgets bound through
// Checked/CheckedChanged.
func resolveChecked(rc ResolveContext, widget string, spec attrs.Spec) (*emit.Node, error) {
	accessor, ok, err := rc.bind(widget)
	if err != nil || !ok {
		return nil, err
	}

	typ := accessor.DeclaredType()
	if typ.Kind != model.KindBool {
		rc.Logger.Debug("skipping property: declared type not supported",
			"widget", widget, "field", rc.Property.Name, "type", typ.String())
		return nil, nil
	}

	checked, _ := accessor.Read().(bool)

	attributes := spec.Serialize()
	attributes[AttrChecked] = checked
	attributes[AttrCheckedChanged] = accessor.Write

	rc.Logger.Debug("widget resolved",
		"widget", widget, "field", rc.Property.Name, "type", typ.String())
	node := emit.Widget(widget, rc.Property.Name, typ, attributes)
	node.Label = rc.Property.DisplayLabel()
	node.Description = rc.Property.Description
	return node, nil
}

// New constructs the annotation for a widget identifier with its documented
// defaults. Used by loaders that name widgets textually.
func New(widget string) (Annotation, error) {
	switch widget {
	case WidgetTextBox:
		return NewTextBox(), nil
	case WidgetNumberBox:
		return NewNumberBox(), nil
	case WidgetSlider:
		return NewSlider(), nil
	case WidgetDatePicker:
		return NewDatePicker(), nil
	case WidgetTimePicker:
		return NewTimePicker(), nil
	case WidgetComboBox:
		return NewComboBox(), nil
	case WidgetRadioGroup:
		return NewRadioGroup(), nil
	case WidgetCheckbox:
		return NewCheckbox(), nil
	case WidgetColorPicker:
		return NewColorPicker(), nil
	default:
		return nil, fmt.Errorf("widgets: unknown widget %q", widget)
	}
}

// ForType returns the default annotation for a declared type, used when a
// loader has no explicit widget hint.
func ForType(typ model.DeclaredType) Annotation {
	switch {
	case typ.Kind == model.KindString:
		return NewTextBox()
	case typ.Kind == model.KindBool:
		return NewCheckbox()
	case typ.Kind == model.KindTime:
		return NewDatePicker()
	case typ.Kind.Numeric():
		return NewNumberBox()
	default:
		return nil
	}
}

func optString(name string, value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("widgets: option %q expects a string, got %T", name, value)
}

func optBool(name string, value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("widgets: option %q expects a bool, got %T", name, value)
}

func optInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("widgets: option %q expects an integer, got %T", name, value)
	}
}

func optFloat(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("widgets: option %q expects a number, got %T", name, value)
	}
}

func unknownOption(widget, name string) error {
	return fmt.Errorf("widgets: %s has no option %q", widget, name)
}
