package openapi

import (
	"fmt"
	"sort"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/form"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// FormFromSchema builds a store-backed form from an object schema. Properties
// whose type has no widget mapping (arrays, nested objects) are skipped.
func FormFromSchema(name string, schema *openapi3.Schema) (*form.Form, error) {
	if schema == nil {
		return nil, fmt.Errorf("openapi: schema is required")
	}
	if kind := schemaType(schema); kind != "object" && kind != "" {
		return nil, fmt.Errorf("openapi: component %q is %s, not an object", name, kind)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for property := range schema.Properties {
		names = append(names, property)
	}
	sort.Strings(names)

	result := &form.Form{Name: name, Store: binding.NewStore()}
	for _, property := range names {
		ref := schema.Properties[property]
		if ref == nil || ref.Value == nil {
			continue
		}

		field, err := buildField(result.Store, property, ref.Value, required[property])
		if err != nil {
			return nil, fmt.Errorf("openapi: property %q: %w", property, err)
		}
		if field != nil {
			result.Fields = append(result.Fields, *field)
		}
	}
	return result, nil
}

func buildField(store *binding.Store, name string, schema *openapi3.Schema, required bool) (*form.Field, error) {
	typ, annotation := mapProperty(schema)
	if annotation == nil {
		return nil, nil
	}
	typ.Nullable = typ.Nullable || schema.Nullable

	if override, err := applyWidgetExtensions(schema, annotation); err != nil {
		return nil, err
	} else if override != nil {
		annotation = override
	}

	accessor := store.Bind(name, typ)
	if schema.Default != nil {
		value, ok := coerceDefault(typ, schema)
		if !ok {
			return nil, fmt.Errorf("default %v does not fit %s", schema.Default, typ)
		}
		if err := store.Set(name, value); err != nil {
			return nil, err
		}
	}

	return &form.Field{
		Property: model.Property{
			Name:        name,
			Type:        typ,
			Label:       schema.Title,
			Description: schema.Description,
			Required:    required,
		},
		Annotation: annotation,
		Accessor:   accessor,
	}, nil
}

// mapProperty picks the declared type and default annotation for a property
// schema. The annotation is nil for types with no widget mapping.
func mapProperty(schema *openapi3.Schema) (model.DeclaredType, widgets.Annotation) {
	switch schemaType(schema) {
	case "string":
		return mapStringProperty(schema)
	case "boolean":
		return model.DeclaredType{Kind: model.KindBool}, widgets.NewCheckbox()
	case "integer":
		return mapIntegerProperty(schema)
	case "number":
		return mapNumberProperty(schema)
	default:
		return model.DeclaredType{}, nil
	}
}

func mapStringProperty(schema *openapi3.Schema) (model.DeclaredType, widgets.Annotation) {
	switch schema.Format {
	case "date", "date-time":
		return model.DeclaredType{Kind: model.KindTime}, widgets.NewDatePicker()
	case "time":
		return model.DeclaredType{Kind: model.KindTime}, widgets.NewTimePicker()
	case "color":
		return model.DeclaredType{Kind: model.KindString}, widgets.NewColorPicker()
	case "decimal", "currency":
		return model.DeclaredType{Kind: model.KindDecimal}, widgets.NewNumberBox()
	}

	if len(schema.Enum) > 0 {
		combo := widgets.NewComboBox()
		combo.Options = joinEnum(schema.Enum)
		return model.DeclaredType{Kind: model.KindString}, combo
	}

	box := widgets.NewTextBox()
	if schema.Format == "password" {
		box.Password = true
	}
	if schema.MaxLength != nil {
		box.MaxLength = int(*schema.MaxLength)
	}
	return model.DeclaredType{Kind: model.KindString}, box
}

func mapIntegerProperty(schema *openapi3.Schema) (model.DeclaredType, widgets.Annotation) {
	typ := model.DeclaredType{Kind: model.KindInt64}
	switch schema.Format {
	case "uint8":
		typ.Kind = model.KindUint8
	case "int32":
		typ.Kind = model.KindInt
	}

	if schema.Min != nil && schema.Max != nil {
		slider := widgets.NewSlider()
		slider.Min = int(*schema.Min)
		slider.Max = int(*schema.Max)
		return typ, slider
	}
	return typ, widgets.NewNumberBox()
}

func mapNumberProperty(schema *openapi3.Schema) (model.DeclaredType, widgets.Annotation) {
	typ := model.DeclaredType{Kind: model.KindFloat64}
	switch schema.Format {
	case "float":
		typ.Kind = model.KindFloat32
	case "decimal", "currency":
		typ.Kind = model.KindDecimal
	}
	return typ, widgets.NewNumberBox()
}

// applyWidgetExtensions honors x-widget and x-widget-options. A named widget
// replaces the mapped default; options apply to whichever annotation wins.
func applyWidgetExtensions(schema *openapi3.Schema, fallback widgets.Annotation) (widgets.Annotation, error) {
	annotation := fallback

	if raw, ok := schema.Extensions[widgetExtensionKey]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string, got %T", widgetExtensionKey, raw)
		}
		named, err := widgets.New(name)
		if err != nil {
			return nil, err
		}
		annotation = named
	}

	if raw, ok := schema.Extensions[widgetOptionsExtensionKey]; ok {
		options, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s must be a map, got %T", widgetOptionsExtensionKey, raw)
		}
		configurable, ok := annotation.(widgets.Configurable)
		if !ok {
			return nil, fmt.Errorf("widget %s accepts no options", annotation.Widget())
		}

		names := make([]string, 0, len(options))
		for option := range options {
			names = append(names, option)
		}
		sort.Strings(names)
		for _, option := range names {
			if err := configurable.SetOption(option, options[option]); err != nil {
				return nil, err
			}
		}
	}

	if annotation == fallback {
		return nil, nil
	}
	return annotation, nil
}

// coerceDefault converts a schema default (decoded from JSON) into the
// property's declared type.
func coerceDefault(typ model.DeclaredType, schema *openapi3.Schema) (any, bool) {
	value := schema.Default
	switch typ.Kind {
	case model.KindString:
		s, ok := value.(string)
		return s, ok
	case model.KindBool:
		b, ok := value.(bool)
		return b, ok
	case model.KindUint8:
		f, ok := asFloat(value)
		if !ok || f < 0 || f > 255 {
			return nil, false
		}
		return uint8(f), true
	case model.KindInt:
		f, ok := asFloat(value)
		if !ok {
			return nil, false
		}
		return int(f), true
	case model.KindInt64:
		f, ok := asFloat(value)
		if !ok {
			return nil, false
		}
		return int64(f), true
	case model.KindFloat32:
		f, ok := asFloat(value)
		if !ok {
			return nil, false
		}
		return float32(f), true
	case model.KindFloat64:
		return asFloat(value)
	case model.KindDecimal:
		switch v := value.(type) {
		case string:
			parsed, err := decimal.NewFromString(v)
			return parsed, err == nil
		default:
			f, ok := asFloat(value)
			if !ok {
				return nil, false
			}
			return decimal.NewFromFloat(f), true
		}
	case model.KindTime:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02", "15:04"} {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func joinEnum(values []any) string {
	out := ""
	for i, value := range values {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%v", value)
	}
	return out
}

func schemaType(schema *openapi3.Schema) string {
	if schema == nil || schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
