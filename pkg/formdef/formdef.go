// Package formdef loads declarative form definitions from YAML. A definition
// names each field's declared type and optionally a widget with option
// overrides; the result is a store-backed form ready for generation.
package formdef

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidgets/pkg/binding"
	"github.com/goliatone/go-formwidgets/pkg/form"
	"github.com/goliatone/go-formwidgets/pkg/model"
	"github.com/goliatone/go-formwidgets/pkg/widgets"
)

// Definition is the YAML document shape.
type Definition struct {
	Name   string            `yaml:"name"`
	Fields []FieldDefinition `yaml:"fields"`
}

// FieldDefinition declares one form field.
type FieldDefinition struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Label       string         `yaml:"label"`
	Description string         `yaml:"description"`
	Required    bool           `yaml:"required"`
	Widget      string         `yaml:"widget"`
	Options     map[string]any `yaml:"options"`
	Default     any            `yaml:"default"`
}

// Parse decodes a YAML definition without building the form.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("formdef: parse definition: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("formdef: definition has no name")
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("formdef: definition %q has no fields", def.Name)
	}
	return &def, nil
}

// Load parses a YAML definition and builds its store-backed form.
func Load(data []byte) (*form.Form, error) {
	def, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(def)
}

// Build turns a parsed definition into a form.
func Build(def *Definition) (*form.Form, error) {
	result := &form.Form{Name: def.Name, Store: binding.NewStore()}

	for _, fd := range def.Fields {
		field, err := buildField(result.Store, fd)
		if err != nil {
			return nil, fmt.Errorf("formdef: field %q: %w", fd.Name, err)
		}
		result.Fields = append(result.Fields, *field)
	}
	return result, nil
}

func buildField(store *binding.Store, fd FieldDefinition) (*form.Field, error) {
	if fd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	typ, err := model.ParseDeclaredType(fd.Type)
	if err != nil {
		return nil, err
	}

	annotation, err := pickWidget(fd, typ)
	if err != nil {
		return nil, err
	}

	if len(fd.Options) > 0 {
		configurable, ok := annotation.(widgets.Configurable)
		if !ok {
			return nil, fmt.Errorf("widget %s accepts no options", annotation.Widget())
		}
		names := make([]string, 0, len(fd.Options))
		for option := range fd.Options {
			names = append(names, option)
		}
		sort.Strings(names)
		for _, option := range names {
			if err := configurable.SetOption(option, fd.Options[option]); err != nil {
				return nil, err
			}
		}
	}

	accessor := store.Bind(fd.Name, typ)
	if fd.Default != nil {
		value, err := coerceValue(typ, fd.Default)
		if err != nil {
			return nil, err
		}
		if err := store.Set(fd.Name, value); err != nil {
			return nil, err
		}
	}

	return &form.Field{
		Property: model.Property{
			Name:        fd.Name,
			Type:        typ,
			Label:       fd.Label,
			Description: fd.Description,
			Required:    fd.Required,
		},
		Annotation: annotation,
		Accessor:   accessor,
	}, nil
}

func pickWidget(fd FieldDefinition, typ model.DeclaredType) (widgets.Annotation, error) {
	if fd.Widget != "" {
		return widgets.New(fd.Widget)
	}
	annotation := widgets.ForType(typ)
	if annotation == nil {
		return nil, fmt.Errorf("no default widget for type %s", typ)
	}
	return annotation, nil
}

// coerceValue converts a YAML-decoded default into the declared type.
func coerceValue(typ model.DeclaredType, value any) (any, error) {
	converted, ok := convert(typ, value)
	if !ok {
		return nil, fmt.Errorf("default %v (%T) does not fit %s", value, value, typ)
	}
	return converted, nil
}

func convert(typ model.DeclaredType, value any) (any, bool) {
	switch typ.Kind {
	case model.KindString:
		s, ok := value.(string)
		return s, ok
	case model.KindBool:
		b, ok := value.(bool)
		return b, ok
	case model.KindUint8:
		i, ok := asInt(value)
		if !ok || i < 0 || i > 255 {
			return nil, false
		}
		return uint8(i), true
	case model.KindInt:
		i, ok := asInt(value)
		if !ok {
			return nil, false
		}
		return int(i), true
	case model.KindInt64:
		i, ok := asInt(value)
		return i, ok
	case model.KindFloat32:
		f, ok := asFloat(value)
		if !ok {
			return nil, false
		}
		return float32(f), true
	case model.KindFloat64:
		return asFloat(value)
	case model.KindDecimal:
		return asDecimal(value)
	case model.KindTime:
		return asTime(value)
	default:
		return nil, false
	}
}

func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asDecimal(value any) (any, bool) {
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(v)
		return parsed, err == nil
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return nil, false
	}
}

func asTime(value any) (any, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02", "15:04"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed, true
			}
		}
	}
	return nil, false
}
