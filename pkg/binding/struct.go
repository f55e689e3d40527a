package binding

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// FromStruct walks the exported fields of a struct and produces a property
// plus accessor for every field whose Go type maps onto the declared-type
// set. Fields of any other type are skipped. The argument must be a non-nil
// pointer to a struct so the accessors can write edits back.
//
// The `form` struct tag renames a property (`form:"author_email"`), marks it
// required (`form:"email,required"`), or excludes it (`form:"-"`).
func FromStruct(target any) ([]model.Property, map[string]Accessor, error) {
	value := reflect.ValueOf(target)
	if !value.IsValid() || value.Kind() != reflect.Ptr || value.IsNil() {
		return nil, nil, fmt.Errorf("binding: target must be a non-nil struct pointer, got %T", target)
	}
	elem := value.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("binding: target must point to a struct, got %T", target)
	}

	structType := elem.Type()
	var properties []model.Property
	accessors := make(map[string]Accessor)

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name, required, skip := parseFormTag(field)
		if skip {
			continue
		}

		typ, ok := declaredTypeOf(field.Type)
		if !ok {
			continue
		}

		properties = append(properties, model.Property{
			Name:     name,
			Type:     typ,
			Required: required,
		})
		accessors[name] = fieldAccessor{typ: typ, field: elem.Field(i)}
	}

	return properties, accessors, nil
}

// Field builds the property and accessor for a single struct field,
// mirroring the (parent object, property descriptor) pair a model walker
// hands to the binder. The name may be the Go field name or its form tag.
func Field(owner any, name string) (model.Property, Accessor, error) {
	properties, accessors, err := FromStruct(owner)
	if err != nil {
		return model.Property{}, nil, err
	}

	for _, prop := range properties {
		if prop.Name == name {
			return prop, accessors[name], nil
		}
	}

	value := reflect.ValueOf(owner).Elem()
	if field, ok := value.Type().FieldByName(name); ok {
		tagged, required, skip := parseFormTag(field)
		if typ, supported := declaredTypeOf(field.Type); supported && !skip {
			prop := model.Property{Name: tagged, Type: typ, Required: required}
			return prop, fieldAccessor{typ: typ, field: value.FieldByIndex(field.Index)}, nil
		}
	}

	return model.Property{}, nil, fmt.Errorf("binding: no bindable field %q on %T", name, owner)
}

func parseFormTag(field reflect.StructField) (name string, required, skip bool) {
	name = field.Name

	tag, ok := field.Tag.Lookup("form")
	if !ok {
		return name, false, false
	}
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	if trimmed := strings.TrimSpace(parts[0]); trimmed != "" {
		name = trimmed
	}
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == "required" {
			required = true
		}
	}
	return name, required, false
}

// declaredTypeOf maps a Go type onto the closed declared-type set. Pointer
// types map to the nullable variant of their element. Named basic types
// (e.g. type Status int) do not match: dispatch requires the exact declared
// type.
func declaredTypeOf(t reflect.Type) (model.DeclaredType, bool) {
	if t.Kind() == reflect.Ptr {
		inner, ok := declaredTypeOf(t.Elem())
		if !ok || inner.Nullable {
			return model.DeclaredType{}, false
		}
		inner.Nullable = true
		return inner, true
	}

	switch t {
	case timeType:
		return model.DeclaredType{Kind: model.KindTime}, true
	case decimalType:
		return model.DeclaredType{Kind: model.KindDecimal}, true
	}

	if t.PkgPath() != "" {
		return model.DeclaredType{}, false
	}

	switch t.Kind() {
	case reflect.String:
		return model.DeclaredType{Kind: model.KindString}, true
	case reflect.Bool:
		return model.DeclaredType{Kind: model.KindBool}, true
	case reflect.Uint8:
		return model.DeclaredType{Kind: model.KindUint8}, true
	case reflect.Int:
		return model.DeclaredType{Kind: model.KindInt}, true
	case reflect.Int64:
		return model.DeclaredType{Kind: model.KindInt64}, true
	case reflect.Float32:
		return model.DeclaredType{Kind: model.KindFloat32}, true
	case reflect.Float64:
		return model.DeclaredType{Kind: model.KindFloat64}, true
	default:
		return model.DeclaredType{}, false
	}
}

// fieldAccessor reads and writes one struct field through reflection. An
// invalid field value behaves as an absent model: reads yield the zero value
// and writes are dropped.
type fieldAccessor struct {
	typ   model.DeclaredType
	field reflect.Value
}

func (a fieldAccessor) DeclaredType() model.DeclaredType { return a.typ }

func (a fieldAccessor) Read() any {
	if !a.field.IsValid() {
		return a.typ.Zero()
	}
	if a.typ.Nullable {
		if a.field.IsNil() {
			return nil
		}
		return a.field.Elem().Interface()
	}
	return a.field.Interface()
}

func (a fieldAccessor) Write(value any) error {
	if err := assignable(a.typ, value); err != nil {
		return err
	}
	if !a.field.IsValid() || !a.field.CanSet() {
		return nil
	}

	if !a.typ.Nullable {
		a.field.Set(reflect.ValueOf(value))
		return nil
	}

	if value == nil {
		a.field.Set(reflect.Zero(a.field.Type()))
		return nil
	}
	ptr := reflect.New(a.field.Type().Elem())
	ptr.Elem().Set(reflect.ValueOf(value))
	a.field.Set(ptr)
	return nil
}
