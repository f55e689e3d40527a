package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind enumerates the value kinds widgets know how to bind. The set is closed:
// dispatch switches over it exhaustively and anything outside it is skipped by
// the binder rather than treated as an error.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindUint8
	KindInt
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindTime
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindBool:    "bool",
	KindUint8:   "uint8",
	KindInt:     "int",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindTime:    "time",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Numeric reports whether the kind belongs to the numeric widget domain.
func (k Kind) Numeric() bool {
	switch k {
	case KindUint8, KindInt, KindInt64, KindFloat32, KindFloat64, KindDecimal:
		return true
	default:
		return false
	}
}

// DeclaredType identifies the declared type of a bound property. Nullable
// variants are distinct terminal cases during dispatch: a widget bound to an
// int property and one bound to a *int property select different
// instantiations and produce differently typed zero values.
type DeclaredType struct {
	Kind     Kind
	Nullable bool
}

func (t DeclaredType) String() string {
	if t.Nullable {
		return t.Kind.String() + "?"
	}
	return t.Kind.String()
}

// Valid reports whether the type names a member of the closed kind set.
func (t DeclaredType) Valid() bool {
	_, ok := kindNames[t.Kind]
	return ok && t.Kind != KindInvalid
}

// Zero returns the zero value the binder substitutes when the model reference
// is absent. Nullable types read as nil.
func (t DeclaredType) Zero() any {
	if t.Nullable {
		return nil
	}
	switch t.Kind {
	case KindString:
		return ""
	case KindBool:
		return false
	case KindUint8:
		return uint8(0)
	case KindInt:
		return 0
	case KindInt64:
		return int64(0)
	case KindFloat32:
		return float32(0)
	case KindFloat64:
		return float64(0)
	case KindDecimal:
		return decimal.Zero
	case KindTime:
		return time.Time{}
	default:
		return nil
	}
}

// ParseDeclaredType reads the textual form used by form definitions, e.g.
// "int64" or "decimal?". A trailing question mark marks the nullable variant.
func ParseDeclaredType(raw string) (DeclaredType, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return DeclaredType{}, fmt.Errorf("model: declared type is required")
	}

	nullable := strings.HasSuffix(name, "?")
	name = strings.TrimSuffix(name, "?")

	for kind, kindName := range kindNames {
		if kind == KindInvalid {
			continue
		}
		if kindName == name {
			return DeclaredType{Kind: kind, Nullable: nullable}, nil
		}
	}
	return DeclaredType{}, fmt.Errorf("model: unknown declared type %q", raw)
}

// Property describes one bindable slot in a model: its name, declared type,
// and presentation metadata. Instances are built once when the model is
// introspected and treated as immutable for the duration of a render pass.
type Property struct {
	Name        string            `json:"name"`
	Type        DeclaredType      `json:"type"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// DisplayLabel resolves the label shown next to the widget, deriving one from
// the property name when no explicit label was configured.
func (p Property) DisplayLabel() string {
	if label := strings.TrimSpace(p.Label); label != "" {
		return label
	}
	return DefaultLabeler(p.Name)
}
