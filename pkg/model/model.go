package model

import internalmodel "github.com/goliatone/go-formwidgets/internal/model"

// Kind re-exports the internal value-kind enumeration.
type Kind = internalmodel.Kind

const (
	KindInvalid = internalmodel.KindInvalid
	KindString  = internalmodel.KindString
	KindBool    = internalmodel.KindBool
	KindUint8   = internalmodel.KindUint8
	KindInt     = internalmodel.KindInt
	KindInt64   = internalmodel.KindInt64
	KindFloat32 = internalmodel.KindFloat32
	KindFloat64 = internalmodel.KindFloat64
	KindDecimal = internalmodel.KindDecimal
	KindTime    = internalmodel.KindTime
)

// DeclaredType re-exports the internal declared-type representation.
type DeclaredType = internalmodel.DeclaredType

// Property re-exports the internal property descriptor.
type Property = internalmodel.Property

// ParseDeclaredType parses the textual declared-type form ("int64", "decimal?").
func ParseDeclaredType(raw string) (DeclaredType, error) {
	return internalmodel.ParseDeclaredType(raw)
}

// DefaultLabeler derives a human-friendly label from a property name.
func DefaultLabeler(name string) string {
	return internalmodel.DefaultLabeler(name)
}
