package binding

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

// value is the accessor over a plain (non-nullable) property reference.
type value[T any] struct {
	typ model.DeclaredType
	ptr *T
}

func (v value[T]) DeclaredType() model.DeclaredType { return v.typ }

func (v value[T]) Read() any {
	if v.ptr == nil {
		return v.typ.Zero()
	}
	return *v.ptr
}

func (v value[T]) Write(next any) error {
	if err := assignable(v.typ, next); err != nil {
		return err
	}
	if v.ptr == nil {
		return nil
	}
	*v.ptr = next.(T)
	return nil
}

// nullValue is the accessor over a nullable property reference. Read returns
// untyped nil when the slot is unset; Write(nil) clears it.
type nullValue[T any] struct {
	typ model.DeclaredType
	ptr **T
}

func (v nullValue[T]) DeclaredType() model.DeclaredType { return v.typ }

func (v nullValue[T]) Read() any {
	if v.ptr == nil || *v.ptr == nil {
		return nil
	}
	return **v.ptr
}

func (v nullValue[T]) Write(next any) error {
	if err := assignable(v.typ, next); err != nil {
		return err
	}
	if v.ptr == nil {
		return nil
	}
	if next == nil {
		*v.ptr = nil
		return nil
	}
	typed := next.(T)
	*v.ptr = &typed
	return nil
}

func plain[T any](kind model.Kind, ptr *T) Accessor {
	return value[T]{typ: model.DeclaredType{Kind: kind}, ptr: ptr}
}

func null[T any](kind model.Kind, ptr **T) Accessor {
	return nullValue[T]{typ: model.DeclaredType{Kind: kind, Nullable: true}, ptr: ptr}
}

// String binds a string property.
func String(ptr *string) Accessor { return plain(model.KindString, ptr) }

// Bool binds a bool property.
func Bool(ptr *bool) Accessor { return plain(model.KindBool, ptr) }

// Uint8 binds a uint8 property.
func Uint8(ptr *uint8) Accessor { return plain(model.KindUint8, ptr) }

// Int binds an int property.
func Int(ptr *int) Accessor { return plain(model.KindInt, ptr) }

// Int64 binds an int64 property.
func Int64(ptr *int64) Accessor { return plain(model.KindInt64, ptr) }

// Float32 binds a float32 property.
func Float32(ptr *float32) Accessor { return plain(model.KindFloat32, ptr) }

// Float64 binds a float64 property.
func Float64(ptr *float64) Accessor { return plain(model.KindFloat64, ptr) }

// Decimal binds a decimal property.
func Decimal(ptr *decimal.Decimal) Accessor { return plain(model.KindDecimal, ptr) }

// Time binds a time property.
func Time(ptr *time.Time) Accessor { return plain(model.KindTime, ptr) }

// NullString binds a nullable string property.
func NullString(ptr **string) Accessor { return null(model.KindString, ptr) }

// NullBool binds a nullable bool property.
func NullBool(ptr **bool) Accessor { return null(model.KindBool, ptr) }

// NullUint8 binds a nullable uint8 property.
func NullUint8(ptr **uint8) Accessor { return null(model.KindUint8, ptr) }

// NullInt binds a nullable int property.
func NullInt(ptr **int) Accessor { return null(model.KindInt, ptr) }

// NullInt64 binds a nullable int64 property.
func NullInt64(ptr **int64) Accessor { return null(model.KindInt64, ptr) }

// NullFloat32 binds a nullable float32 property.
func NullFloat32(ptr **float32) Accessor { return null(model.KindFloat32, ptr) }

// NullFloat64 binds a nullable float64 property.
func NullFloat64(ptr **float64) Accessor { return null(model.KindFloat64, ptr) }

// NullDecimal binds a nullable decimal property.
func NullDecimal(ptr **decimal.Decimal) Accessor { return null(model.KindDecimal, ptr) }

// NullTime binds a nullable time property.
func NullTime(ptr **time.Time) Accessor { return null(model.KindTime, ptr) }
