// Package binding connects widget values to model properties. An Accessor is
// the capability a widget binder needs: read the current value, write an
// edit back. Accessors are built from typed constructors (Var-style pointers
// into a model), registered in a Store, or derived from a struct via
// FromStruct. The dispatcher never inspects runtime types; every accessor
// carries its declared type from the closed model.Kind set.
package binding

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

// Accessor pairs the read and write side of one bound property. Read returns
// the current value, substituting the declared type's zero value when the
// model reference is absent; nullable accessors read as untyped nil when
// unset. Write assigns a new value back onto the model property and rejects
// values outside the declared type.
type Accessor interface {
	DeclaredType() model.DeclaredType
	Read() any
	Write(value any) error
}

// Path is the traversal ancestry a model walker supplies for one property,
// innermost entry first: Path[0] is the instance owning the property,
// Path[1] the parent holding it. Binders skip resolution when the path has
// fewer than two entries.
type Path []any

// Valid reports whether the path is deep enough to bind against.
func (p Path) Valid() bool {
	return len(p) >= 2
}

// Owner returns the innermost entry, the instance owning the property.
func (p Path) Owner() any {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// assignable reports whether value can be written through an accessor of the
// given declared type. Untyped nil is accepted only by nullable types.
func assignable(typ model.DeclaredType, value any) error {
	if value == nil {
		if typ.Nullable {
			return nil
		}
		return fmt.Errorf("binding: cannot assign nil to %s property", typ)
	}

	ok := false
	switch typ.Kind {
	case model.KindString:
		_, ok = value.(string)
	case model.KindBool:
		_, ok = value.(bool)
	case model.KindUint8:
		_, ok = value.(uint8)
	case model.KindInt:
		_, ok = value.(int)
	case model.KindInt64:
		_, ok = value.(int64)
	case model.KindFloat32:
		_, ok = value.(float32)
	case model.KindFloat64:
		_, ok = value.(float64)
	case model.KindDecimal:
		_, ok = value.(decimal.Decimal)
	case model.KindTime:
		_, ok = value.(time.Time)
	}
	if !ok {
		return fmt.Errorf("binding: cannot assign %T to %s property", value, typ)
	}
	return nil
}
