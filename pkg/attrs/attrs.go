// Package attrs implements the attribute serialization contract shared by all
// widget annotations: each annotation declares an option table (name, current
// value, documented default, emission policy) and a single generic routine
// turns it into the attribute map handed to the widget at emission time.
package attrs

import "reflect"

// Map is the serialized key/value configuration passed to a widget. Keys are
// option names; values are heterogeneous (strings, booleans, numerics,
// callbacks). A map is built fresh on every render, owned by the call that
// built it, and discarded after emission.
type Map map[string]any

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for key, value := range m {
		out[key] = value
	}
	return out
}

// Merge copies every entry of other into m, overwriting existing keys.
func (m Map) Merge(other Map) Map {
	for key, value := range other {
		m[key] = value
	}
	return m
}

// Policy controls when an option is emitted into the attribute map.
type Policy uint8

const (
	// EmitNonDefault emits the option only when its value differs from the
	// documented default. This is the policy for nearly every option.
	EmitNonDefault Policy = iota
	// EmitAlways emits the option regardless of its value.
	EmitAlways
	// EmitNever keeps the option out of the map entirely. Used for options
	// that drive structural decisions instead of passing through, such as a
	// choice list or a group legend.
	EmitNever
)

// Option is one row of an annotation's serialization table.
type Option struct {
	Name    string
	Value   any
	Default any
	Policy  Policy
}

// Spec is the full option table of one annotation instance.
type Spec []Option

// Serialize evaluates the table into an attribute map. Pure function of the
// current option values; no entry is emitted for EmitNever options or for
// EmitNonDefault options still at their default.
func (s Spec) Serialize() Map {
	out := make(Map, len(s))
	for _, opt := range s {
		switch opt.Policy {
		case EmitNever:
			continue
		case EmitAlways:
			out[opt.Name] = opt.Value
		default:
			if !equal(opt.Value, opt.Default) {
				out[opt.Name] = opt.Value
			}
		}
	}
	return out
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}
