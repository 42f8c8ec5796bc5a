package record

import (
	"fmt"
	"math"
)

// SetAny stores v under key after inspecting its runtime type, delegating
// to the typed setters. It exists for callers holding untyped values.
//
// Signed and unsigned integers become Int32 when they fit in 32 bits and
// Int64 otherwise; a uint64 above math.MaxInt64 is Opaque. float32 and
// float64 keep their width. nil is Null. *Record, Value, Store and
// map[string]any are nested. Anything else is stored as Opaque with its
// fmt.Sprint text, the single fallback path.
func (r *Record) SetAny(key string, v any) {
	r.Set(key, ValueOf(v))
}

// ValueOf converts a runtime value as SetAny does.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case *Record:
		return Nested(x)
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case float32:
		return Float32(x)
	case float64:
		return Float64(x)
	case int8:
		return Int32(int32(x))
	case int16:
		return Int32(int32(x))
	case int32:
		return Int32(x)
	case uint8:
		return Int32(int32(x))
	case uint16:
		return Int32(int32(x))
	case int:
		return fromInt64(int64(x))
	case int64:
		return Int64(x)
	case uint32:
		return Int64(int64(x))
	case uint:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case Store:
		return Nested(FromStore(x))
	case map[string]any:
		return Nested(FromStore(MapStore(x)))
	}
	return Opaque(fmt.Sprint(v))
}

func fromInt64(i int64) Value {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return Int32(int32(i))
	}
	return Int64(i)
}

func fromUint64(u uint64) Value {
	if u > math.MaxInt64 {
		return Opaque(fmt.Sprint(u))
	}
	return fromInt64(int64(u))
}
