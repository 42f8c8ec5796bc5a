package record

import (
	"math"
	"strconv"
)

// Value is one stored entry. The zero Value is Null.
//
// Values are placed in fields depending on the kind:
//   - Int32, Int64: i
//   - Float32, Float64: f (a Float32 is held widened, which is exact)
//   - Bool: b
//   - String, Opaque: s
//   - Nested: rec, never nil
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	rec  *Record
}

func Int32(v int32) Value {
	return Value{kind: Int32Kind, i: int64(v)}
}

func Int64(v int64) Value {
	return Value{kind: Int64Kind, i: v}
}

func Float32(v float32) Value {
	return Value{kind: Float32Kind, f: float64(v)}
}

func Float64(v float64) Value {
	return Value{kind: Float64Kind, f: v}
}

func Bool(v bool) Value {
	return Value{kind: BoolKind, b: v}
}

func String(v string) Value {
	return Value{kind: StringKind, s: v}
}

func Null() Value {
	return Value{}
}

// Nested wraps a copy of r, so later changes to r do not reach the value
// and a record can hold a snapshot of itself. A nil r yields Null.
func Nested(r *Record) Value {
	if r == nil {
		return Null()
	}
	return Value{kind: NestedKind, rec: r.Clone()}
}

// Opaque holds the textual form of a value outside the representable set.
func Opaque(text string) Value {
	return Value{kind: OpaqueKind, s: text}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == NullKind
}

func (v Value) AsInt32() (int32, bool) {
	if v.kind != Int32Kind {
		return 0, false
	}
	return int32(v.i), true
}

func (v Value) AsInt64() (int64, bool) {
	if v.kind != Int64Kind {
		return 0, false
	}
	return v.i, true
}

func (v Value) AsFloat32() (float32, bool) {
	if v.kind != Float32Kind {
		return 0, false
	}
	return float32(v.f), true
}

func (v Value) AsFloat64() (float64, bool) {
	if v.kind != Float64Kind {
		return 0, false
	}
	return v.f, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

func (v Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.s, true
}

func (v Value) AsOpaque() (string, bool) {
	if v.kind != OpaqueKind {
		return "", false
	}
	return v.s, true
}

func (v Value) AsRecord() (*Record, bool) {
	if v.kind != NestedKind {
		return nil, false
	}
	return v.rec, true
}

// Text returns the textual representation of the payload, without the tag.
func (v Value) Text() string {
	switch v.kind {
	case BoolKind:
		return strconv.FormatBool(v.b)
	case Int32Kind, Int64Kind:
		return strconv.FormatInt(v.i, 10)
	case Float32Kind:
		return formatFloat(v.f, 32)
	case Float64Kind:
		return formatFloat(v.f, 64)
	case StringKind, OpaqueKind:
		return v.s
	case NestedKind:
		return v.rec.String()
	default:
		return "null"
	}
}

// String returns the tagged form, e.g. Int32(25) or String("ok").
func (v Value) String() string {
	switch v.kind {
	case NullKind:
		return "Null"
	case StringKind, OpaqueKind:
		return v.kind.String() + "(" + strconv.Quote(v.s) + ")"
	default:
		return v.kind.String() + "(" + v.Text() + ")"
	}
}

// Native returns the payload as a plain Go value: int32, int64, float32,
// float64, bool, string, nil, or map[string]any for nested records. Opaque
// values are returned as their text.
func (v Value) Native() any {
	switch v.kind {
	case BoolKind:
		return v.b
	case Int32Kind:
		return int32(v.i)
	case Int64Kind:
		return v.i
	case Float32Kind:
		return float32(v.f)
	case Float64Kind:
		return v.f
	case StringKind, OpaqueKind:
		return v.s
	case NestedKind:
		return v.rec.Native()
	default:
		return nil
	}
}

func (v Value) clone() Value {
	if v.kind == NestedKind {
		v.rec = v.rec.Clone()
	}
	return v
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
