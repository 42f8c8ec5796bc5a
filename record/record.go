package record

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/trec/debug"
)

// IdentityKey is the reserved key under which a record's identity travels in
// an envelope or store. It is never a data key.
const IdentityKey = "@identity"

// Record is a mapping from unique string keys to Values plus an optional
// identity. The zero Record is empty and ready to use.
type Record struct {
	identity    string
	hasIdentity bool

	keys   []string
	values map[string]Value
}

func New() *Record {
	return &Record{}
}

// Identity returns the identity and whether one is set.
func (r *Record) Identity() (string, bool) {
	return r.identity, r.hasIdentity
}

func (r *Record) SetIdentity(id string) {
	r.identity = id
	r.hasIdentity = true
}

func (r *Record) ClearIdentity() {
	r.identity = ""
	r.hasIdentity = false
}

// Set stores v under key, replacing any prior value. Setting IdentityKey
// has no effect.
func (r *Record) Set(key string, v Value) {
	if key == IdentityKey {
		if debug.Record() {
			debug.Log("record: ignoring reserved key", "key", key, "kind", v.Kind())
		}
		return
	}
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) SetInt32(key string, v int32)     { r.Set(key, Int32(v)) }
func (r *Record) SetInt64(key string, v int64)     { r.Set(key, Int64(v)) }
func (r *Record) SetFloat32(key string, v float32) { r.Set(key, Float32(v)) }
func (r *Record) SetFloat64(key string, v float64) { r.Set(key, Float64(v)) }
func (r *Record) SetBool(key string, v bool)       { r.Set(key, Bool(v)) }
func (r *Record) SetString(key string, v string)   { r.Set(key, String(v)) }
func (r *Record) SetNull(key string)               { r.Set(key, Null()) }
func (r *Record) SetOpaque(key string, text string) {
	r.Set(key, Opaque(text))
}

// SetRecord stores a copy of v as a Nested value. A nil v stores Null.
func (r *Record) SetRecord(key string, v *Record) {
	r.Set(key, Nested(v))
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

func (r *Record) lookup(key string, kind Kind) (Value, bool) {
	v, ok := r.values[key]
	if !ok {
		return Value{}, false
	}
	if v.kind != kind {
		if debug.Record() {
			debug.Log("record: kind mismatch, returning default", "key", key, "want", kind, "got", v.kind)
		}
		return Value{}, false
	}
	return v, true
}

// GetInt32 returns the Int32 stored under key, or def when the key is absent
// or holds another kind.
func (r *Record) GetInt32(key string, def int32) int32 {
	v, ok := r.lookup(key, Int32Kind)
	if !ok {
		return def
	}
	return int32(v.i)
}

func (r *Record) GetInt64(key string, def int64) int64 {
	v, ok := r.lookup(key, Int64Kind)
	if !ok {
		return def
	}
	return v.i
}

func (r *Record) GetFloat32(key string, def float32) float32 {
	v, ok := r.lookup(key, Float32Kind)
	if !ok {
		return def
	}
	return float32(v.f)
}

func (r *Record) GetFloat64(key string, def float64) float64 {
	v, ok := r.lookup(key, Float64Kind)
	if !ok {
		return def
	}
	return v.f
}

func (r *Record) GetBool(key string, def bool) bool {
	v, ok := r.lookup(key, BoolKind)
	if !ok {
		return def
	}
	return v.b
}

// GetString returns the text stored under key if it holds a String or an
// Opaque value. The second result is false otherwise.
func (r *Record) GetString(key string) (string, bool) {
	v, ok := r.values[key]
	if !ok {
		return "", false
	}
	switch v.kind {
	case StringKind, OpaqueKind:
		return v.s, true
	}
	if debug.Record() {
		debug.Log("record: kind mismatch, returning default", "key", key, "want", StringKind, "got", v.kind)
	}
	return "", false
}

// GetStringOr is GetString with a default.
func (r *Record) GetStringOr(key, def string) string {
	s, ok := r.GetString(key)
	if !ok {
		return def
	}
	return s
}

// GetRecord returns the nested record under key, or nil.
func (r *Record) GetRecord(key string) *Record {
	v, ok := r.lookup(key, NestedKind)
	if !ok {
		return nil
	}
	return v.rec
}

// Expect returns the value under key, reporting ErrKeyNotFound when absent
// and a *MismatchError when it holds a kind other than kind.
func (r *Record) Expect(key string, kind Kind) (Value, error) {
	v, ok := r.values[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if v.kind != kind {
		return Value{}, &MismatchError{Key: key, Want: kind, Got: v.kind}
	}
	return v, nil
}

// Delete removes key, reporting whether it was present.
func (r *Record) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return true
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the data keys in insertion order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// SortedKeys returns the data keys in ascending order.
func (r *Record) SortedKeys() []string {
	res := slices.Clone(r.keys)
	slices.Sort(res)
	return res
}

// All iterates over entries in insertion order.
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	res := &Record{
		identity:    r.identity,
		hasIdentity: r.hasIdentity,
		keys:        slices.Clone(r.keys),
	}
	if r.values != nil {
		res.values = make(map[string]Value, len(r.values))
		for k, v := range r.values {
			res.values[k] = v.clone()
		}
	}
	return res
}

// Native returns the entries as a map of plain Go values, see Value.Native.
// The identity is not included.
func (r *Record) Native() map[string]any {
	res := make(map[string]any, len(r.keys))
	for k, v := range r.values {
		res[k] = v.Native()
	}
	return res
}

func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	if r.hasIdentity {
		b.WriteString(IdentityKey + ": " + strconv.Quote(r.identity))
		sep = ", "
	}
	for k, v := range r.All() {
		b.WriteString(sep)
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v.String())
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}
