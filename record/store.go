package record

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/trec/debug"
)

// Store is the capability a platform key-value store offers a Record.
//
// Values exchanged through a Store are plain Go values: int32, int64,
// float32, float64, bool, string, nil, or a nested Store.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, v any)
	Remove(key string)
	Keys() []string
}

// MapStore is an in-memory Store.
type MapStore map[string]any

func (m MapStore) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapStore) Set(key string, v any) {
	m[key] = v
}

func (m MapStore) Remove(key string) {
	delete(m, key)
}

// Keys returns the keys in ascending order.
func (m MapStore) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// FromStore reads every key of s into a new Record through SetAny. A string
// under IdentityKey becomes the identity.
func FromStore(s Store) *Record {
	res := New()
	for _, k := range s.Keys() {
		v, ok := s.Get(k)
		if !ok {
			continue
		}
		if k == IdentityKey {
			id, ok := v.(string)
			if ok {
				res.SetIdentity(id)
			} else if debug.Store() {
				debug.Log("store: non-string identity ignored", "type", fmt.Sprintf("%T", v))
			}
			continue
		}
		res.SetAny(k, v)
	}
	return res
}

// ToStore writes the identity and every entry into s. Nested records are
// written as nested MapStores and Opaque values as strings. Keys already
// in s are overwritten; other keys are left alone.
func (r *Record) ToStore(s Store) {
	if r.hasIdentity {
		s.Set(IdentityKey, r.identity)
	}
	for k, v := range r.All() {
		if v.kind == NestedKind {
			sub := MapStore{}
			v.rec.ToStore(sub)
			s.Set(k, sub)
			continue
		}
		if v.kind == OpaqueKind && debug.Store() {
			debug.Log("store: opaque value written as string", "key", k)
		}
		s.Set(k, v.Native())
	}
}
