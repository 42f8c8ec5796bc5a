package envelope

import (
	"github.com/signadot/trec/record"
)

// Encode returns the envelope of r: the identity entry first when set, then
// one entry per key in insertion order. Nested records are encoded
// recursively.
func Encode(r *record.Record) *Envelope {
	env := &Envelope{Entries: make([]Entry, 0, r.Len()+1)}
	if id, ok := r.Identity(); ok {
		env.Entries = append(env.Entries, Entry{
			Key:   record.IdentityKey,
			Type:  record.StringKind.String(),
			Value: id,
		})
	}
	for k, v := range r.All() {
		env.Entries = append(env.Entries, encodeEntry(k, v))
	}
	return env
}

func encodeEntry(key string, v record.Value) Entry {
	en := Entry{Key: key, Type: v.Kind().String()}
	if sub, ok := v.AsRecord(); ok {
		en.Value = Encode(sub)
		return en
	}
	en.Value = v.Native()
	return en
}

// EncodeValue returns the entry for an arbitrary runtime value, using the
// same inspection as record.SetAny. Unsupported values get the Opaque type.
func EncodeValue(key string, v any) Entry {
	return encodeEntry(key, record.ValueOf(v))
}
