package envelope

import (
	"github.com/signadot/trec/record"
)

// Envelope is the tagged form of a record. Entries keep their order.
type Envelope struct {
	Entries []Entry
}

// Entry is one tagged value.
//
// Value holds the native payload: after Encode it is int32, int64, float32,
// float64, bool, string, nil or *Envelope. After parsing a wire format it
// may also be json.Number, uint64 or other decoded scalars, which Decode
// interprets according to Type.
type Entry struct {
	Key   string
	Type  string
	Value any
}

// Get returns the entry under key.
func (e *Envelope) Get(key string) (Entry, bool) {
	for _, en := range e.Entries {
		if en.Key == key {
			return en, true
		}
	}
	return Entry{}, false
}

func (e *Envelope) Len() int {
	return len(e.Entries)
}

// Identity returns the identity entry's value, if present.
func (e *Envelope) Identity() (string, bool) {
	en, ok := e.Get(record.IdentityKey)
	if !ok {
		return "", false
	}
	return text(en.Value), true
}
