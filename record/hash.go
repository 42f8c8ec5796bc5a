package record

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// seed is shared by every hash computed in this process so that equal
// records hash equal.
var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the record, consistent with Equal.
// Entry hashes are summed so insertion order does not matter.
// Hashes are only comparable within one process; see Digest.
func (r *Record) Hash() uint64 {
	if r == nil {
		return 0
	}
	var entries uint64
	for k, v := range r.values {
		entries += hashEntry(k, v)
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(r.identity)
	h.WriteByte(0)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], entries)
	h.Write(b[:])
	binary.LittleEndian.PutUint64(b[:], uint64(len(r.keys)))
	h.Write(b[:])
	return h.Sum64()
}

// Hash returns a 64-bit hash of the value, consistent with EqualValues.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	hashValue(&h, v)
	return h.Sum64()
}

func hashEntry(k string, v Value) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(k)
	h.WriteByte(0)
	hashValue(&h, v)
	return h.Sum64()
}

func hashValue(h *maphash.Hash, v Value) {
	h.WriteByte(byte(v.kind))
	var b [8]byte
	switch v.kind {
	case BoolKind:
		if v.b {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case Int32Kind, Int64Kind:
		binary.LittleEndian.PutUint64(b[:], uint64(v.i))
		h.Write(b[:])
	case Float32Kind, Float64Kind:
		binary.LittleEndian.PutUint64(b[:], floatBits(v.f))
		h.Write(b[:])
	case StringKind, OpaqueKind:
		h.WriteString(v.s)
	case NestedKind:
		binary.LittleEndian.PutUint64(b[:], v.rec.Hash())
		h.Write(b[:])
	}
}

// floatBits maps floats that compare equal to the same bits.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(f)
}
