package record

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3 digest of a record's canonical content.
type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// digestKey is the BLAKE3 key for record digests, ASCII zero-padded to
// 32 bytes. Changing it invalidates every stored digest.
var digestKey = [32]byte{
	't', 'r', 'e', 'c', '.', 'r', 'e', 'c', 'o', 'r', 'd', '.',
	'd', 'i', 'g', 'e', 's', 't',
}

// Digest returns a digest that is stable across processes. Records that
// are Equal have the same digest.
//
// The canonical content is the identity, the entry count, then every entry
// in ascending key order as key, kind and payload. Strings are length
// prefixed and nested records contribute their own digest.
func (r *Record) Digest() Digest {
	hasher, err := blake3.NewKeyed(digestKey[:])
	if err != nil {
		panic("record: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	var buf []byte
	if r != nil {
		buf = r.appendCanonical(buf)
	}
	hasher.Write(buf)
	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}

func (r *Record) appendCanonical(buf []byte) []byte {
	buf = appendString(buf, r.identity)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.keys)))
	for _, k := range r.SortedKeys() {
		v := r.values[k]
		buf = appendString(buf, k)
		buf = append(buf, byte(v.kind))
		switch v.kind {
		case BoolKind:
			if v.b {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		case Int32Kind, Int64Kind:
			buf = binary.BigEndian.AppendUint64(buf, uint64(v.i))
		case Float32Kind, Float64Kind:
			buf = binary.BigEndian.AppendUint64(buf, floatBits(v.f))
		case StringKind, OpaqueKind:
			buf = appendString(buf, v.s)
		case NestedKind:
			d := v.rec.Digest()
			buf = append(buf, d[:]...)
		}
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
