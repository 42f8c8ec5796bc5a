// Package envelope converts records to and from the tagged envelope form.
//
// # Overview
//
// An Envelope is an ordered mapping from key to a (type, value) pair:
//
//	{
//	  "@identity": {"type": "String", "value": "user-1"},
//	  "age":       {"type": "Int32", "value": 25},
//	  "big":       {"type": "Int64", "value": 5000000000},
//	  "addr":      {"type": "Nested", "value": {"zip": {"type": "String", "value": "02139"}}}
//	}
//
// The type is a record.Kind name and the value is the native primitive for
// that kind. Wire formats have fewer number types than records, so the tag
// is what keeps Int32 apart from Int64 and Float32 apart from Float64.
//
// # Encoding
//
// Encode never fails. The identity, when set, is the first entry, under
// record.IdentityKey with type String. Opaque values are emitted as their
// text.
//
// # Decoding
//
// Decode dispatches on the tag only. It never picks a kind from the size or
// shape of a value. When a value cannot be read as its tag says (a string
// under Int32, an Int32 out of range) or the tag is unknown, the entry
// becomes Opaque holding the value's text.
//
// Decoding fails only for malformed envelopes: a document or nested value
// that is not a mapping, an entry that is not a mapping, or an entry
// missing "type" or "value". Such failures are *DecodeError values and
// match ErrDecode.
//
// # Wire Formats
//
// Marshal and Unmarshal write and read JSON, YAML and CBOR, optionally
// zstd compressed:
//
//	data, err := envelope.Marshal(r, envelope.EncodeFormat(format.YAMLFormat))
//	r, err := envelope.Unmarshal(data)
//
// Without DecodeFormat, Unmarshal detects the format and compression.
//
// # Related Packages
//
//   - github.com/signadot/trec/record - the records being encoded
//   - github.com/signadot/trec/format - wire format names
package envelope
