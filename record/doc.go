// Package record provides typed key-value records.
//
// # Overview
//
// A Record maps unique string keys to Values. A Value is a closed tagged
// variant: one of Int32, Int64, Float32, Float64, Bool, String, Null, Nested
// (another Record) or Opaque. Opaque holds the textual form of a runtime value
// outside the representable set; once a value is Opaque its original type is
// gone.
//
// Records also carry an optional identity string. The identity takes part in
// comparison and ordering but is not a data key; the key IdentityKey is
// reserved for it and setters ignore it.
//
// # Reading and Writing
//
// Values are written with typed setters and read with typed getters:
//
//	r := record.New()
//	r.SetInt32("age", 25)
//	r.SetString("name", "ok")
//	age := r.GetInt32("age", 0)
//
// A getter returns the stored value only when the entry exists and its kind
// is exactly the getter's kind. Otherwise it returns the supplied default,
// even if the key holds a value of another kind. GetString distinguishes an
// absent key from an empty string and also reads Opaque entries. Use Expect
// when a mismatch should be reported as an error instead.
//
// Every setter replaces any prior value for the key. Iteration (Keys, All)
// follows insertion order; the order is irrelevant to equality.
//
// # Comparison and Hashing
//
// Equal, Compare and (*Record).Hash agree with each other:
//
//	Compare(a, b) == 0  <=>  Equal(a, b)  =>  a.Hash() == b.Hash()
//
// Compare orders by identity, then entry count, then keys in ascending order
// and their values. Values of the same kind compare natively; values of
// different kinds compare by kind rank:
//
//	Null < Bool < Int32 < Int64 < Float32 < Float64 < String < Opaque < Nested
//
// Hash is stable within a process. Digest is a BLAKE3 digest of the canonical
// content and is stable across processes.
//
// # Stores
//
// A Store is the minimal capability of a platform key-value store: get, set,
// remove and key enumeration. FromStore and (*Record).ToStore convert at the
// boundary. SetAny is the untyped entry point used for such conversions.
//
// # Thread Safety
//
// Records are not safe for concurrent mutation. Concurrent reads, including
// Compare, Hash, Digest and envelope encoding, are safe once mutation stops.
package record
