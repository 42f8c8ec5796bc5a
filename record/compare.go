package record

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two records.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// A nil record sorts before any non-nil record.
func Compare(a, b *Record) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	// an absent identity is the empty string here
	if c := strings.Compare(a.identity, b.identity); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.keys), len(b.keys)); c != 0 {
		return c
	}
	aKeys := a.SortedKeys()
	bKeys := b.SortedKeys()
	for i := range aKeys {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := CompareValues(a.values[aKeys[i]], b.values[bKeys[i]]); c != 0 {
			return c
		}
	}
	return 0
}

// CompareValues orders values first by kind rank, then natively within a
// kind. Floats order NaN first and treat -0 and +0 as equal.
func CompareValues(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case BoolKind:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case Int32Kind, Int64Kind:
		return cmp.Compare(a.i, b.i)
	case Float32Kind, Float64Kind:
		return cmp.Compare(a.f, b.f)
	case StringKind, OpaqueKind:
		return strings.Compare(a.s, b.s)
	case NestedKind:
		return Compare(a.rec, b.rec)
	}
	return 0
}

// Equal reports whether a and b have the same identity, the same keys and
// equal values under every key. String("1") and Int32(1) are not equal.
func Equal(a, b *Record) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.identity != b.identity || len(a.keys) != len(b.keys) {
		return false
	}
	for k, av := range a.values {
		bv, ok := b.values[k]
		if !ok || !EqualValues(av, bv) {
			return false
		}
	}
	return true
}

// EqualValues reports whether CompareValues(a, b) == 0.
func EqualValues(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case BoolKind:
		return a.b == b.b
	case Int32Kind, Int64Kind:
		return a.i == b.i
	case Float32Kind, Float64Kind:
		return cmp.Compare(a.f, b.f) == 0
	case StringKind, OpaqueKind:
		return a.s == b.s
	case NestedKind:
		return Equal(a.rec, b.rec)
	}
	return true
}
