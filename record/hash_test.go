package record

import (
	"testing"
)

func TestHashOrderIndependent(t *testing.T) {
	a := NewBuilder().Identity("u").Int32("age", 25).String("name", "ok").Bool("active", true).Float64("weight", 70.2).Build()
	b := NewBuilder().Float64("weight", 70.2).Bool("active", true).String("name", "ok").Int32("age", 25).Identity("u").Build()
	if !Equal(a, b) {
		t.Fatalf("records not equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash differs: %x vs %x", a.Hash(), b.Hash())
	}
	if a.Digest() != b.Digest() {
		t.Errorf("Digest differs: %s vs %s", a.Digest(), b.Digest())
	}
}

func TestHashDistinguishesKinds(t *testing.T) {
	a := NewBuilder().Int32("k", 1).Build()
	b := NewBuilder().Int64("k", 1).Build()
	if a.Hash() == b.Hash() {
		t.Errorf("Int32(1) and Int64(1) hash equal")
	}
	if a.Digest() == b.Digest() {
		t.Errorf("Int32(1) and Int64(1) digest equal")
	}
}

func TestHashStable(t *testing.T) {
	r := NewBuilder().Identity("x").String("s", "v").Record("n", NewBuilder().Int64("i", 3).Build()).Build()
	if r.Hash() != r.Hash() {
		t.Errorf("Hash not stable")
	}
	if r.Hash() != r.Clone().Hash() {
		t.Errorf("clone hashes differently")
	}
}

func TestDigestIdentity(t *testing.T) {
	a := NewBuilder().Identity("a").Build()
	b := NewBuilder().Identity("b").Build()
	if a.Digest() == b.Digest() {
		t.Errorf("identity not part of digest")
	}
	if New().Digest() != NewBuilder().Identity("").Build().Digest() {
		t.Errorf("absent and empty identity digest differently")
	}
	if len(a.Digest().String()) != 64 {
		t.Errorf("digest hex length %d", len(a.Digest().String()))
	}
}

func TestValueHash(t *testing.T) {
	if String("a").Hash() != String("a").Hash() {
		t.Errorf("value hash not stable")
	}
	if String("a").Hash() == Opaque("a").Hash() {
		t.Errorf("String and Opaque hash equal")
	}
}
