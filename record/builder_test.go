package record

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuilderMatchesSetters(t *testing.T) {
	built := NewBuilder().
		Identity("u").
		Int32("age", 25).
		String("name", "ok").
		Bool("active", true).
		Float64("weight", 70.2).
		Build()

	direct := New()
	direct.SetIdentity("u")
	direct.SetInt32("age", 25)
	direct.SetString("name", "ok")
	direct.SetBool("active", true)
	direct.SetFloat64("weight", 70.2)

	if !Equal(built, direct) {
		t.Errorf("builder %v != setters %v", built, direct)
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	r := NewBuilder().Int32("k", 1).String("k", "two").Build()
	if s, ok := r.GetString("k"); !ok || s != "two" {
		t.Errorf("GetString(k) = %q, %v", s, ok)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d", r.Len())
	}
}

func TestBuildIsIndependent(t *testing.T) {
	b := NewBuilder().Int32("a", 1)
	first := b.Build()
	b.Int32("a", 2).Int32("b", 3)
	if first.GetInt32("a", 0) != 1 || first.Has("b") {
		t.Errorf("built record changed with builder: %v", first)
	}
}

func TestRandomIdentity(t *testing.T) {
	r := NewBuilder().RandomIdentity().Build()
	id, ok := r.Identity()
	if !ok {
		t.Fatal("no identity")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("identity %q is not a uuid: %v", id, err)
	}
}
