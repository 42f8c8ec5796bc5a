package record

import "github.com/google/uuid"

// Builder accumulates entries for a Record.
//
//	r := record.NewBuilder().
//		Identity("user-1").
//		Int32("age", 25).
//		String("name", "ok").
//		Build()
type Builder struct {
	r Record
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Identity(id string) *Builder {
	b.r.SetIdentity(id)
	return b
}

// RandomIdentity sets a random (version 4 UUID) identity.
func (b *Builder) RandomIdentity() *Builder {
	b.r.SetIdentity(uuid.NewString())
	return b
}

func (b *Builder) Set(key string, v Value) *Builder {
	b.r.Set(key, v)
	return b
}

func (b *Builder) Int32(key string, v int32) *Builder     { return b.Set(key, Int32(v)) }
func (b *Builder) Int64(key string, v int64) *Builder     { return b.Set(key, Int64(v)) }
func (b *Builder) Float32(key string, v float32) *Builder { return b.Set(key, Float32(v)) }
func (b *Builder) Float64(key string, v float64) *Builder { return b.Set(key, Float64(v)) }
func (b *Builder) Bool(key string, v bool) *Builder       { return b.Set(key, Bool(v)) }
func (b *Builder) String(key string, v string) *Builder   { return b.Set(key, String(v)) }
func (b *Builder) Null(key string) *Builder               { return b.Set(key, Null()) }
func (b *Builder) Opaque(key, text string) *Builder       { return b.Set(key, Opaque(text)) }
func (b *Builder) Record(key string, v *Record) *Builder  { return b.Set(key, Nested(v)) }

// Build returns a record independent of the builder; later builder calls
// do not affect it.
func (b *Builder) Build() *Record {
	return b.r.Clone()
}
