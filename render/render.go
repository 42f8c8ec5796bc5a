// Package render prints records for people: one "key: Tag(value)" line per
// entry, nested records indented below their key.
package render

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/trec/record"
)

type state struct {
	colors *Colors
	sorted bool
	indent int
}

type Option func(*state)

// Colors sets the colors used, nil for none.
func WithColors(c *Colors) Option {
	return func(s *state) { s.colors = c }
}

// Sorted prints keys in ascending order instead of insertion order.
func Sorted(v bool) Option {
	return func(s *state) { s.sorted = v }
}

// Indent sets the number of spaces per nesting level, 2 by default.
func Indent(n int) Option {
	return func(s *state) { s.indent = n }
}

// Text writes r to w.
func Text(w io.Writer, r *record.Record, opts ...Option) error {
	s := &state{indent: 2}
	for _, opt := range opts {
		opt(s)
	}
	buf := &bytes.Buffer{}
	s.write(buf, r, 0)
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the rendering of r.
func String(r *record.Record, opts ...Option) string {
	b := &strings.Builder{}
	_ = Text(b, r, opts...)
	return b.String()
}

func (s *state) write(buf *bytes.Buffer, r *record.Record, depth int) {
	pad := strings.Repeat(" ", depth*s.indent)
	c := s.colors
	if id, ok := r.Identity(); ok {
		buf.WriteString(pad)
		buf.WriteString(c.Color(record.StringKind, IdentityColor, record.IdentityKey))
		buf.WriteString(": ")
		buf.WriteString(c.Color(record.StringKind, IdentityColor, strconv.Quote(id)))
		buf.WriteByte('\n')
	}
	keys := r.Keys()
	if s.sorted {
		keys = r.SortedKeys()
	}
	for _, k := range keys {
		v, _ := r.Get(k)
		kind := v.Kind()
		buf.WriteString(pad)
		buf.WriteString(c.Color(kind, KeyColor, k))
		buf.WriteString(": ")
		if sub, ok := v.AsRecord(); ok {
			buf.WriteString(c.Color(kind, TagColor, kind.String()))
			buf.WriteByte('\n')
			s.write(buf, sub, depth+1)
			continue
		}
		if kind == record.NullKind {
			buf.WriteString(c.Color(kind, ValueColor, kind.String()))
			buf.WriteByte('\n')
			continue
		}
		buf.WriteString(c.Color(kind, TagColor, kind.String()))
		buf.WriteByte('(')
		buf.WriteString(c.Color(kind, ValueColor, payload(v)))
		buf.WriteString(")\n")
	}
}

func payload(v record.Value) string {
	switch v.Kind() {
	case record.StringKind, record.OpaqueKind:
		return strconv.Quote(v.Text())
	}
	return v.Text()
}
