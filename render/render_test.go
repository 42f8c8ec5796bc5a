package render

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/trec/record"
)

func sample() *record.Record {
	return record.NewBuilder().
		Identity("u").
		Int32("age", 25).
		String("name", "ok").
		Null("none").
		Float32("w", 70.2).
		Float64("nan", math.NaN()).
		Opaque("o", "{1 2}").
		Record("sub", record.NewBuilder().Identity("in").Bool("on", true).Int64("n", 5_000_000_000).Build()).
		Build()
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		`@identity: "u"`,
		`age: Int32(25)`,
		`name: String("ok")`,
		`none: Null`,
		`w: Float32(70.2)`,
		`nan: Float64(NaN)`,
		`o: Opaque("{1 2}")`,
		`sub: Nested`,
		`  @identity: "in"`,
		`  on: Bool(true)`,
		`  n: Int64(5000000000)`,
		``,
	}, "\n")
	got := String(sample())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTextSortedIndent(t *testing.T) {
	r := record.NewBuilder().
		String("b", "x").
		Record("a", record.NewBuilder().Int32("z", 1).Int32("y", 2).Build()).
		Build()
	want := "a: Nested\n    y: Int32(2)\n    z: Int32(1)\nb: String(\"x\")\n"
	got := String(r, Sorted(true), Indent(4))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTextColors(t *testing.T) {
	colors := NewColors()
	colors.Map[Colorable{Kind: record.Int32Kind, Attr: ValueColor}] = func(s string, _ ...any) string {
		return "<" + s + ">"
	}
	r := record.NewBuilder().Int32("a", 1).Build()
	got := String(r, WithColors(colors))
	if !strings.Contains(got, "(<1>)") {
		t.Errorf("expected colored value, got %q", got)
	}
	if _, ok := colors.Map[Colorable{Kind: record.StringKind, Attr: IdentityColor}]; !ok {
		t.Errorf("no identity color registered")
	}
	colors.Map[Colorable{Kind: record.StringKind, Attr: IdentityColor}] = func(s string, _ ...any) string {
		return "[" + s + "]"
	}
	withID := String(record.NewBuilder().Identity("u").Build(), WithColors(colors))
	if want := "[@identity]: [\"u\"]\n"; withID != want {
		t.Errorf("identity line: got %q want %q", withID, want)
	}
	if c := (*Colors)(nil); c.Color(record.Int32Kind, ValueColor, "x") != "x" {
		t.Errorf("nil colors should not color")
	}
}

func TestDiff(t *testing.T) {
	a := record.NewBuilder().Int32("age", 25).String("name", "ok").Bool("on", true).Build()
	b := record.NewBuilder().Bool("on", true).String("name", "ok").Int64("age", 25).Build()

	want := strings.Join([]string{
		`- age: Int32(25)`,
		`+ age: Int64(25)`,
		`  name: String("ok")`,
		`  on: Bool(true)`,
		``,
	}, "\n")
	got := Diff(a, b)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	c := record.NewBuilder().String("name", "ok").Bool("on", true).Int32("age", 25).Build()
	if d := Diff(a, c); d != "" {
		t.Errorf("equal records should not differ, got %q", d)
	}
}
