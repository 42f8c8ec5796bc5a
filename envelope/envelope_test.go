package envelope

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/trec/debug"
	"github.com/signadot/trec/format"
	"github.com/signadot/trec/record"
	"github.com/stretchr/testify/require"
)

func primitives() *record.Record {
	r := record.New()
	r.SetInt32("age", 25)
	r.SetString("name", "ok")
	r.SetBool("active", true)
	r.SetFloat64("weight", 70.2)
	return r
}

func TestRoundTripPrimitives(t *testing.T) {
	r := primitives()
	got, err := Decode(Encode(r))
	require.NoError(t, err)
	require.True(t, record.Equal(r, got), "got %v want %v", got, r)
	require.Equal(t, r.Keys(), got.Keys())
}

func TestEncodeShape(t *testing.T) {
	r := record.NewBuilder().
		Int32("age", 25).
		Record("sub", record.NewBuilder().Identity("in").Null("n").Build()).
		Identity("u").
		Build()
	env := Encode(r)
	want := []Entry{
		{Key: record.IdentityKey, Type: "String", Value: "u"},
		{Key: "age", Type: "Int32", Value: int32(25)},
		{Key: "sub", Type: "Nested", Value: &Envelope{Entries: []Entry{
			{Key: record.IdentityKey, Type: "String", Value: "in"},
			{Key: "n", Type: "Null", Value: nil},
		}}},
	}
	if diff := cmp.Diff(want, env.Entries); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
	id, ok := env.Identity()
	require.True(t, ok)
	require.Equal(t, "u", id)
}

func TestTagDrivenDecode(t *testing.T) {
	r := record.New()
	r.SetInt64("big", 5_000_000_000)
	r.SetInt32("small", 42)
	r.SetInt64("small64", 7)
	r.SetFloat32("f32", 0.5)
	r.SetFloat64("f64", 0.5)

	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Marshal(r, EncodeFormat(f))
			require.NoError(t, err)
			got, err := Unmarshal(d, DecodeFormat(f))
			require.NoError(t, err)
			for _, tc := range []struct {
				key  string
				kind record.Kind
			}{
				{"big", record.Int64Kind},
				{"small", record.Int32Kind},
				{"small64", record.Int64Kind},
				{"f32", record.Float32Kind},
				{"f64", record.Float64Kind},
			} {
				v, ok := got.Get(tc.key)
				require.True(t, ok, tc.key)
				require.Equal(t, tc.kind, v.Kind(), tc.key)
			}
			require.Equal(t, int64(5_000_000_000), got.GetInt64("big", 0))
			require.Equal(t, int32(42), got.GetInt32("small", 0))
			require.True(t, record.Equal(r, got))
		})
	}
}

// decodeByRange is a decoder that picks Int32 or Int64 from the magnitude
// of the value instead of the tag.
func decodeByRange(env *Envelope) *record.Record {
	r := record.New()
	for _, en := range env.Entries {
		i, ok := toInt64(en.Value)
		if !ok {
			v, _ := decodeEntry(en, en.Key)
			r.Set(en.Key, v)
			continue
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			r.SetInt32(en.Key, int32(i))
		} else {
			r.SetInt64(en.Key, i)
		}
	}
	return r
}

func TestRangeDecodingBreaksRoundTrip(t *testing.T) {
	r := record.New()
	r.SetInt64("big", 5_000_000_000)
	r.SetInt32("small", 42)
	r.SetInt64("small64", 7)

	env := Encode(r)
	byRange := decodeByRange(env)
	require.False(t, record.Equal(r, byRange), "range decoding should lose the Int64 tag of small64")
	v, _ := byRange.Get("small64")
	require.Equal(t, record.Int32Kind, v.Kind())

	byTag, err := Decode(env)
	require.NoError(t, err)
	require.True(t, record.Equal(r, byTag))
}

type point struct{ X, Y int }

func TestOpaqueFallbackIsLossy(t *testing.T) {
	r := record.New()
	r.SetAny("x", point{1, 2})
	r.SetAny("y", []string{"a", "b"})

	env := Encode(r)
	en, _ := env.Get("x")
	require.Equal(t, "Opaque", en.Type)
	require.Equal(t, "{1 2}", en.Value)

	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			got, err := Unmarshal(mustMarshal(t, r, EncodeFormat(f)))
			require.NoError(t, err)
			s, ok := got.GetString("x")
			require.True(t, ok)
			require.Equal(t, "{1 2}", s)
			v, _ := got.Get("x")
			require.Equal(t, record.OpaqueKind, v.Kind())
			s, _ = got.GetString("y")
			require.Equal(t, "[a b]", s)
		})
	}
}

func TestEncodeValue(t *testing.T) {
	require.Equal(t, Entry{Key: "k", Type: "Opaque", Value: "{3 4}"}, EncodeValue("k", point{3, 4}))
	require.Equal(t, Entry{Key: "k", Type: "Int32", Value: int32(3)}, EncodeValue("k", 3))
}

func TestDecodeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
		want record.Value
	}{
		{"unknown tag", `{"d":{"type":"Decimal","value":"1.50"}}`, "d", record.Opaque("1.50")},
		{"unknown tag number", `{"d":{"type":"Uint8","value":7}}`, "d", record.Opaque("7")},
		{"string under int32", `{"i":{"type":"Int32","value":"abc"}}`, "i", record.Opaque("abc")},
		{"int32 out of range", `{"i":{"type":"Int32","value":5000000000}}`, "i", record.Opaque("5000000000")},
		{"fraction under int64", `{"i":{"type":"Int64","value":1.5}}`, "i", record.Opaque("1.5")},
		{"integral float under int64", `{"i":{"type":"Int64","value":3.0}}`, "i", record.Int64(3)},
		{"number under string", `{"s":{"type":"String","value":12}}`, "s", record.Opaque("12")},
		{"string under bool", `{"b":{"type":"Bool","value":"true"}}`, "b", record.Opaque("true")},
		{"value under null", `{"n":{"type":"Null","value":0}}`, "n", record.Opaque("0")},
		{"scalar under nested", `{"n":{"type":"Nested","value":[1,2]}}`, "n", record.Opaque("[1,2]")},
		{"mapping under string", `{"s":{"type":"String","value":{"a":1}}}`, "s", record.Opaque(`{"a":1}`)},
		{"overflow float32", `{"f":{"type":"Float32","value":1e300}}`, "f", record.Opaque("1e300")},
		{"int under float64", `{"f":{"type":"Float64","value":2}}`, "f", record.Float64(2)},
		{"nan under float64", `{"f":{"type":"Float64","value":"NaN"}}`, "f", record.Float64(math.NaN())},
		{"exponent string under float64", `{"f":{"type":"Float64","value":"1e-05"}}`, "f", record.Float64(1e-05)},
		{"exponent string under float32", `{"f":{"type":"Float32","value":"1e+10"}}`, "f", record.Float32(1e10)},
		{"overflow string under float32", `{"f":{"type":"Float32","value":"1e300"}}`, "f", record.Opaque("1e300")},
		{"word under float64", `{"f":{"type":"Float64","value":"heavy"}}`, "f", record.Opaque("heavy")},
		{"opaque number", `{"o":{"type":"Opaque","value":3}}`, "o", record.Opaque("3")},
		{"lower case tag", `{"i":{"type":"int32","value":3}}`, "i", record.Opaque("3")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Unmarshal([]byte(tt.in))
			require.NoError(t, err)
			got, ok := r.Get(tt.key)
			require.True(t, ok)
			require.True(t, record.EqualValues(tt.want, got), "got %v want %v", got, tt.want)
		})
	}
}

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"array document", `[1,2]`, ""},
		{"scalar document", `42`, ""},
		{"null document", `null`, ""},
		{"entry not mapping", `{"a":1}`, "a"},
		{"missing type", `{"a":{"value":1}}`, "a"},
		{"missing value", `{"a":{"type":"Int32"}}`, "a"},
		{"type not string", `{"a":{"type":5,"value":1}}`, "a"},
		{"nested missing value", `{"a":{"type":"Nested","value":{"b":{"type":"Bool"}}}}`, "a.b"},
		{"syntax", `{"a":`, ""},
		{"trailing", `{} {}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.in), DecodeFormat(format.JSONFormat))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrDecode)
			var de *DecodeError
			require.True(t, errors.As(err, &de))
			require.Equal(t, tt.path, de.Path)
		})
	}
}

func TestDecodeNil(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrDecode)
}

func TestNullIsNotAbsent(t *testing.T) {
	r, err := Unmarshal([]byte(`{"n":{"type":"Null","value":null}}`))
	require.NoError(t, err)
	v, ok := r.Get("n")
	require.True(t, ok)
	require.True(t, v.IsNull())
	require.False(t, r.Has("m"))
}

func TestIdentityEntry(t *testing.T) {
	r := record.NewBuilder().Int32("a", 1).Identity("u").Build()
	d, err := Marshal(r)
	require.NoError(t, err)
	require.Equal(t, `{"@identity":{"type":"String","value":"u"},"a":{"type":"Int32","value":1}}`, string(d))

	got, err := Unmarshal(d)
	require.NoError(t, err)
	id, ok := got.Identity()
	require.True(t, ok)
	require.Equal(t, "u", id)
	require.Equal(t, []string{"a"}, got.Keys())

	noID, err := Unmarshal([]byte(`{"a":{"type":"Int32","value":1}}`))
	require.NoError(t, err)
	_, ok = noID.Identity()
	require.False(t, ok)

	empty := record.New()
	empty.SetIdentity("")
	got, err = Unmarshal(mustMarshal(t, empty))
	require.NoError(t, err)
	id, ok = got.Identity()
	require.True(t, ok)
	require.Equal(t, "", id)
}

func TestDuplicateEntriesLastWins(t *testing.T) {
	r, err := Unmarshal([]byte(`{"a":{"type":"Int32","value":1},"a":{"type":"String","value":"x"}}`))
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
	s, _ := r.GetString("a")
	require.Equal(t, "x", s)
}

func mustMarshal(t *testing.T, r *record.Record, opts ...EncodeOption) []byte {
	t.Helper()
	d, err := Marshal(r, opts...)
	require.NoError(t, err)
	return d
}

func TestIdentityWithOtherTag(t *testing.T) {
	old := debug.Logger()
	t.Cleanup(func() {
		debug.SetLogger(old)
		debug.Reload()
	})
	t.Setenv("TREC_DEBUG_DECODE", "true")
	debug.Reload()
	buf := &bytes.Buffer{}
	debug.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r, err := Unmarshal([]byte(`{"@identity":{"type":"Int32","value":7},"a":{"type":"Bool","value":true}}`))
	require.NoError(t, err)
	id, ok := r.Identity()
	require.True(t, ok)
	require.Equal(t, "7", id)
	require.Contains(t, buf.String(), "identity type is not String")

	buf.Reset()
	_, err = Unmarshal([]byte(`{"@identity":{"type":"String","value":"u"}}`))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
