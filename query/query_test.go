package query

import (
	"testing"

	"github.com/signadot/trec/record"
	"github.com/stretchr/testify/require"
)

func people() []*record.Record {
	return []*record.Record{
		record.NewBuilder().Identity("user-1").String("name", "ann").Int32("age", 31).Build(),
		record.NewBuilder().Identity("user-2").String("name", "bob").Int64("age", 17).Build(),
		record.NewBuilder().Identity("svc-1").String("name", "root").Int32("age", 99).
			Record("sub", record.NewBuilder().Bool("ok", true).Build()).Build(),
		record.NewBuilder().String("name", "anon").Float64("score", 0.5).Build(),
	}
}

func names(rs []*record.Record) []string {
	var res []string
	for _, r := range rs {
		res = append(res, r.GetStringOr("name", ""))
	}
	return res
}

func TestFilter(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`age != nil && age >= 18`, []string{"ann", "root"}},
		{`(age ?? 0) >= 18 && name != "root"`, []string{"ann"}},
		{`kind("age") == "Int64"`, []string{"bob"}},
		{`has("sub") && sub.ok`, []string{"root"}},
		{`id() startsWith "user-"`, []string{"ann", "bob"}},
		{`$env["@identity"] == "svc-1"`, []string{"root"}},
		{`age == nil`, []string{"anon"}},
		{`(score ?? 0) > 0.1`, []string{"anon"}},
		{`name matches "^a"`, []string{"ann", "anon"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := Compile(tt.src)
			require.NoError(t, err)
			got, err := Filter(q, people())
			require.NoError(t, err)
			require.Equal(t, tt.want, names(got))
		})
	}
}

func TestReject(t *testing.T) {
	q := MustCompile(`id() startsWith "user-"`)
	got, err := Reject(q, people())
	require.NoError(t, err)
	require.Equal(t, []string{"root", "anon"}, names(got))

	_, err = Reject(MustCompile(`name`), people())
	require.ErrorIs(t, err, ErrNotBool)
}

func TestMatchErrors(t *testing.T) {
	_, err := Compile(`age >=`)
	require.Error(t, err)

	q := MustCompile(`name + "!"`)
	_, err = q.Match(people()[0])
	require.ErrorIs(t, err, ErrNotBool)

	_, err = Filter(q, people())
	require.ErrorIs(t, err, ErrNotBool)
	require.Equal(t, `name + "!"`, q.String())
}

func TestEnv(t *testing.T) {
	r := record.NewBuilder().Identity("x").Int32("a", 1).Opaque("o", "{1 2}").Build()
	env := Env(r)
	require.Equal(t, int32(1), env["a"])
	require.Equal(t, "{1 2}", env["o"])
	require.Equal(t, "x", env[record.IdentityKey])

	_, ok := Env(record.New())[record.IdentityKey]
	require.False(t, ok)
}

func TestSort(t *testing.T) {
	rs := people()
	Sort(rs)
	// no identity sorts as the empty identity
	require.Equal(t, []string{"anon", "root", "ann", "bob"}, names(rs))

	a := record.NewBuilder().Int32("k", 1).String("tag", "first").Build()
	b := record.NewBuilder().Int32("k", 1).String("tag", "first").Build()
	c := record.NewBuilder().Int32("k", 0).String("tag", "first").Build()
	rs = []*record.Record{a, b, c}
	Sort(rs)
	require.Same(t, c, rs[0])
	require.Same(t, a, rs[1])
	require.Same(t, b, rs[2])
}

func TestDedup(t *testing.T) {
	a := record.NewBuilder().Identity("i").Int32("x", 1).String("y", "z").Build()
	b := record.NewBuilder().Identity("i").String("y", "z").Int32("x", 1).Build()
	c := record.NewBuilder().Identity("i").String("y", "z").Int64("x", 1).Build()
	d := record.NewBuilder().String("y", "z").Int32("x", 1).Build()

	got := Dedup([]*record.Record{a, b, c, d, a})
	require.Len(t, got, 3)
	require.Same(t, a, got[0])
	require.Same(t, c, got[1])
	require.Same(t, d, got[2])

	u := SortUnique([]*record.Record{c, a, b, d})
	require.Len(t, u, 3)
	for i := 1; i < len(u); i++ {
		require.Negative(t, record.Compare(u[i-1], u[i]))
	}
}
