// Package query selects, orders and deduplicates records.
//
// Predicates are expr-lang expressions evaluated against the native values
// of a record:
//
//	age != nil && age >= 18 && name != "root"
//	kind("age") == "Int64"
//	has("sub") && sub.ok
//	id() startsWith "user-"
//
// The identity is also bound under the key "@identity", which is reachable
// as $env["@identity"]. The helpers kind, has and id shadow data keys of
// the same name; those remain reachable through $env.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/trec/record"
)

var ErrNotBool = errors.New("query result is not a bool")

type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles a predicate. Keys absent from a record evaluate to nil.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q against r.
func (q *Query) Match(r *record.Record) (bool, error) {
	res, err := expr.Run(q.prg, Env(r))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", q.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, q.src, res)
	}
	return b, nil
}

// Env returns the evaluation environment of r.
func Env(r *record.Record) map[string]any {
	env := r.Native()
	id, hasID := r.Identity()
	if hasID {
		env[record.IdentityKey] = id
	}
	env["kind"] = func(key string) string {
		v, ok := r.Get(key)
		if !ok {
			return ""
		}
		return v.Kind().String()
	}
	env["has"] = r.Has
	env["id"] = func() string { return id }
	return env
}

// Filter returns the records of rs matching q, in order.
func Filter(q *Query, rs []*record.Record) ([]*record.Record, error) {
	return selectBy(q, rs, true)
}

// Reject returns the records of rs not matching q, in order.
func Reject(q *Query, rs []*record.Record) ([]*record.Record, error) {
	return selectBy(q, rs, false)
}

func selectBy(q *Query, rs []*record.Record, want bool) ([]*record.Record, error) {
	var res []*record.Record
	for _, r := range rs {
		ok, err := q.Match(r)
		if err != nil {
			return nil, err
		}
		if ok == want {
			res = append(res, r)
		}
	}
	return res, nil
}
