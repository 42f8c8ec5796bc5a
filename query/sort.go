package query

import (
	"slices"

	"github.com/signadot/trec/debug"
	"github.com/signadot/trec/record"
)

// Sort orders rs by record.Compare. Records comparing equal keep their
// relative order.
func Sort(rs []*record.Record) {
	slices.SortStableFunc(rs, record.Compare)
}

// Dedup returns rs without records Equal to an earlier one. Records are
// bucketed by Hash and compared only within a bucket.
func Dedup(rs []*record.Record) []*record.Record {
	buckets := make(map[uint64][]*record.Record, len(rs))
	res := make([]*record.Record, 0, len(rs))
outer:
	for _, r := range rs {
		h := r.Hash()
		for _, seen := range buckets[h] {
			if record.Equal(seen, r) {
				if debug.Record() {
					debug.Log("query: dropping duplicate", "hash", h)
				}
				continue outer
			}
		}
		buckets[h] = append(buckets[h], r)
		res = append(res, r)
	}
	return res
}

// SortUnique sorts rs and drops Equal neighbours.
func SortUnique(rs []*record.Record) []*record.Record {
	Sort(rs)
	return slices.CompactFunc(rs, record.Equal)
}
