package envelope

import (
	"fmt"

	"github.com/signadot/trec/format"
	"github.com/signadot/trec/record"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 merge patch to the JSON envelope of r and
// decodes the result. A patch entry replaces or deletes whole entries, or
// merges into one:
//
//	{"age": {"type": "Int64", "value": 26}, "gone": null}
func MergePatch(r *record.Record, patch []byte) (*record.Record, error) {
	doc, err := Encode(r).MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return Unmarshal(out, DecodeFormat(format.JSONFormat))
}

// ApplyPatch applies an RFC 6902 JSON patch to the JSON envelope of r and
// decodes the result. Paths address the envelope, for example
// /age/value or /@identity/value.
func ApplyPatch(r *record.Record, patch []byte) (*record.Record, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("json patch: %w", err)
	}
	doc, err := Encode(r).MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("json patch: %w", err)
	}
	return Unmarshal(out, DecodeFormat(format.JSONFormat))
}
