package envelope

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

// cborEnc uses Core Deterministic Encoding (RFC 8949 §4.2): the same
// envelope always produces the same bytes. Map keys are sorted, so CBOR
// envelopes do not keep entry order.
var cborEnc cbor.EncMode

var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("envelope: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("envelope: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborEntry struct {
	Type  string `cbor:"type"`
	Value any    `cbor:"value"`
}

func (e *Envelope) toCBOR() map[string]cborEntry {
	res := make(map[string]cborEntry, len(e.Entries))
	for _, en := range e.Entries {
		res[en.Key] = cborEntry{Type: en.Type, Value: cborScalar(en.Value)}
	}
	return res
}

func cborScalar(v any) any {
	switch x := v.(type) {
	case *Envelope:
		return x.toCBOR()
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return f
		}
		return string(x)
	case fields:
		res := make(map[string]any, len(x))
		for _, f := range x {
			res[f.key] = cborScalar(f.val)
		}
		return res
	case yaml.MapSlice:
		res := make(map[string]any, len(x))
		for _, item := range x {
			res[keyText(item.Key)] = cborScalar(item.Value)
		}
		return res
	}
	return v
}

func marshalCBOR(e *Envelope) ([]byte, error) {
	return cborEnc.Marshal(e.toCBOR())
}

func parseCBOR(data []byte) (*Envelope, error) {
	var doc any
	if err := cborDec.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Msg: "invalid cbor", Err: err}
	}
	return parseTree(doc, "")
}
