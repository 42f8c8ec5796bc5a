package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON writes the envelope as a JSON object in entry order.
// Float32 values are written with 32-bit precision and non-finite floats
// as the strings NaN, +Inf and -Inf.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := e.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Envelope) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i := range e.Entries {
		en := &e.Entries[i]
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, en.Key)
		buf.WriteString(`:{"type":`)
		writeJSONString(buf, en.Type)
		buf.WriteString(`,"value":`)
		if sub, ok := en.Value.(*Envelope); ok {
			if err := sub.writeJSON(buf); err != nil {
				return err
			}
		} else if err := writeTreeJSON(buf, en.Value); err != nil {
			return err
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

// UnmarshalJSON parses a JSON envelope, keeping entry order.
func (e *Envelope) UnmarshalJSON(d []byte) error {
	tree, err := readJSONDocument(d)
	if err != nil {
		return &DecodeError{Msg: "invalid json", Err: err}
	}
	env, err := parseTree(tree, "")
	if err != nil {
		return err
	}
	*e = *env
	return nil
}

// jsonScalar maps a native value to one encoding/json writes exactly.
func jsonScalar(v any) any {
	switch x := v.(type) {
	case float32:
		if _, s, ok := finiteOr(float64(x)); !ok {
			return s
		}
		return json.Number(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case float64:
		if _, s, ok := finiteOr(x); !ok {
			return s
		}
		return x
	case nil, bool, string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	}
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}
