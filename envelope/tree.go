package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// field is one key of a decoded mapping. fields keeps the document order.
type field struct {
	key string
	val any
}

type fields []field

// asFields returns the entries of a decoded mapping in document order, or
// in ascending key order for formats decoding to Go maps.
func asFields(v any) (fields, bool) {
	switch m := v.(type) {
	case fields:
		return m, true
	case yaml.MapSlice:
		res := make(fields, len(m))
		for i, item := range m {
			res[i] = field{key: keyText(item.Key), val: item.Value}
		}
		return res, true
	case map[string]any:
		res := make(fields, 0, len(m))
		for _, k := range slices.Sorted(maps.Keys(m)) {
			res = append(res, field{key: k, val: m[k]})
		}
		return res, true
	case map[any]any:
		res := make(fields, 0, len(m))
		for k, v := range m {
			res = append(res, field{key: keyText(k), val: v})
		}
		slices.SortFunc(res, func(a, b field) int { return strings.Compare(a.key, b.key) })
		return res, true
	}
	return nil, false
}

func keyText(k any) string {
	if k == nil {
		return "null"
	}
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// parseTree builds an envelope from a decoded document, checking its shape.
// Only values tagged Nested are parsed as nested envelopes.
func parseTree(v any, path string) (*Envelope, error) {
	fs, ok := asFields(v)
	if !ok {
		return nil, &DecodeError{Path: path, Msg: fmt.Sprintf("expected mapping, got %s", describe(v))}
	}
	env := &Envelope{Entries: make([]Entry, 0, len(fs))}
	for _, f := range fs {
		p := joinPath(path, f.key)
		efs, ok := asFields(f.val)
		if !ok {
			return nil, &DecodeError{Path: p, Msg: fmt.Sprintf("entry is not a mapping, got %s", describe(f.val))}
		}
		var (
			typ, val       any
			hasTyp, hasVal bool
		)
		for _, ef := range efs {
			switch ef.key {
			case "type":
				typ, hasTyp = ef.val, true
			case "value":
				val, hasVal = ef.val, true
			}
		}
		if !hasTyp {
			return nil, &DecodeError{Path: p, Msg: `entry missing "type"`}
		}
		if !hasVal {
			return nil, &DecodeError{Path: p, Msg: `entry missing "value"`}
		}
		ts, ok := typ.(string)
		if !ok {
			return nil, &DecodeError{Path: p, Msg: fmt.Sprintf(`"type" is not a string, got %s`, describe(typ))}
		}
		if ts == "Nested" {
			if _, isMap := asFields(val); isMap {
				sub, err := parseTree(val, p)
				if err != nil {
					return nil, err
				}
				val = sub
			}
		}
		env.Entries = append(env.Entries, Entry{Key: f.key, Type: ts, Value: val})
	}
	return env, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "bool"
	}
	if _, ok := asFields(v); ok {
		return "mapping"
	}
	return fmt.Sprintf("%T", v)
}

// readJSON decodes one JSON value keeping object key order. Numbers are
// json.Number so integers keep full precision.
func readJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch d {
	case '{':
		fs := fields{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			k, ok := kt.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", kt)
			}
			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			fs = append(fs, field{key: k, val: v})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return fs, nil
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", d)
}

func readJSONDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after document")
	}
	return v, nil
}

// writeTreeJSON writes a decoded value as JSON, keeping mapping order.
func writeTreeJSON(w io.StringWriter, v any) error {
	if fs, ok := asFields(v); ok {
		w.WriteString("{")
		for i, f := range fs {
			if i > 0 {
				w.WriteString(",")
			}
			k, _ := json.Marshal(f.key)
			w.WriteString(string(k))
			w.WriteString(":")
			if err := writeTreeJSON(w, f.val); err != nil {
				return err
			}
		}
		w.WriteString("}")
		return nil
	}
	if arr, ok := v.([]any); ok {
		w.WriteString("[")
		for i, e := range arr {
			if i > 0 {
				w.WriteString(",")
			}
			if err := writeTreeJSON(w, e); err != nil {
				return err
			}
		}
		w.WriteString("]")
		return nil
	}
	if env, ok := v.(*Envelope); ok {
		d, err := env.MarshalJSON()
		if err != nil {
			return err
		}
		w.WriteString(string(d))
		return nil
	}
	d, err := json.Marshal(jsonScalar(v))
	if err != nil {
		return err
	}
	w.WriteString(string(d))
	return nil
}
