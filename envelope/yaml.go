package envelope

import (
	"encoding/json"
	"strconv"

	"github.com/goccy/go-yaml"
)

func (e *Envelope) toYAML() yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(e.Entries))
	for _, en := range e.Entries {
		res = append(res, yaml.MapItem{
			Key: en.Key,
			Value: yaml.MapSlice{
				{Key: "type", Value: en.Type},
				{Key: "value", Value: yamlScalar(en.Value)},
			},
		})
	}
	return res
}

// yamlScalar maps a native value to one go-yaml writes exactly. Float32
// values are widened, which is exact, so the decimal text read back
// narrows to the same float32.
func yamlScalar(v any) any {
	switch x := v.(type) {
	case *Envelope:
		return x.toYAML()
	case float32:
		if _, s, ok := finiteOr(float64(x)); !ok {
			return s
		}
		return float64(x)
	case float64:
		if _, s, ok := finiteOr(x); !ok {
			return s
		}
		return x
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return yamlScalar(f)
		}
		return string(x)
	case fields:
		res := make(yaml.MapSlice, len(x))
		for i, f := range x {
			res[i] = yaml.MapItem{Key: f.key, Value: yamlScalar(f.val)}
		}
		return res
	}
	return v
}

func marshalYAML(e *Envelope) ([]byte, error) {
	return yaml.Marshal(e.toYAML())
}

func parseYAML(data []byte) (*Envelope, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, &DecodeError{Msg: "invalid yaml", Err: err}
	}
	return parseTree(doc, "")
}
