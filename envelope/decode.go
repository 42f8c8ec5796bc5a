package envelope

import (
	"math"

	"github.com/signadot/trec/debug"
	"github.com/signadot/trec/record"
)

// Decode reconstructs a record from env, dispatching every entry on its
// type tag.
func Decode(env *Envelope) (*record.Record, error) {
	return decode(env, "")
}

func decode(env *Envelope, path string) (*record.Record, error) {
	if env == nil {
		return nil, &DecodeError{Path: path, Msg: "expected mapping, got nothing"}
	}
	r := record.New()
	for _, en := range env.Entries {
		if en.Key == record.IdentityKey {
			if en.Type != record.StringKind.String() {
				fallback(path, en, "identity type is not String")
			}
			id, ok := en.Value.(string)
			if !ok {
				id = text(en.Value)
				fallback(path, en, "identity is not a string")
			}
			r.SetIdentity(id)
			continue
		}
		v, err := decodeEntry(en, joinPath(path, en.Key))
		if err != nil {
			return nil, err
		}
		r.Set(en.Key, v)
	}
	return r, nil
}

func decodeEntry(en Entry, path string) (record.Value, error) {
	kind, ok := record.ParseKind(en.Type)
	if !ok {
		fallback(path, en, "unknown type")
		return record.Opaque(text(en.Value)), nil
	}
	switch kind {
	case record.NullKind:
		if en.Value == nil {
			return record.Null(), nil
		}
	case record.BoolKind:
		if b, ok := en.Value.(bool); ok {
			return record.Bool(b), nil
		}
	case record.Int32Kind:
		if i, ok := toInt64(en.Value); ok && i >= math.MinInt32 && i <= math.MaxInt32 {
			return record.Int32(int32(i)), nil
		}
	case record.Int64Kind:
		if i, ok := toInt64(en.Value); ok {
			return record.Int64(i), nil
		}
	case record.Float32Kind:
		if f, ok := toFloat(en.Value, 32); ok {
			return record.Float32(float32(f)), nil
		}
	case record.Float64Kind:
		if f, ok := toFloat(en.Value, 64); ok {
			return record.Float64(f), nil
		}
	case record.StringKind:
		if s, ok := en.Value.(string); ok {
			return record.String(s), nil
		}
	case record.OpaqueKind:
		return record.Opaque(text(en.Value)), nil
	case record.NestedKind:
		if sub, ok := en.Value.(*Envelope); ok {
			r, err := decode(sub, path)
			if err != nil {
				return record.Value{}, err
			}
			return record.Nested(r), nil
		}
	}
	fallback(path, en, "value does not fit type")
	return record.Opaque(text(en.Value)), nil
}

func fallback(path string, en Entry, why string) {
	if !debug.Decode() {
		return
	}
	debug.Log("envelope: opaque fallback", "path", path, "type", en.Type, "reason", why)
}
