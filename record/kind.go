package record

import "fmt"

// Kind is the tag of a Value. Kinds are declared in comparison rank order.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	StringKind
	OpaqueKind
	NestedKind
)

var kindNames = map[Kind]string{
	NullKind:    "Null",
	BoolKind:    "Bool",
	Int32Kind:   "Int32",
	Int64Kind:   "Int64",
	Float32Kind: "Float32",
	Float64Kind: "Float64",
	StringKind:  "String",
	OpaqueKind:  "Opaque",
	NestedKind:  "Nested",
}

var kindsByName = map[string]Kind{
	"Null":    NullKind,
	"Bool":    BoolKind,
	"Int32":   Int32Kind,
	"Int64":   Int64Kind,
	"Float32": Float32Kind,
	"Float64": Float64Kind,
	"String":  StringKind,
	"Opaque":  OpaqueKind,
	"Nested":  NestedKind,
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// ParseKind returns the Kind named s. Names are case sensitive.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindsByName[s]
	return k, ok
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unrecognized kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := ParseKind(string(d))
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		Int32Kind,
		Int64Kind,
		Float32Kind,
		Float64Kind,
		StringKind,
		OpaqueKind,
		NestedKind,
	}
}

func (k Kind) IsNumber() bool {
	switch k {
	case Int32Kind, Int64Kind, Float32Kind, Float64Kind:
		return true
	default:
		return false
	}
}
