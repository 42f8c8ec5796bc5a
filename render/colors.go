package render

import (
	"strings"

	"github.com/signadot/trec/record"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind record.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	TagColor
	ValueColor
	IdentityColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range record.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, k := range []record.Kind{record.Int32Kind, record.Int64Kind, record.Float32Kind, record.Float64Kind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = record.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = record.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = record.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = record.OpaqueKind
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	colors.Map[Colorable{Kind: record.StringKind, Attr: IdentityColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Attr: InsertColor}] = color.GreenString
	colors.Map[Colorable{Attr: DeleteColor}] = color.RedString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k record.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k record.Kind, a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
