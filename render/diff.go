package render

import (
	"strings"

	"github.com/signadot/trec/record"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff from a to b of their sorted renderings. Lines
// only in a start with "- ", lines only in b with "+ " and common lines
// with two spaces. Equal records give "".
func Diff(a, b *record.Record, opts ...Option) string {
	if record.Equal(a, b) {
		return ""
	}
	s := &state{}
	for _, opt := range opts {
		opt(s)
	}
	plain := []Option{Sorted(true)}
	from, to := String(a, plain...), String(b, plain...)

	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)

	res := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix, attr := "  ", ColorAttr(-1)
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix, attr = "- ", DeleteColor
		case diffpatch.DiffInsert:
			prefix, attr = "+ ", InsertColor
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + line
			if attr >= 0 {
				line = s.colors.Color(record.NullKind, attr, strings.TrimSuffix(line, "\n")) + "\n"
			}
			res.WriteString(line)
		}
	}
	return res.String()
}
