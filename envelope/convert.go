package envelope

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toInt64 reads v as an integer. Floats and number literals are accepted
// only when integral and in range.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return uintToInt64(uint64(x))
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return uintToInt64(x)
	case float32:
		return floatToInt64(float64(x))
	case float64:
		return floatToInt64(x)
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return floatToInt64(f)
		}
	}
	return 0, false
}

func uintToInt64(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// toFloat reads v as a float of the given bit size. The strings NaN, +Inf,
// Inf and -Inf name the non-finite values text formats cannot express;
// other strings are accepted when they parse as a float.
// Finite values that overflow the bit size do not fit.
func toFloat(v any, bits int) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float32:
		f = float64(x)
	case float64:
		f = x
	case json.Number:
		g, err := strconv.ParseFloat(string(x), bits)
		if err != nil {
			return 0, false
		}
		f = g
	case string:
		if g, ok := nonFinite(x); ok {
			return g, true
		}
		// go-yaml reads exponent forms without a point, like 1e-05, as strings
		g, err := strconv.ParseFloat(x, bits)
		if err != nil {
			return 0, false
		}
		f = g
	default:
		i, ok := toInt64(v)
		if !ok {
			return 0, false
		}
		f = float64(i)
	}
	if bits == 32 && !math.IsInf(f, 0) && math.IsInf(float64(float32(f)), 0) {
		return 0, false
	}
	return f, true
}

func nonFinite(s string) (float64, bool) {
	switch s {
	case "NaN":
		return math.NaN(), true
	case "+Inf", "Inf":
		return math.Inf(1), true
	case "-Inf":
		return math.Inf(-1), true
	}
	return 0, false
}

// finiteOr returns f, or its text form when f is NaN or infinite.
func finiteOr(f float64) (float64, string, bool) {
	switch {
	case math.IsNaN(f):
		return 0, "NaN", false
	case math.IsInf(f, 1):
		return 0, "+Inf", false
	case math.IsInf(f, -1):
		return 0, "-Inf", false
	}
	return f, "", true
}

// text is the textual form of a decoded or native value, used for the
// Opaque fallback.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case json.Number:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case *Envelope:
		d, err := x.MarshalJSON()
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(d)
	case []any:
		return treeText(x)
	}
	if _, ok := asFields(v); ok {
		return treeText(v)
	}
	return fmt.Sprint(v)
}

func treeText(v any) string {
	var b strings.Builder
	if err := writeTreeJSON(&b, v); err != nil {
		return fmt.Sprint(v)
	}
	return b.String()
}

func formatFloat(f float64, bits int) string {
	if _, s, ok := finiteOr(f); !ok {
		return s
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
