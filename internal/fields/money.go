package fields

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// currencyNoise strips symbols and separators commonly found in extracted
// amount strings ("$1,234.56", "₹ 12 500.00").
var currencyNoise = strings.NewReplacer(
	"$", "", "€", "", "£", "", "₹", "", "¥", "",
	",", "", " ", "", " ", "",
)

// ParseAmount coerces an extracted value into a float64. Numeric types pass
// through; strings are parsed after stripping currency symbols, thousands
// separators and surrounding currency codes ("USD 1,234.56"). The second
// return value is false when the value carries no usable number.
func ParseAmount(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := currencyNoise.Replace(strings.TrimSpace(t))
		s = strings.TrimFunc(s, unicode.IsLetter)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
