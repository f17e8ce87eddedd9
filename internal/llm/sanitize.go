package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// keyRenames maps the field spellings extraction models actually emit to
// the schema's keys. Applied before unknown-key removal so near-miss output
// survives instead of being dropped.
var keyRenames = [][2]string{
	{"supplier_name", "vendor_name"},
	{"merchant_name", "vendor_name"},
	{"company_name", "vendor_name"},
	{"invoice_no", "invoice_number"},
	{"invoice_id", "invoice_number"},
	{"amount_due", "total_amount"},
	{"grand_total", "total_amount"},
	{"total", "total_amount"},
	{"date", "invoice_date"},
	{"invoice_dt", "invoice_date"},
	{"status", "payment_status"},
	{"items", "line_items"},
	{"confidence", "confidence_score"},
}

// allowedKeys is the schema property set plus the per-field confidence
// convention. Everything else is removed before validation.
var allowedKeys = map[string]struct{}{
	"invoice_number": {}, "vendor_name": {}, "total_amount": {},
	"invoice_date": {}, "due_date": {}, "payment_status": {},
	"currency_code": {}, "line_items": {}, "confidence_score": {},
}

// NormalizeAndSanitizeJSON
// - Renames known synonyms (supplier_name -> vendor_name, total -> total_amount)
// - Drops null/empty values
// - Removes unknown keys (strict additionalProperties = false friendliness),
//   keeping numeric *_confidence keys for the validator to bounds-check
//   and coercing numeric strings there
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	for _, r := range keyRenames {
		from, to := r[0], r[1]
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	for k, v := range maps.Clone(m) {
		if strings.HasSuffix(k, "_confidence") {
			if f, ok := confidenceNumber(v); ok {
				m[k] = f
			} else {
				delete(m, k)
				dropped = append(dropped, k+"(non-numeric)")
			}
			continue
		}
		if _, ok := allowedKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// confidenceNumber accepts a *_confidence value as a number, coercing
// numeric strings. Bounds checking is the field validator's job.
func confidenceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

// DecodeFields unmarshals sanitized model output into the raw mapping the
// field validator accepts.
func DecodeFields(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return m, nil
}
