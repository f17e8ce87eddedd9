package fields

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// internal diagnostic keys that must never reach storage.
func isInternalKey(k string) bool {
	return k == "error" || k == "error_message" || strings.HasPrefix(k, "_")
}

// Validate turns a raw, untrusted mapping of extracted invoice fields into a
// cleaned Record, or a *ValidationError enumerating every failed rule. It is
// a pure function: single pass, no I/O, no shared state, safe under any
// concurrency.
//
// Rules, in order:
//   - internal diagnostic keys and *_confidence keys are stripped from the
//     business fields (confidences are kept separately, bounds-checked);
//   - every string is trimmed; whitespace-only values are treated as absent;
//   - owner_id, source_document_id and invoice_number are required;
//     vendor_name falls back to UnknownVendor instead of rejecting;
//   - total_amount must be non-negative once parsed; missing or unparseable
//     values default to 0;
//   - payment_status is normalized through the constants table and never
//     causes rejection;
//   - confidences must lie in [0,1] inclusive;
//   - due_date must not precede invoice_date when both are present.
func Validate(raw map[string]any) (*Record, error) {
	var violations []Violation
	clean := make(map[string]any, len(raw))
	fieldConf := make(map[string]float64)

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := raw[k]
		switch {
		case isInternalKey(k):
			// dropped
		case strings.HasSuffix(k, "_confidence"):
			f, ok := toFloat(v)
			if !ok {
				continue
			}
			if f < 0 || f > 1 {
				violations = append(violations, Violation{
					Field: k, Value: v, Kind: KindInvalidNumeric,
					Message: "confidence must be within [0.0, 1.0]",
				})
				continue
			}
			fieldConf[strings.TrimSuffix(k, "_confidence")] = f
		default:
			clean[k] = v
		}
	}

	rec := &Record{}

	ownerID, ok := cleanString(clean, "owner_id")
	if !ok {
		violations = append(violations, required("owner_id", clean["owner_id"]))
	}
	rec.OwnerID = ownerID

	docID, ok := cleanString(clean, "source_document_id")
	if !ok {
		violations = append(violations, required("source_document_id", clean["source_document_id"]))
	}
	rec.SourceDocumentID = docID

	invNumber, ok := cleanString(clean, "invoice_number")
	switch {
	case !ok:
		// The one field we cannot safely default: a wrong invoice number
		// collides with other invoices.
		violations = append(violations, required("invoice_number", clean["invoice_number"]))
	case utf8.RuneCountInString(invNumber) > MaxInvoiceNumberLen:
		violations = append(violations, Violation{
			Field: "invoice_number", Value: invNumber, Kind: KindInvalidLength,
			Message: fmt.Sprintf("must be at most %d characters", MaxInvoiceNumberLen),
		})
	default:
		rec.InvoiceNumber = invNumber
	}

	vendor, ok := cleanString(clean, "vendor_name")
	if !ok {
		vendor = UnknownVendor
	}
	rec.VendorName = vendor

	if v, present := clean["total_amount"]; present {
		amount, parsed := ParseAmount(v)
		switch {
		case !parsed:
			rec.TotalAmount = 0
		case amount < 0:
			violations = append(violations, Violation{
				Field: "total_amount", Value: v, Kind: KindInvalidNumeric,
				Message: "must be non-negative",
			})
		default:
			rec.TotalAmount = amount
		}
	}

	if v, present := clean["confidence_score"]; present {
		if f, parsed := toFloat(v); parsed {
			if f < 0 || f > 1 {
				violations = append(violations, Violation{
					Field: "confidence_score", Value: v, Kind: KindInvalidNumeric,
					Message: "confidence must be within [0.0, 1.0]",
				})
			} else {
				rec.ConfidenceScore = &f
			}
		}
	}

	status, _ := cleanString(clean, "payment_status")
	rec.PaymentStatus = constants.NormalizePaymentStatus(status)

	rec.InvoiceDate = cleanDate(clean, "invoice_date")
	rec.DueDate = cleanDate(clean, "due_date")
	if rec.InvoiceDate != nil && rec.DueDate != nil && rec.DueDate.Before(*rec.InvoiceDate) {
		violations = append(violations, Violation{
			Field: "due_date", Value: rec.DueDate.Format(DateLayout), Kind: KindInvalidDateOrder,
			Message: fmt.Sprintf("must not precede invoice_date %s", rec.InvoiceDate.Format(DateLayout)),
		})
	}

	rec.LineItems = cleanLineItems(clean["line_items"])
	if len(fieldConf) > 0 {
		rec.FieldConfidence = fieldConf
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	// A zero total is valid but signals incomplete extraction; so do the
	// vendor fallback and a low overall confidence.
	rec.NeedsReview = rec.TotalAmount == 0 ||
		rec.VendorName == UnknownVendor ||
		(rec.ConfidenceScore != nil && *rec.ConfidenceScore < ReviewConfidenceThreshold)

	return rec, nil
}

func required(field string, value any) Violation {
	return Violation{Field: field, Value: value, Kind: KindMissingRequired, Message: "is required"}
}

// cleanString trims the value under key. It returns ok=false for missing
// keys, nulls, non-scalar values and strings that trim to empty.
func cleanString(m map[string]any, key string) (string, bool) {
	v, present := m[key]
	if !present {
		return "", false
	}
	return scalarString(v)
}

func scalarString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64, float32, int, int32, int64, bool:
		s = fmt.Sprintf("%v", t)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// cleanDate parses an optional calendar date. Unparseable values are treated
// as absent: upstream date formats drift and a bad optional date should not
// sink an otherwise good record.
func cleanDate(m map[string]any, key string) *time.Time {
	s, ok := cleanString(m, key)
	if !ok {
		return nil
	}
	for _, layout := range []string{DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	return ParseAmount(v)
}

// lineItemSynonyms maps the key spellings extraction models actually emit to
// our line-item fields.
var lineItemSynonyms = map[string]string{
	"description": "description",
	"item":        "description",
	"name":        "description",
	"quantity":    "quantity",
	"qty":         "quantity",
	"rate":        "rate",
	"unit_price":  "rate",
	"price":       "rate",
	"amount":      "amount",
	"total":       "amount",
	"line_total":  "amount",
}

func cleanLineItems(v any) []LineItem {
	rawItems, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]LineItem, 0, len(rawItems))
	for _, ri := range rawItems {
		m, ok := ri.(map[string]any)
		if !ok {
			continue
		}
		var li LineItem
		var hasContent bool
		for k, val := range m {
			target, known := lineItemSynonyms[strings.ToLower(strings.TrimSpace(k))]
			if !known {
				continue
			}
			switch target {
			case "description":
				if s, ok := scalarString(val); ok && li.Description == "" {
					li.Description = s
					hasContent = true
				}
			case "quantity":
				if f, ok := ParseAmount(val); ok {
					li.Quantity = f
					hasContent = true
				}
			case "rate":
				if f, ok := ParseAmount(val); ok {
					li.Rate = f
					hasContent = true
				}
			case "amount":
				if f, ok := ParseAmount(val); ok {
					li.Amount = f
					hasContent = true
				}
			}
		}
		if hasContent {
			items = append(items, li)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
