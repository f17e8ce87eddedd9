package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

func baseRaw() map[string]any {
	return map[string]any{
		"owner_id":           "u1",
		"source_document_id": "d1",
		"invoice_number":     "INV-001",
		"vendor_name":        "Acme Corp",
		"total_amount":       149.99,
		"payment_status":     "paid",
	}
}

func TestValidateEndToEnd(t *testing.T) {
	raw := map[string]any{
		"owner_id":           "u1",
		"source_document_id": "d1",
		"invoice_number":     "INV-001",
		"vendor_name":        "",
		"total_amount":       0,
		"payment_status":     "pending",
	}

	rec, err := Validate(raw)
	require.NoError(t, err)

	assert.Equal(t, "u1", rec.OwnerID)
	assert.Equal(t, "d1", rec.SourceDocumentID)
	assert.Equal(t, "INV-001", rec.InvoiceNumber)
	assert.Equal(t, UnknownVendor, rec.VendorName)
	assert.Equal(t, 0.0, rec.TotalAmount)
	assert.Equal(t, constants.PaymentStatusUnpaid, rec.PaymentStatus)
	assert.True(t, rec.NeedsReview, "zero total and vendor fallback mark the record for review")
}

func TestValidateIsFixedPoint(t *testing.T) {
	raw := baseRaw()
	raw["invoice_date"] = "2025-10-20"
	raw["due_date"] = "2025-11-19"
	raw["confidence_score"] = 0.91
	raw["total_amount_confidence"] = 0.85
	raw["line_items"] = []any{
		map[string]any{"description": "Widget", "quantity": 2, "rate": "24.50", "amount": 49.00},
	}

	first, err := Validate(raw)
	require.NoError(t, err)

	second, err := Validate(first.AsMap())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateStripsInternalKeys(t *testing.T) {
	raw := baseRaw()
	raw["error"] = "timeout talking to provider"
	raw["error_message"] = "retry later"
	raw["_raw_response"] = map[string]any{"huge": "blob"}

	rec, err := Validate(raw)
	require.NoError(t, err)

	m := rec.AsMap()
	assert.NotContains(t, m, "error")
	assert.NotContains(t, m, "error_message")
	assert.NotContains(t, m, "_raw_response")
}

func TestValidateMissingRequired(t *testing.T) {
	for _, field := range []string{"owner_id", "source_document_id", "invoice_number"} {
		t.Run(field, func(t *testing.T) {
			raw := baseRaw()
			delete(raw, field)

			_, err := Validate(raw)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(KindMissingRequired))
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, field, verr.Violations[0].Field)
		})
	}
}

func TestValidateWhitespaceEqualsAbsent(t *testing.T) {
	rawNull := baseRaw()
	rawNull["invoice_number"] = nil
	rawBlank := baseRaw()
	rawBlank["invoice_number"] = "   "

	_, errNull := Validate(rawNull)
	_, errBlank := Validate(rawBlank)

	var vNull, vBlank *ValidationError
	require.ErrorAs(t, errNull, &vNull)
	require.ErrorAs(t, errBlank, &vBlank)
	require.Len(t, vNull.Violations, 1)
	require.Len(t, vBlank.Violations, 1)
	assert.Equal(t, vNull.Violations[0].Field, vBlank.Violations[0].Field)
	assert.Equal(t, vNull.Violations[0].Kind, vBlank.Violations[0].Kind)
}

func TestValidateVendorNeverEmpty(t *testing.T) {
	for _, v := range []any{nil, "", "   ", "\t\n"} {
		raw := baseRaw()
		raw["vendor_name"] = v

		rec, err := Validate(raw)
		require.NoError(t, err)
		assert.Equal(t, UnknownVendor, rec.VendorName)
	}
}

func TestValidateNegativeAmountRejected(t *testing.T) {
	for _, v := range []any{-1, -0.01, "-1", "-$25.00"} {
		raw := baseRaw()
		raw["total_amount"] = v

		_, err := Validate(raw)
		require.Error(t, err, "total_amount=%v", v)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has(KindInvalidNumeric))
	}
}

func TestValidateAmountCoercion(t *testing.T) {
	cases := map[string]struct {
		in   any
		want float64
	}{
		"plain float":       {149.99, 149.99},
		"currency symbol":   {"$1,234.56", 1234.56},
		"currency code":     {"USD 99.00", 99},
		"rupee":             {"₹ 12,500", 12500},
		"unparseable":       {"n/a", 0},
		"missing defaults0": {nil, 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			raw := baseRaw()
			raw["total_amount"] = tc.in

			rec, err := Validate(raw)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, rec.TotalAmount, 1e-9)
		})
	}
}

func TestValidateConfidenceBounds(t *testing.T) {
	for _, v := range []float64{-0.1, 1.5, 2} {
		raw := baseRaw()
		raw["total_amount_confidence"] = v

		_, err := Validate(raw)
		require.Error(t, err, "confidence=%v", v)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has(KindInvalidNumeric))
	}

	// Boundary inclusive.
	for _, v := range []float64{0.0, 1.0} {
		raw := baseRaw()
		raw["total_amount_confidence"] = v

		rec, err := Validate(raw)
		require.NoError(t, err, "confidence=%v", v)
		assert.Equal(t, v, rec.FieldConfidence["total_amount"])
	}
}

func TestValidateDateOrdering(t *testing.T) {
	raw := baseRaw()
	raw["invoice_date"] = "2025-10-22"
	raw["due_date"] = "2025-10-20"

	_, err := Validate(raw)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(KindInvalidDateOrder))

	// Swapping the two dates makes it pass.
	raw["invoice_date"], raw["due_date"] = raw["due_date"], raw["invoice_date"]
	rec, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-20", rec.InvoiceDate.Format(DateLayout))
	assert.Equal(t, "2025-10-22", rec.DueDate.Format(DateLayout))
}

func TestValidateUnparseableDateTreatedAsAbsent(t *testing.T) {
	raw := baseRaw()
	raw["invoice_date"] = "sometime in October"
	raw["due_date"] = "2025-10-20"

	rec, err := Validate(raw)
	require.NoError(t, err)
	assert.Nil(t, rec.InvoiceDate)
	require.NotNil(t, rec.DueDate)
}

func TestValidateAggregatesAllViolations(t *testing.T) {
	raw := map[string]any{
		"vendor_name":             "Acme",
		"total_amount":            -5,
		"invoice_date":            "2025-10-22",
		"due_date":                "2025-10-20",
		"total_amount_confidence": 1.5,
	}

	_, err := Validate(raw)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// owner_id, source_document_id, invoice_number, negative amount,
	// out-of-range confidence, date ordering: all reported at once.
	assert.Len(t, verr.Violations, 6)
	assert.True(t, verr.Has(KindMissingRequired))
	assert.True(t, verr.Has(KindInvalidNumeric))
	assert.True(t, verr.Has(KindInvalidDateOrder))
}

func TestValidateInvoiceNumberLengthBound(t *testing.T) {
	long := make([]byte, MaxInvoiceNumberLen+1)
	for i := range long {
		long[i] = 'A'
	}
	raw := baseRaw()
	raw["invoice_number"] = string(long)

	_, err := Validate(raw)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(KindInvalidLength))
}

func TestValidateLineItems(t *testing.T) {
	raw := baseRaw()
	raw["line_items"] = []any{
		map[string]any{"description": "  Widget  ", "qty": 2, "unit_price": "24.50", "amount": "$49.00"},
		map[string]any{"item": "Freight", "line_total": 10},
		"not an item",
		map[string]any{"unrelated": true},
	}

	rec, err := Validate(raw)
	require.NoError(t, err)

	require.Len(t, rec.LineItems, 2)
	assert.Equal(t, LineItem{Description: "Widget", Quantity: 2, Rate: 24.50, Amount: 49.00}, rec.LineItems[0])
	assert.Equal(t, LineItem{Description: "Freight", Amount: 10}, rec.LineItems[1])
}

func TestValidateStatusNeverRejects(t *testing.T) {
	for _, s := range []string{"pending", "cancelled", "refunded", "PROCESSING", "Draft", "", "weird-new-status"} {
		raw := baseRaw()
		raw["payment_status"] = s

		rec, err := Validate(raw)
		require.NoError(t, err, "payment_status=%q", s)
		assert.Equal(t, constants.DefaultPaymentStatus, rec.PaymentStatus)
	}
}
