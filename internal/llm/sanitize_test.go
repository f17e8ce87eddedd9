package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAndSanitizeJSONRenamesSynonyms(t *testing.T) {
	raw := []byte(`{
		"supplier_name": "Acme Corp",
		"invoice_no": "INV-42",
		"grand_total": "1,499.00",
		"status": "Pending",
		"confidence": 0.8
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "Acme Corp", m["vendor_name"])
	assert.Equal(t, "INV-42", m["invoice_number"])
	assert.Equal(t, "1,499.00", m["total_amount"])
	assert.Equal(t, "Pending", m["payment_status"])
	assert.Equal(t, 0.8, m["confidence_score"])
	assert.NotEmpty(t, dropped)
}

func TestNormalizeAndSanitizeJSONDropsUnknownAndNull(t *testing.T) {
	raw := []byte(`{
		"invoice_number": " INV-1 ",
		"vendor_name": null,
		"due_date": "",
		"internal_reasoning": "the model rambles here",
		"total_amount_confidence": 0.95
	}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, "INV-1", m["invoice_number"])
	assert.NotContains(t, m, "vendor_name")
	assert.NotContains(t, m, "due_date")
	assert.NotContains(t, m, "internal_reasoning")
	// per-field confidences survive for the validator to bounds-check
	assert.Equal(t, 0.95, m["total_amount_confidence"])
}

func TestNormalizeAndSanitizeJSONDoesNotOverwrite(t *testing.T) {
	raw := []byte(`{"total": 10, "total_amount": 20}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 20.0, m["total_amount"])
	assert.NotContains(t, m, "total")
}

func TestSanitizedOutputMatchesSchema(t *testing.T) {
	raw := []byte(`{
		"invoice_no": "INV-9",
		"merchant_name": "Globex",
		"amount_due": "250.00",
		"invoice_date": "2025-08-01",
		"items": [{"description": "Consulting", "quantity": 10, "rate": 25, "amount": 250}],
		"hallucinated_field": true
	}`)

	out, _, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), out))
}

func TestPerFieldConfidencesPassSchema(t *testing.T) {
	raw := []byte(`{
		"invoice_number": "INV-1",
		"vendor_name": "Acme",
		"total_amount": 10,
		"total_amount_confidence": 0.9,
		"vendor_name_confidence": "0.75",
		"invoice_date_confidence": "high"
	}`)

	out, dropped, err := NormalizeAndSanitizeJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.Equal(t, 0.9, m["total_amount_confidence"])
	assert.Equal(t, 0.75, m["vendor_name_confidence"])
	assert.NotContains(t, m, "invoice_date_confidence")
	assert.Contains(t, dropped, "invoice_date_confidence(non-numeric)")

	// the strict schema must admit the surviving confidence keys
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), out))
}

func TestSchemaAdmitsUnsanitizedConfidences(t *testing.T) {
	raw := []byte(`{
		"invoice_number": "INV-2",
		"vendor_name": "Globex",
		"total_amount": 42.5,
		"total_amount_confidence": 0.98
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), raw))
}
