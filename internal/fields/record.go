package fields

import (
	"time"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// UnknownVendor is stored whenever extraction could not produce a vendor
// name. The invoices vendor_name column is NOT NULL; this sentinel keeps the
// constraint satisfied without rejecting the record.
const UnknownVendor = "Unknown Vendor"

// MaxInvoiceNumberLen bounds invoice_number after trimming.
const MaxInvoiceNumberLen = 100

// ReviewConfidenceThreshold marks records for manual review when overall
// extraction confidence falls below it.
const ReviewConfidenceThreshold = 0.60

// DateLayout is the calendar-date format used across the API and storage.
const DateLayout = "2006-01-02"

// LineItem is one cleaned invoice line.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// Record is a cleaned, normalized invoice record safe to persist. It is the
// only shape the repository layer accepts; nothing writes a row without
// passing through Validate first.
type Record struct {
	OwnerID          string
	SourceDocumentID string
	InvoiceNumber    string
	VendorName       string
	TotalAmount      float64
	InvoiceDate      *time.Time
	DueDate          *time.Time
	PaymentStatus    constants.PaymentStatus
	ConfidenceScore  *float64
	FieldConfidence  map[string]float64
	LineItems        []LineItem

	// NeedsReview flags records that validated but look incomplete: a zero
	// total, a vendor fallback, or low extraction confidence.
	NeedsReview bool
}

// AsMap renders the record back into the raw-mapping shape Validate accepts.
// Validate(r.AsMap()) reproduces r: validation is a fixed point once applied
// once. The update API relies on this to re-validate patched records.
func (r *Record) AsMap() map[string]any {
	m := map[string]any{
		"owner_id":           r.OwnerID,
		"source_document_id": r.SourceDocumentID,
		"invoice_number":     r.InvoiceNumber,
		"vendor_name":        r.VendorName,
		"total_amount":       r.TotalAmount,
		"payment_status":     string(r.PaymentStatus),
	}
	if r.InvoiceDate != nil {
		m["invoice_date"] = r.InvoiceDate.Format(DateLayout)
	}
	if r.DueDate != nil {
		m["due_date"] = r.DueDate.Format(DateLayout)
	}
	if r.ConfidenceScore != nil {
		m["confidence_score"] = *r.ConfidenceScore
	}
	for field, c := range r.FieldConfidence {
		m[field+"_confidence"] = c
	}
	if len(r.LineItems) > 0 {
		items := make([]any, len(r.LineItems))
		for i, li := range r.LineItems {
			items[i] = map[string]any{
				"description": li.Description,
				"quantity":    li.Quantity,
				"rate":        li.Rate,
				"amount":      li.Amount,
			}
		}
		m["line_items"] = items
	}
	return m
}
