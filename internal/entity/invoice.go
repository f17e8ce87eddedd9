package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// Invoice represents an invoice for data transfer between layers.
type Invoice struct {
	ID               uuid.UUID               `json:"id"`
	OwnerID          uuid.UUID               `json:"owner_id"`
	SourceDocumentID uuid.UUID               `json:"source_document_id"`
	InvoiceNumber    string                  `json:"invoice_number"`
	VendorName       string                  `json:"vendor_name"`
	TotalAmount      float64                 `json:"total_amount"`
	InvoiceDate      *time.Time              `json:"invoice_date,omitempty"`
	DueDate          *time.Time              `json:"due_date,omitempty"`
	PaymentStatus    constants.PaymentStatus `json:"payment_status"`
	ConfidenceScore  *float64                `json:"confidence_score,omitempty"`
	NeedsReview      bool                    `json:"needs_review"`
	LineItems        []LineItem              `json:"line_items,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// LineItem is one invoice line, ordered by LineIndex within its invoice.
type LineItem struct {
	LineIndex   int     `json:"line_index"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}
