package utils

import (
	"fmt"
	"time"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/entity"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// ParseYMD parses a YYYY-MM-DD string into a midnight-UTC time to match
// DATE column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func formatYMD(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// ToInvoice converts an Ent row (with line items loaded, if any) to the
// transfer entity.
func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:               e.ID,
		OwnerID:          e.OwnerID,
		SourceDocumentID: e.DocumentID,
		InvoiceNumber:    e.InvoiceNumber,
		VendorName:       e.VendorName,
		TotalAmount:      e.TotalAmount,
		InvoiceDate:      e.InvoiceDate,
		DueDate:          e.DueDate,
		PaymentStatus:    constants.PaymentStatus(e.PaymentStatus),
		ConfidenceScore:  e.ConfidenceScore,
		NeedsReview:      e.NeedsReview,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	for _, li := range e.Edges.LineItems {
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			LineIndex:   li.LineIndex,
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
		})
	}
	return inv
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		PageCount:   e.PageCount,
		UploadedAt:  e.UploadedAt,
	}
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:              e.ID,
		Email:           e.Email,
		Name:            e.Name,
		DefaultCurrency: e.DefaultCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToPBUser(u *entity.User) *invoicespb.User {
	return &invoicespb.User{
		Id:              u.ID.String(),
		Email:           u.Email,
		Name:            u.Name,
		DefaultCurrency: u.DefaultCurrency,
		CreatedAt:       u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	out := &invoicespb.Invoice{
		Id:               inv.ID.String(),
		OwnerId:          inv.OwnerID.String(),
		SourceDocumentId: inv.SourceDocumentID.String(),
		InvoiceNumber:    inv.InvoiceNumber,
		VendorName:       inv.VendorName,
		TotalAmount:      fmt.Sprintf("%.2f", inv.TotalAmount),
		InvoiceDate:      formatYMD(inv.InvoiceDate),
		DueDate:          formatYMD(inv.DueDate),
		PaymentStatus:    string(inv.PaymentStatus),
		NeedsReview:      inv.NeedsReview,
		CreatedAt:        inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if inv.ConfidenceScore != nil {
		out.ConfidenceScore = *inv.ConfidenceScore
		out.HasConfidenceScore = true
	}
	for _, li := range inv.LineItems {
		out.LineItems = append(out.LineItems, &invoicespb.LineItem{
			LineIndex:   int32(li.LineIndex),
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
		})
	}
	return out
}
