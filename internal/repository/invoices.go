package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/invoice"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/lineitem"
	"github.com/trulyinvoice/trulyinvoice/internal/entity"
	"github.com/trulyinvoice/trulyinvoice/internal/fields"
	"github.com/trulyinvoice/trulyinvoice/internal/utils"
)

// UpsertInvoiceRequest wraps parameters for persisting a validated record.
type UpsertInvoiceRequest struct {
	Document *ent.Document
	JobID    uuid.UUID
	Record   *fields.Record
}

// ListFilter narrows ListInvoices by date range and payment status.
type ListFilter struct {
	FromDate      *time.Time
	ToDate        *time.Time
	PaymentStatus string
}

type InvoiceRepository interface {
	ListInvoices(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	UpsertFromRecord(ctx context.Context, request *UpsertInvoiceRequest) (*entity.Invoice, error)
	UpdateFromRecord(ctx context.Context, id uuid.UUID, rec *fields.Record) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(invoice.OwnerID(ownerID))
	if filter.FromDate != nil {
		q = q.Where(invoice.InvoiceDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(invoice.InvoiceDateLTE(*filter.ToDate))
	}
	if filter.PaymentStatus != "" {
		q = q.Where(invoice.PaymentStatus(filter.PaymentStatus))
	}
	invs, err := q.
		WithLineItems(func(q *ent.LineItemQuery) {
			q.Order(lineitem.ByLineIndex())
		}).
		Order(invoice.ByInvoiceDate(), invoice.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "owner_id", ownerID, "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(invs))
	for i, inv := range invs {
		result[i] = utils.ToInvoice(inv)
	}
	return result, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := r.client.Invoice.Query().
		Where(invoice.ID(id)).
		WithLineItems(func(q *ent.LineItemQuery) {
			q.Order(lineitem.ByLineIndex())
		}).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(inv), nil
}

// UpsertFromRecord creates or replaces the invoice keyed by the source
// document, so reprocessing a document never produces duplicate rows.
func (r *invoiceRepository) UpsertFromRecord(ctx context.Context, request *UpsertInvoiceRequest) (*entity.Invoice, error) {
	rec := request.Record
	doc := request.Document

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := tx.Invoice.Query().Where(invoice.DocumentID(doc.ID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	var inv *ent.Invoice
	if existing != nil {
		builder := tx.Invoice.UpdateOneID(existing.ID).
			SetInvoiceNumber(rec.InvoiceNumber).
			SetVendorName(rec.VendorName).
			SetTotalAmount(rec.TotalAmount).
			SetPaymentStatus(string(rec.PaymentStatus)).
			SetNeedsReview(rec.NeedsReview).
			SetNillableInvoiceDate(rec.InvoiceDate).
			SetNillableDueDate(rec.DueDate).
			SetNillableConfidenceScore(rec.ConfidenceScore)
		if rec.InvoiceDate == nil {
			builder = builder.ClearInvoiceDate()
		}
		if rec.DueDate == nil {
			builder = builder.ClearDueDate()
		}
		if rec.ConfidenceScore == nil {
			builder = builder.ClearConfidenceScore()
		}
		inv, err = builder.Save(ctx)
		if err != nil {
			r.logger.Error("failed to update invoice", "invoice_id", existing.ID, "error", err)
			return nil, err
		}
		_, err = tx.LineItem.Delete().Where(lineitem.InvoiceID(inv.ID)).Exec(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		inv, err = tx.Invoice.Create().
			SetOwnerID(doc.OwnerID).
			SetDocumentID(doc.ID).
			SetInvoiceNumber(rec.InvoiceNumber).
			SetVendorName(rec.VendorName).
			SetTotalAmount(rec.TotalAmount).
			SetPaymentStatus(string(rec.PaymentStatus)).
			SetNeedsReview(rec.NeedsReview).
			SetNillableInvoiceDate(rec.InvoiceDate).
			SetNillableDueDate(rec.DueDate).
			SetNillableConfidenceScore(rec.ConfidenceScore).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create invoice", "document_id", doc.ID, "error", err)
			return nil, err
		}
	}

	if err = createLineItems(ctx, tx, inv.ID, rec.LineItems); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, inv.ID)
}

// UpdateFromRecord overwrites an invoice's fields with a revalidated record.
// Ownership and document linkage are never changed here.
func (r *invoiceRepository) UpdateFromRecord(ctx context.Context, id uuid.UUID, rec *fields.Record) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	builder := tx.Invoice.UpdateOneID(id).
		SetInvoiceNumber(rec.InvoiceNumber).
		SetVendorName(rec.VendorName).
		SetTotalAmount(rec.TotalAmount).
		SetPaymentStatus(string(rec.PaymentStatus)).
		SetNeedsReview(rec.NeedsReview).
		SetNillableInvoiceDate(rec.InvoiceDate).
		SetNillableDueDate(rec.DueDate).
		SetNillableConfidenceScore(rec.ConfidenceScore)
	if rec.InvoiceDate == nil {
		builder = builder.ClearInvoiceDate()
	}
	if rec.DueDate == nil {
		builder = builder.ClearDueDate()
	}
	if rec.ConfidenceScore == nil {
		builder = builder.ClearConfidenceScore()
	}
	inv, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice", "invoice_id", id, "error", err)
		return nil, err
	}

	_, err = tx.LineItem.Delete().Where(lineitem.InvoiceID(inv.ID)).Exec(ctx)
	if err != nil {
		return nil, err
	}
	if err = createLineItems(ctx, tx, inv.ID, rec.LineItems); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, inv.ID)
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.LineItem.Delete().Where(lineitem.InvoiceID(id)).Exec(ctx)
	if err != nil {
		return err
	}
	err = tx.Invoice.DeleteOneID(id).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete invoice", "invoice_id", id, "error", err)
		return err
	}
	return tx.Commit()
}

func createLineItems(ctx context.Context, tx *ent.Tx, invoiceID uuid.UUID, items []fields.LineItem) error {
	if len(items) == 0 {
		return nil
	}
	builders := make([]*ent.LineItemCreate, len(items))
	for i, it := range items {
		builders[i] = tx.LineItem.Create().
			SetInvoiceID(invoiceID).
			SetLineIndex(i).
			SetDescription(it.Description).
			SetQuantity(it.Quantity).
			SetRate(it.Rate).
			SetAmount(it.Amount)
	}
	return tx.LineItem.CreateBulk(builders...).Exec(ctx)
}
