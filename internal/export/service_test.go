package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/internal/entity"
	"github.com/trulyinvoice/trulyinvoice/internal/fields"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

type stubInvoiceRepo struct {
	invs       []*entity.Invoice
	lastFilter repository.ListFilter
}

func (s *stubInvoiceRepo) ListInvoices(_ context.Context, _ uuid.UUID, filter repository.ListFilter) ([]*entity.Invoice, error) {
	s.lastFilter = filter
	return s.invs, nil
}

func (s *stubInvoiceRepo) GetByID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) UpsertFromRecord(context.Context, *repository.UpsertInvoiceRequest) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) UpdateFromRecord(context.Context, uuid.UUID, *fields.Record) (*entity.Invoice, error) {
	return nil, nil
}

func (s *stubInvoiceRepo) Delete(context.Context, uuid.UUID) error { return nil }

func sampleInvoices() []*entity.Invoice {
	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	conf := 0.92
	return []*entity.Invoice{
		{
			ID:            uuid.New(),
			InvoiceNumber: "INV-1001",
			VendorName:    "Acme Corp",
			TotalAmount:   1234.56,
			InvoiceDate:   &d1,
			DueDate:       &d2,
			PaymentStatus: constants.PaymentStatusUnpaid,
			ConfidenceScore: &conf,
			LineItems: []entity.LineItem{
				{LineIndex: 0, Description: "Widgets", Quantity: 10, Rate: 100, Amount: 1000},
				{LineIndex: 1, Description: "Shipping", Quantity: 1, Rate: 234.56, Amount: 234.56},
			},
		},
		{
			ID:            uuid.New(),
			InvoiceNumber: "INV-1002",
			VendorName:    fields.UnknownVendor,
			TotalAmount:   0,
			PaymentStatus: constants.PaymentStatusPaid,
			NeedsReview:   true,
		},
	}
}

func TestExportInvoicesXLSX(t *testing.T) {
	repo := &stubInvoiceRepo{invs: sampleInvoices()}
	svc := NewService(repo, slog.Default())

	data, err := svc.ExportInvoicesXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 invoices

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-1001", rows[1][0])
	assert.Equal(t, "Acme Corp", rows[1][1])
	assert.Equal(t, "2025-03-01", rows[1][2])
	assert.Equal(t, "2025-03-31", rows[1][3])
	assert.Equal(t, "unpaid", rows[1][5])

	assert.Equal(t, "INV-1002", rows[2][0])
	assert.Equal(t, fields.UnknownVendor, rows[2][1])
	assert.Equal(t, "", rows[2][2]) // no invoice date

	items, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, items, 3) // header + 2 lines for INV-1001
	assert.Equal(t, "Widgets", items[1][2])
	assert.Equal(t, "Shipping", items[2][2])
}

func TestExportInvoicesXLSXNormalizesWindow(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := NewService(repo, slog.Default())

	from := time.Date(2025, 2, 10, 15, 4, 5, 0, time.Local)
	_, err := svc.ExportInvoicesXLSX(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.FromDate)
	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), *repo.lastFilter.FromDate)
	// from-only windows close at today
	require.NotNil(t, repo.lastFilter.ToDate)
}

func TestExportInvoicesCSV(t *testing.T) {
	repo := &stubInvoiceRepo{invs: sampleInvoices()}
	svc := NewService(repo, slog.Default())

	data, err := svc.ExportInvoicesCSV(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, invoiceHeaders, rows[0])
	assert.Equal(t, "1234.56", rows[1][4])
	assert.Equal(t, "0.92", rows[1][6])
	assert.Equal(t, "true", rows[2][7])
}
