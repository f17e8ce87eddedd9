package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/trulyinvoice/trulyinvoice/internal/entity"
	"github.com/trulyinvoice/trulyinvoice/internal/fields"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

// Service is a tiny façade over the invoice repository that renders exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

var invoiceHeaders = []string{
	"Invoice Number",
	"Vendor",
	"Invoice Date",
	"Due Date",
	"Total Amount",
	"Payment Status",
	"Confidence",
	"Needs Review",
}

var lineItemHeaders = []string{
	"Invoice Number",
	"Line",
	"Description",
	"Quantity",
	"Rate",
	"Amount",
}

// ExportInvoicesXLSX returns an XLSX workbook for the given owner and date
// window. If only from is provided -> from..today (inclusive). If only to is
// provided -> beginning..to (inclusive). If neither -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	invs, err := s.list(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range invoiceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, inv.InvoiceNumber)
		write(2, inv.VendorName)
		write(3, formatDate(inv.InvoiceDate))
		write(4, formatDate(inv.DueDate))
		write(5, inv.TotalAmount)
		write(6, string(inv.PaymentStatus))
		if inv.ConfidenceScore != nil {
			write(7, *inv.ConfidenceScore)
		} else {
			write(7, "")
		}
		write(8, inv.NeedsReview)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20) // invoice number
	_ = f.SetColWidth(sheet, "B", "B", 32) // vendor
	_ = f.SetColWidth(sheet, "C", "D", 14) // dates
	_ = f.SetColWidth(sheet, "E", "E", 14) // total
	_ = f.SetColWidth(sheet, "F", "F", 16) // status
	_ = f.SetColWidth(sheet, "G", "H", 12)

	if err := s.writeLineItemsSheet(f, invs); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"owner_id", ownerID.String(),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeLineItemsSheet(f *excelize.File, invs []*entity.Invoice) error {
	const sheet = "Line Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, h := range lineItemHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	row := 2
	for _, inv := range invs {
		for _, li := range inv.LineItems {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, inv.InvoiceNumber)
			write(2, li.LineIndex+1)
			write(3, li.Description)
			write(4, li.Quantity)
			write(5, li.Rate)
			write(6, li.Amount)
			row++
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	return nil
}

// ExportInvoicesCSV renders the same rows as the XLSX invoices sheet, for
// consumers that want something grep-able.
func (s *Service) ExportInvoicesCSV(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	invs, err := s.list(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(invoiceHeaders); err != nil {
		return nil, err
	}
	for _, inv := range invs {
		conf := ""
		if inv.ConfidenceScore != nil {
			conf = strconv.FormatFloat(*inv.ConfidenceScore, 'f', 2, 64)
		}
		rec := []string{
			inv.InvoiceNumber,
			inv.VendorName,
			formatDate(inv.InvoiceDate),
			formatDate(inv.DueDate),
			strconv.FormatFloat(inv.TotalAmount, 'f', 2, 64),
			string(inv.PaymentStatus),
			conf,
			strconv.FormatBool(inv.NeedsReview),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"owner_id", ownerID.String(),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) list(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]*entity.Invoice, error) {
	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoices.ListInvoices(ctx, ownerID, repository.ListFilter{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	return invs, nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(fields.DateLayout)
}
