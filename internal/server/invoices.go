package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/common"
	"github.com/trulyinvoice/trulyinvoice/internal/entity"
	"github.com/trulyinvoice/trulyinvoice/internal/fields"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
	"github.com/trulyinvoice/trulyinvoice/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewInvoicesService(invoiceRepo repository.InvoiceRepository, logger *slog.Logger) *InvoicesService {
	return &InvoicesService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	oid := strings.TrimSpace(req.GetOwnerId())
	if oid == "" {
		s.logger.Error("list invoices request missing owner_id")
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	ownerID, err := uuid.Parse(oid)
	if err != nil {
		s.logger.Error("invalid owner_id format for list invoices", "owner_id", oid, "error", err)
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}

	var filter repository.ListFilter
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &to
	}
	if ps := strings.TrimSpace(req.GetPaymentStatus()); ps != "" {
		if !constants.IsCanonicalPaymentStatus(ps) {
			return nil, status.Errorf(codes.InvalidArgument, "payment_status must be one of %v", constants.PaymentStatusStrings())
		}
		filter.PaymentStatus = strings.ToLower(ps)
	}

	s.logger.Info("listing invoices", "owner_id", ownerID, "from_date", filter.FromDate, "to_date", filter.ToDate, "payment_status", filter.PaymentStatus)
	invs, err := s.invoiceRepo.ListInvoices(ctx, ownerID, filter)
	if err != nil {
		s.logger.Error("failed to list invoices", "owner_id", ownerID, "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}

	out := make([]*invoicespb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicespb.GetInvoiceRequest) (*invoicespb.GetInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invoice not found")
		}
		s.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get invoice: %v", err)
	}
	return &invoicespb.GetInvoiceResponse{Invoice: utils.ToPBInvoice(inv)}, nil
}

// UpdateInvoice merges the request's raw field patch over the stored record
// and runs the result through validation. The patch never reaches the row
// directly: a patch that would produce an invalid record is rejected whole,
// with every violation listed.
func (s *InvoicesService) UpdateInvoice(ctx context.Context, req *invoicespb.UpdateInvoiceRequest) (*invoicespb.UpdateInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if req.GetFields() == nil || len(req.GetFields().GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "fields patch is required")
	}

	existing, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invoice not found")
		}
		s.logger.Error("failed to load invoice for update", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "get invoice: %v", err)
	}

	raw := recordMapFromEntity(existing)
	patch := req.GetFields().AsMap()
	for k, v := range patch {
		switch k {
		case "owner_id", "source_document_id":
			// linkage is immutable through this API
			return nil, status.Errorf(codes.InvalidArgument, "%s cannot be changed", k)
		}
		raw[k] = v
	}

	rec, err := fields.Validate(raw)
	if err != nil {
		s.logger.Warn("invoice update rejected", "invoice_id", id, "error", err)
		return nil, common.StatusFromValidation(err)
	}

	updated, err := s.invoiceRepo.UpdateFromRecord(ctx, id, rec)
	if err != nil {
		s.logger.Error("failed to update invoice", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "update invoice: %v", err)
	}

	s.logger.Info("invoice updated", "invoice_id", id, "patched_fields", len(patch))
	return &invoicespb.UpdateInvoiceResponse{Invoice: utils.ToPBInvoice(updated)}, nil
}

func (s *InvoicesService) DeleteInvoice(ctx context.Context, req *invoicespb.DeleteInvoiceRequest) (*invoicespb.DeleteInvoiceResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "invoice not found")
		}
		s.logger.Error("failed to delete invoice", "invoice_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "delete invoice: %v", err)
	}
	s.logger.Info("invoice deleted", "invoice_id", id)
	return &invoicespb.DeleteInvoiceResponse{}, nil
}

// recordMapFromEntity renders a stored invoice back into the raw-mapping
// shape validation accepts, so a patch can be merged over it.
func recordMapFromEntity(inv *entity.Invoice) map[string]any {
	rec := fields.Record{
		OwnerID:          inv.OwnerID.String(),
		SourceDocumentID: inv.SourceDocumentID.String(),
		InvoiceNumber:    inv.InvoiceNumber,
		VendorName:       inv.VendorName,
		TotalAmount:      inv.TotalAmount,
		InvoiceDate:      inv.InvoiceDate,
		DueDate:          inv.DueDate,
		PaymentStatus:    inv.PaymentStatus,
		ConfidenceScore:  inv.ConfidenceScore,
		NeedsReview:      inv.NeedsReview,
	}
	for _, li := range inv.LineItems {
		rec.LineItems = append(rec.LineItems, fields.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			Rate:        li.Rate,
			Amount:      li.Amount,
		})
	}
	return rec.AsMap()
}
