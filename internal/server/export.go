package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/export"
	"github.com/trulyinvoice/trulyinvoice/internal/utils"
)

type ExportServer struct {
	invoicespb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicespb.ExportInvoicesRequest) (*invoicespb.ExportInvoicesResponse, error) {
	oid := strings.TrimSpace(req.GetOwnerId())
	ownerID, err := uuid.Parse(oid)
	if err != nil || oid == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	stamp := time.Now().UTC().Format("20060102")
	switch req.GetFormat() {
	case invoicespb.ExportInvoicesRequest_FORMAT_CSV:
		data, err := s.svc.ExportInvoicesCSV(ctx, ownerID, fromPtr, toPtr)
		if err != nil {
			s.logger.Error("export.csv.failed", "owner_id", oid, "err", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &invoicespb.ExportInvoicesResponse{
			Data:        data,
			Filename:    fmt.Sprintf("invoices-%s.csv", stamp),
			ContentType: "text/csv",
		}, nil
	case invoicespb.ExportInvoicesRequest_FORMAT_XLSX, invoicespb.ExportInvoicesRequest_FORMAT_UNSPECIFIED:
		data, err := s.svc.ExportInvoicesXLSX(ctx, ownerID, fromPtr, toPtr)
		if err != nil {
			s.logger.Error("export.xlsx.failed", "owner_id", oid, "err", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &invoicespb.ExportInvoicesResponse{
			Data:        data,
			Filename:    fmt.Sprintf("invoices-%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	default:
		return nil, status.Error(codes.InvalidArgument, "unsupported export format")
	}
}
