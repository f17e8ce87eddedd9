package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invoicespb "github.com/trulyinvoice/trulyinvoice/gen/proto/invoices/v1"
	"github.com/trulyinvoice/trulyinvoice/internal/async"
	"github.com/trulyinvoice/trulyinvoice/internal/common"
	"github.com/trulyinvoice/trulyinvoice/internal/ingest"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

type IngestionService struct {
	invoicespb.UnimplementedIngestionServiceServer
	ingestor ingest.Ingestor
	userRepo repository.UserRepository
	queue    async.Queue
	logger   *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, users repository.UserRepository, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		ingestor: ing,
		queue:    queue,
		userRepo: users,
		logger:   logger,
	}
}

func (s *IngestionService) IngestFile(ctx context.Context, req *invoicespb.IngestFileRequest) (*invoicespb.IngestResponse, error) {
	ownerID, err := s.ownerID(ctx, req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "owner_id", ownerID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "owner_id", ownerID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, ownerID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "owner_id", ownerID, "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	resp := toIngestResponse(r)
	if docID, err := uuid.Parse(r.DocumentID); err == nil {
		job := async.Job{DocumentID: docID, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)}
		if qerr := s.queue.Enqueue(ctx, job); qerr != nil {
			resp.Error = qerr.Error()
		}
	}
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *invoicespb.IngestDirectoryRequest) (*invoicespb.IngestDirectoryResponse, error) {
	ownerID, err := s.ownerID(ctx, req.GetOwnerId())
	if err != nil {
		return nil, err
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "owner_id", ownerID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "owner_id", ownerID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, ownerID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed", "owner_id", ownerID,
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &invoicespb.IngestDirectoryResponse{
		Scanned:      int32(stats.Scanned),
		Matched:      int32(stats.Matched),
		Succeeded:    int32(stats.Succeeded),
		Deduplicated: int32(stats.Deduplicated),
		Failed:       int32(stats.Failed),
		Results:      make([]*invoicespb.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := toIngestResponse(r)
		if r.Err == "" && r.DocumentID != "" {
			if docID, err := uuid.Parse(r.DocumentID); err == nil {
				job := async.Job{DocumentID: docID, SubmittedAt: time.Now(), TraceID: common.RequestIDFromContext(ctx)}
				if qerr := s.queue.Enqueue(ctx, job); qerr != nil {
					item.Error = qerr.Error()
				}
			}
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionService) ownerID(ctx context.Context, raw string) (uuid.UUID, error) {
	oid := strings.TrimSpace(raw)
	if oid == "" {
		s.logger.Error("ingest request missing owner_id")
		return uuid.Nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	ownerID, err := uuid.Parse(oid)
	if err != nil {
		s.logger.Error("invalid owner_id format for ingest", "owner_id", oid, "error", err)
		return uuid.Nil, status.Error(codes.InvalidArgument, "owner_id must be a UUID")
	}
	if exists, _ := s.userRepo.Exists(ctx, ownerID); !exists {
		s.logger.Error("owner not found for ingest", "owner_id", ownerID)
		return uuid.Nil, status.Error(codes.InvalidArgument, "owner not found")
	}
	return ownerID, nil
}

func toIngestResponse(r ingest.IngestionResult) *invoicespb.IngestResponse {
	return &invoicespb.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
