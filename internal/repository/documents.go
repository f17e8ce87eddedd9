package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	entdoc "github.com/trulyinvoice/trulyinvoice/gen/ent/document"
)

// CreateDocumentArgs carries file metadata captured at ingest time.
type CreateDocumentArgs struct {
	OwnerID    uuid.UUID
	SourcePath string
	Filename   string
	FileExt    string
	FileSize   int
	PageCount  int
	Hash       []byte
	UploadedAt time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, args CreateDocumentArgs) (*ent.Document, error)
	UpsertByHash(ctx context.Context, args CreateDocumentArgs) (*ent.Document, bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(
			entdoc.OwnerID(ownerID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, args CreateDocumentArgs) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetOwnerID(args.OwnerID).
		SetSourcePath(args.SourcePath).
		SetFilename(args.Filename).
		SetFileExt(args.FileExt).
		SetFileSize(args.FileSize).
		SetPageCount(args.PageCount).
		SetContentHash(args.Hash).
		SetUploadedAt(args.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "owner_id", args.OwnerID, "source_path", args.SourcePath, "filename", args.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash dedupes on (owner_id, content_hash): re-ingesting the same
// bytes returns the existing row and reports it as a duplicate.
func (r *documentRepo) UpsertByHash(ctx context.Context, args CreateDocumentArgs) (*ent.Document, bool, error) {
	if existing, err := r.GetByOwnerAndHash(ctx, args.OwnerID, args.Hash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up document by hash", "owner_id", args.OwnerID, "filename", args.Filename, "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, args)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
