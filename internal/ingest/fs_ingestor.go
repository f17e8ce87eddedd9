package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

// FSIngestor reads documents from the local filesystem.
type FSIngestor struct {
	users  repository.UserRepository
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewFSIngestor(users repository.UserRepository, docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	return &FSIngestor{
		users:  users,
		docs:   docs,
		logger: logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, ownerID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	exists, err := i.users.Exists(ctx, ownerID)
	if err != nil {
		return out, fmt.Errorf("check owner: %w", err)
	}
	if !exists {
		return out, fmt.Errorf("owner %s not found", ownerID)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return out, fmt.Errorf("stat: %w", err)
	}
	if info.Size() > constants.MaxUploadBytes {
		return out, fmt.Errorf("file is %d bytes, max is %d", info.Size(), constants.MaxUploadBytes)
	}

	pageCount := 1
	if constants.MapExtToFormat(ext) == constants.PDF {
		pageCount, err = PDFPageCount(abs)
		if err != nil {
			i.logger.Warn("ingest.pdf.rejected", "path", abs, "error", err)
			return out, err
		}
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.logger.Warn("close file error", "path", abs, "error", cerr)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	row, dedup, err := i.docs.UpsertByHash(ctx, repository.CreateDocumentArgs{
		OwnerID:    ownerID,
		SourcePath: abs,
		Filename:   filepath.Base(abs),
		FileExt:    ext,
		FileSize:   int(info.Size()),
		PageCount:  pageCount,
		Hash:       sum,
		UploadedAt: now,
	})
	if err != nil {
		return out, err
	}

	out = IngestionResult{
		SourcePath:   row.SourcePath,
		DocumentID:   row.ID.String(),
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		FileExt:      row.FileExt,
		PageCount:    row.PageCount,
		UploadedAt:   row.UploadedAt,
	}
	i.logger.Info("ingest.file.ok", "path", abs, "document_id", out.DocumentID, "deduplicated", dedup)
	return out, nil
}

// IngestDirectory walks root, skips hidden entries if requested, and calls
// IngestPath for each matching file. Returns per-file results plus aggregate
// stats. Per-file failures are recorded, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, ownerID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(constants.NormalizeExt(filepath.Ext(path))) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, ownerID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	i.logger.Info("ingest.dir.done", "root", root,
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "deduplicated", stats.Deduplicated, "failed", stats.Failed)
	return results, stats, nil
}
