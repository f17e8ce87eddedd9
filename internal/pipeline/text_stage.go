package pipeline

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/internal/doctext"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

// TextResult is the stage 1 summary handed to callers and logs.
type TextResult struct {
	Text       string
	Pages      int
	Confidence float32
	// PreparedImage is set for image documents: the cached, resized copy the
	// vision fallback will attach at parse time.
	PreparedImage string
}

type TextStage struct {
	Docs     repository.DocumentRepository
	Jobs     repository.ExtractJobRepository
	CacheDir string
	Logger   *slog.Logger
}

func NewTextStage(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, cacheDir string, logger *slog.Logger) *TextStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheDir == "" {
		cacheDir = "./tmp"
	}
	return &TextStage{Docs: docs, Jobs: jobs, CacheDir: cacheDir, Logger: logger}
}

// Run starts an extract_job for the document and extracts its text layer.
// PDFs get native text extraction; images only get prepared for the vision
// path, leaving the text empty with zero confidence so parse attaches the
// image. Returns the job ID and the extraction summary.
func (s *TextStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, TextResult, error) {
	doc, err := s.Docs.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, TextResult{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	job, err := s.Jobs.Start(ctx, doc.ID, doc.OwnerID, string(format))
	if err != nil {
		return uuid.Nil, TextResult{}, err
	}

	var res TextResult
	switch format {
	case constants.PDF:
		pdfRes, err := doctext.PDFTextFile(doc.SourcePath)
		if err != nil {
			_ = s.Jobs.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, TextResult{}, fmt.Errorf("pdf text: %w", err)
		}
		res = TextResult{Text: pdfRes.Text, Pages: pdfRes.Pages, Confidence: pdfRes.Confidence}
	case constants.IMAGE:
		prepared, err := doctext.PrepareImage(doc.SourcePath, s.CacheDir, hex.EncodeToString(doc.ContentHash))
		if err != nil {
			_ = s.Jobs.FinishFailure(ctx, job.ID, err.Error())
			return job.ID, TextResult{}, fmt.Errorf("prepare image: %w", err)
		}
		res = TextResult{Pages: 1, PreparedImage: prepared}
	default:
		err := fmt.Errorf("unsupported format: %s", doc.FileExt)
		_ = s.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, TextResult{}, err
	}

	params := map[string]any{"pages": res.Pages}
	if res.PreparedImage != "" {
		params["prepared_image"] = res.PreparedImage
	}
	if err := s.Jobs.FinishTextSuccess(ctx, job.ID, res.Text, res.Confidence, params); err != nil {
		return job.ID, res, err
	}

	s.Logger.Info("text.stage.ok",
		"document_id", documentID, "job_id", job.ID,
		"format", format, "pages", res.Pages,
		"text_chars", len(res.Text), "confidence", res.Confidence)
	return job.ID, res, nil
}
