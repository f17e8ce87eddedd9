package pipeline

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/internal/fields"
	"github.com/trulyinvoice/trulyinvoice/internal/llm"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"
)

// Config holds thresholds and behavior flags for the parse stage.
type Config struct {
	// MinConfidence is the deployment review threshold. Records whose
	// overall confidence falls below it are flagged for review even when
	// validation alone would not flag them. It can only tighten the flag,
	// never clear it.
	MinConfidence    float32 // default 0.60
	ArtifactCacheDir string  // default "./tmp" if empty
	ModelName        string
}

type ParseStage struct {
	Logger    *slog.Logger
	Cfg       Config
	Jobs      repository.ExtractJobRepository
	Users     repository.UserRepository
	Invoices  repository.InvoiceRepository
	Extractor llm.FieldExtractor
}

func NewParseStage(
	logger *slog.Logger,
	cfg Config,
	jobs repository.ExtractJobRepository,
	users repository.UserRepository,
	invoices repository.InvoiceRepository,
	fe llm.FieldExtractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = fields.ReviewConfidenceThreshold
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "openai"
	}
	return &ParseStage{
		Logger:    logger,
		Cfg:       cfg,
		Jobs:      jobs,
		Users:     users,
		Invoices:  invoices,
		Extractor: fe,
	}
}

// Run executes the field-extraction stage for an existing TEXT_OK job.
// The model's raw mapping goes through validation before anything touches
// the invoices table; a validation rejection marks the job REJECTED and
// keeps the raw output for inspection.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, doc, err := p.Jobs.GetWithDocument(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}

	owner, err := p.Users.GetByID(ctx, doc.OwnerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load owner: %w", err)
	}

	var docText string
	if job.DocumentText != nil {
		docText = *job.DocumentText
	}
	var prepConf float32
	if job.ExtractionConfidence != nil {
		prepConf = *job.ExtractionConfidence
	}

	req := llm.ExtractRequest{
		DocumentText:     docText,
		FilenameHint:     filepath.Base(doc.SourcePath),
		DefaultCurrency:  owner.DefaultCurrency,
		PrepConfidence:   prepConf,
		FilePath:         doc.SourcePath,
		ContentHashHex:   hex.EncodeToString(doc.ContentHash),
		ArtifactCacheDir: p.Cfg.ArtifactCacheDir,
	}

	p.Logger.Info("parse.stage.start",
		"job_id", job.ID, "document_id", doc.ID,
		"text_chars", len(docText), "prep_confidence", prepConf)

	raw, rawJSON, err := p.Extractor.ExtractFields(ctx, req)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return uuid.Nil, fmt.Errorf("llm extract: %w", err)
	}

	// The document link and ownership are authoritative from ingest; the
	// model never decides them.
	raw["owner_id"] = doc.OwnerID.String()
	raw["source_document_id"] = doc.ID.String()

	rec, err := fields.Validate(raw)
	if err != nil {
		var verr *fields.ValidationError
		if errors.As(err, &verr) {
			_ = p.Jobs.FinishRejected(ctx, job.ID, verr.Error(), rawJSON)
			p.Logger.Warn("parse.stage.rejected", "job_id", job.ID, "violations", len(verr.Violations))
			return uuid.Nil, err
		}
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return uuid.Nil, err
	}

	if rec.ConfidenceScore != nil && *rec.ConfidenceScore < float64(p.Cfg.MinConfidence) {
		rec.NeedsReview = true
	}

	inv, err := p.Invoices.UpsertFromRecord(ctx, &repository.UpsertInvoiceRequest{
		Document: doc,
		JobID:    job.ID,
		Record:   rec,
	})
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return uuid.Nil, fmt.Errorf("upsert invoice: %w", err)
	}

	var conf *float32
	if rec.ConfidenceScore != nil {
		c := float32(*rec.ConfidenceScore)
		conf = &c
	}
	if err := p.Jobs.FinishParseSuccess(ctx, job.ID, inv.ID, rawJSON, conf, rec.NeedsReview, p.Cfg.ModelName); err != nil {
		return inv.ID, err
	}

	p.Logger.Info("parse.stage.ok",
		"job_id", job.ID, "invoice_id", inv.ID,
		"vendor", rec.VendorName, "invoice_number", rec.InvoiceNumber,
		"total", rec.TotalAmount, "payment_status", string(rec.PaymentStatus),
		"needs_review", rec.NeedsReview)
	return inv.ID, nil
}
