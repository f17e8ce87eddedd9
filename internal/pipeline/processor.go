package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates text extraction then field parse for one document.
type Processor struct {
	Logger *slog.Logger
	Text   *TextStage
	Parse  *ParseStage
}

func NewProcessor(logger *slog.Logger, text *TextStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse}
}

// ProcessDocument runs the text stage for a document (creating and advancing
// its extract_job), then the parse stage on the resulting job. Returns the
// job ID from the text stage even when a later stage fails, so callers can
// point at the failed job.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.Text.Run(ctx, documentID)
	if err != nil {
		p.Logger.Error("processor.text.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.text.ok",
		"document_id", documentID,
		"job_id", jobID,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)

	invoiceID, err := p.Parse.Run(ctx, jobID)
	if err != nil {
		p.Logger.Error("processor.parse.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.parse.ok", "job_id", jobID, "invoice_id", invoiceID)
	return jobID, nil
}
