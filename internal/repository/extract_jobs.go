package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID, ownerID uuid.UUID, format string) (*ent.ExtractJob, error)
	GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error)
	FinishTextSuccess(ctx context.Context, jobID uuid.UUID, documentText string, confidence float32, modelParams map[string]any) error
	FinishParseSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, extractedJSON []byte, confidence *float32, needsReview bool, modelName string) error
	FinishRejected(ctx context.Context, jobID uuid.UUID, message string, extractedJSON []byte) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID, ownerID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetOwnerID(ownerID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	doc, err := r.ent.Document.Get(ctx, job.DocumentID)
	if err != nil {
		r.log.Error("failed to load job document", "job_id", jobID, "document_id", job.DocumentID, "err", err)
		return nil, nil, err
	}
	return job, doc, nil
}

func (r *extractJobRepo) FinishTextSuccess(ctx context.Context, jobID uuid.UUID, documentText string, confidence float32, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetDocumentText(documentText).
		SetExtractionConfidence(confidence).
		SetModelParams(params).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text stage done", "job_id", jobID, "text_chars", len(documentText))
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, extractedJSON []byte, confidence *float32, needsReview bool, modelName string) error {
	builder := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetExtractedJSON(extractedJSON).
		SetNeedsReview(needsReview).
		SetModelName(modelName).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed))
	if confidence != nil {
		builder = builder.SetExtractionConfidence(*confidence)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSED)", "job_id", jobID, "invoice_id", invoiceID, "needs_review", needsReview)
	return nil
}

// FinishRejected records a validation rejection. The raw model output is kept
// so a rejected document can be inspected without rerunning extraction.
func (r *extractJobRepo) FinishRejected(ctx context.Context, jobID uuid.UUID, message string, extractedJSON []byte) error {
	builder := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusRejected)).
		SetErrorMessage(message)
	if extractedJSON != nil {
		builder = builder.SetExtractedJSON(extractedJSON)
	}
	_, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(REJECTED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (REJECTED)", "job_id", jobID, "reason", message)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
