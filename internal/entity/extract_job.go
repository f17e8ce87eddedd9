package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob tracks one extraction attempt over a document.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	DocumentID           uuid.UUID       `json:"document_id"`
	OwnerID              uuid.UUID       `json:"owner_id"`
	InvoiceID            *uuid.UUID      `json:"invoice_id,omitempty"`
	Format               string          `json:"format"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`
	DocumentText         *string         `json:"document_text,omitempty"`
	ExtractedJSON        json.RawMessage `json:"extracted_json,omitempty"`
	ModelName            *string         `json:"model_name,omitempty"`
	ModelParams          json.RawMessage `json:"model_params,omitempty"`
}
