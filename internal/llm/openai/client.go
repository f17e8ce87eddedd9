package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/internal/llm"
)

// Client implements llm.FieldExtractor against the chat/completions API.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// ExtractFields sends the document text (and, when text confidence is low,
// the document image) and returns the sanitized raw field mapping. The
// mapping is untrusted: callers run it through fields.Validate.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (map[string]any, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.DocumentText),
		"has_file_path", req.FilePath != "",
		"prep_confidence", req.PrepConfidence,
	)

	schema := llm.BuildInvoiceJSONSchema()
	userContent := c.buildUserContent(req, rid)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt(req)},
			{"role": "user", "content": userContent},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		if !c.cfg.Lenient {
			return nil, content, fmt.Errorf("model output rejected: %w", err)
		}
		// Sanitize near-miss output and re-validate once.
		cleaned, dropped, sErr := llm.NormalizeAndSanitizeJSON(content, c.log)
		if sErr != nil {
			return nil, content, fmt.Errorf("model output rejected: %w", err)
		}
		if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
			c.log.Error("llm.extract.schema_reject",
				"req_id", rid, "dropped", dropped, "error", err)
			return nil, content, fmt.Errorf("model output rejected after sanitize: %w", err)
		}
		content = cleaned
	}

	fieldsMap, err := llm.DecodeFields(content)
	if err != nil {
		return nil, content, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"keys", len(fieldsMap),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return fieldsMap, content, nil
}

// buildUserContent returns either a plain text prompt or a multi-part
// message with the document image attached.
func (c *Client) buildUserContent(req llm.ExtractRequest, rid string) any {
	text := llm.BuildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."
	attach, dataURL, mimeType := llm.ShouldAttachImage(req)
	if !attach {
		return text
	}
	c.log.Info("llm.extract.attach_image", "req_id", rid, "mime", mimeType)
	return []map[string]any{
		{"type": "text", "text": text},
		{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
