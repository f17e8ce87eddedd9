package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// maxSendAttempts bounds the retry loop for rate-limited or flaky upstream
// endpoints.
const maxSendAttempts = 3

// SendJSON sends a JSON request to a full URL with optional headers and
// returns the raw response body. It does not assume any provider; callers
// decide the URL and headers. 429 and 5xx responses are retried with
// exponential backoff, honoring ctx cancellation between attempts.
func SendJSON(ctx context.Context, client *http.Client, url string, body any, headers map[string]string, logger *slog.Logger) ([]byte, int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if client == nil {
		client = &http.Client{Timeout: 45 * time.Second}
	}

	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		logger.Error("llm.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	var raw []byte
	var code int
	backoff := time.Second
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		raw, code, err = sendOnce(ctx, client, url, bs, headers, reqID, logger)
		if err == nil {
			logger.Info("llm.http.response",
				"req_id", reqID,
				"status", code,
				"bytes", len(raw),
				"attempt", attempt,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return raw, code, nil
		}
		if !retriable(code) || attempt == maxSendAttempts {
			break
		}
		logger.Warn("llm.http.retrying", "req_id", reqID, "status", code, "attempt", attempt, "backoff", backoff)
		select {
		case <-ctx.Done():
			return raw, code, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	logger.Error("llm.http.send_error",
		"req_id", reqID, "status", code, "error", err,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return raw, code, err
}

func sendOnce(ctx context.Context, client *http.Client, url string, body []byte, headers map[string]string, reqID string, logger *slog.Logger) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	// Default headers; allow caller overrides.
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(rc io.ReadCloser) {
		if err := rc.Close(); err != nil {
			logger.Warn("llm.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}

func retriable(code int) bool {
	return code == http.StatusTooManyRequests || code/100 == 5 || code == 0
}
