package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// InferenceClient talks to the external sentiment backend. It holds no state
// between calls apart from the underlying connection pool.
type InferenceClient struct {
	Client  *http.Client
	baseURL func() string
}

// NewInferenceClient resolves the backend base URL through baseURL on every
// call. The HTTP client has no timeout of its own.
func NewInferenceClient(baseURL func() string) *InferenceClient {
	return &InferenceClient{
		Client:  &http.Client{},
		baseURL: baseURL,
	}
}

// Predict forwards a JSON payload to {baseURL}/predict and returns the raw
// JSON the backend answered with. Any non-2xx answer is an error and its body
// is dropped.
func (c *InferenceClient) Predict(ctx context.Context, payload []byte) (json.RawMessage, error) {
	var body bytes.Buffer
	if err := json.Compact(&body, payload); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	endpoint := c.baseURL() + PREDICT_PATH
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("[InferenceClient] Backend answered with a non-success status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if !json.Valid(respBody) {
		slog.Warn("[InferenceClient] Backend answered with invalid JSON",
			slog.String("endpoint", endpoint),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, ErrInvalidResponse
	}

	slog.Debug("[InferenceClient] Prediction request successful",
		slog.String("endpoint", endpoint),
		slog.Duration("elapsed", time.Since(start)))

	return json.RawMessage(respBody), nil
}

// HealthCheck reports whether the backend answers at all. Flask-style
// backends have no health route, so anything below 500 on / counts.
func (c *InferenceClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
