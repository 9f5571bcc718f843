package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spacesedan/sentiview/internal/models"
)

// ProxyClient is the form's side of the conversation: it calls this
// service's own /api/predict.
type ProxyClient struct {
	Client  *http.Client
	BaseURL string
}

func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		Client:  &http.Client{},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *ProxyClient) Analyze(ctx context.Context, input models.AnalysisRequest) (models.AnalysisResult, error) {
	var result models.AnalysisResult

	body, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+API_PREDICT_PATH, bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := p.Client.Do(req)
	if err != nil {
		return result, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return result, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.AnalysisResult{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result, nil
}
