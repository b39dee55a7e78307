// Package huggingface provides the text-generation inference client
// used by the coaching pipeline.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitforge/api/internal/infrastructure/config"
	"github.com/fitforge/api/internal/ports/outbound"
	"github.com/fitforge/api/pkg/errors"
)

// fallbackGeneratedText is returned when the endpoint answers 2xx but
// the payload carries no generated text. A successful call with an
// empty body is a degraded answer, not an outage.
const fallbackGeneratedText = "Não foi possível gerar uma resposta no momento. Tente novamente em instantes."

// Client implements outbound.InferenceClient against the Hugging Face
// text-generation inference API.
type Client struct {
	url    string
	apiKey string
	client *http.Client
	logger *zap.Logger
	params outbound.GenerationParams
}

// NewClient creates a new inference client from configuration. The
// endpoint URL, bearer key and timeout all come from the injected
// config, never from process globals, so tests can point each instance
// at a fake server.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	timeout := cfg.Inference.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logger.Info("inference client initialized",
		zap.String("url", cfg.Inference.URL),
		zap.Duration("timeout", timeout),
		zap.Bool("authenticated", cfg.Inference.APIKey != ""))

	return &Client{
		url:    cfg.Inference.URL,
		apiKey: cfg.Inference.APIKey,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("huggingface-client"),
		params: outbound.GenerationParams{
			MaxNewTokens: cfg.Inference.MaxNewTokens,
			Temperature:  cfg.Inference.Temperature,
			TopP:         cfg.Inference.TopP,
			DoSample:     true,
		},
	}
}

// Inference API structures

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Generate sends a prompt to the text-generation endpoint and returns
// the raw generated text. Network failures, timeouts and non-2xx
// responses surface as inference-unavailable errors; the client never
// substitutes fabricated text for a failed call.
func (c *Client) Generate(ctx context.Context, prompt string, params outbound.GenerationParams) (string, error) {
	if params.MaxNewTokens <= 0 {
		params = c.params
	}

	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens: params.MaxNewTokens,
			Temperature:  params.Temperature,
			TopP:         params.TopP,
			DoSample:     params.DoSample,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode inference request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build inference request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("inference request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", errors.NewInferenceUnavailableError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewInferenceUnavailableError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("inference endpoint returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(payload), 200)))
		return "", errors.NewInferenceUnavailableError(
			fmt.Errorf("inference endpoint returned status %d", resp.StatusCode))
	}

	text, ok := extractGeneratedText(payload)
	if !ok {
		c.logger.Warn("inference response missing generated_text",
			zap.String("body", truncate(string(payload), 200)))
		return fallbackGeneratedText, nil
	}

	c.logger.Debug("inference request completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_chars", len(text)))

	return text, nil
}

// extractGeneratedText pulls the generated text out of the response.
// The API answers with an array of candidates; some deployments return
// a bare object instead, so both shapes are accepted.
func extractGeneratedText(payload []byte) (string, bool) {
	var candidates []generateResponse
	if err := json.Unmarshal(payload, &candidates); err == nil && len(candidates) > 0 {
		if text := strings.TrimSpace(candidates[0].GeneratedText); text != "" {
			return text, true
		}
		return "", false
	}

	var single generateResponse
	if err := json.Unmarshal(payload, &single); err == nil {
		if text := strings.TrimSpace(single.GeneratedText); text != "" {
			return text, true
		}
	}

	return "", false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
