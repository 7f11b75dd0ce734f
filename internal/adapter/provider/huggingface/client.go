// Package huggingface calls a Hugging Face Inference API text-generation
// model over plain HTTP.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrUnexpectedResponse is returned when the body is valid JSON but carries
// no generated text.
var ErrUnexpectedResponse = errors.New("huggingface: unexpected response shape")

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 512

// Config holds the inference endpoint settings.
type Config struct {
	URL         string
	APIKey      string
	MaxLength   int
	Temperature float64
	Timeout     time.Duration
}

// Client generates text with a single POST per call. It never retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. A zero timeout falls back to 15s.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "huggingface"),
	}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

type generation struct {
	GeneratedText *string `json:"generated_text"`
	Error         string  `json:"error"`
}

// Generate sends prompt to the model and returns the trimmed generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxLength:   c.cfg.MaxLength,
			Temperature: c.cfg.Temperature,
			DoSample:    true,
		},
	})
	if err != nil {
		return "", fmt.Errorf("huggingface: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("huggingface: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	c.log.DebugContext(ctx, "huggingface request", slog.Int("prompt_length", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "huggingface non-200 response",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return "", fmt.Errorf("huggingface: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("huggingface: read body: %w", err)
	}

	text, err := parseGeneration(body)
	if err != nil {
		return "", err
	}

	c.log.DebugContext(ctx, "huggingface response", slog.Int("length", len(text)))
	return text, nil
}

// parseGeneration accepts either [{"generated_text": ...}] or
// {"generated_text": ...}.
func parseGeneration(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", fmt.Errorf("huggingface: empty body: %w", ErrUnexpectedResponse)
	}

	var g generation
	switch body[0] {
	case '[':
		var list []generation
		if err := json.Unmarshal(body, &list); err != nil {
			return "", fmt.Errorf("huggingface: decode json: %w", err)
		}
		if len(list) == 0 {
			return "", fmt.Errorf("huggingface: empty list: %w", ErrUnexpectedResponse)
		}
		g = list[0]
	case '{':
		if err := json.Unmarshal(body, &g); err != nil {
			return "", fmt.Errorf("huggingface: decode json: %w", err)
		}
	default:
		return "", fmt.Errorf("huggingface: body is not a JSON list or object: %w", ErrUnexpectedResponse)
	}

	if g.Error != "" {
		return "", fmt.Errorf("huggingface: model error %q: %w", g.Error, ErrUnexpectedResponse)
	}
	if g.GeneratedText == nil {
		return "", fmt.Errorf("huggingface: missing generated_text: %w", ErrUnexpectedResponse)
	}
	return strings.TrimSpace(*g.GeneratedText), nil
}
