// Package ollama is the self-hosted provider option. Ollama has no
// response-schema enforcement, so the client leans on format=json plus the
// strict-output section of the prompt.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "qwen3"
	defaultTimeout = 5 * time.Minute
)

type Config struct {
	BaseURL string
	Model   string
	Token   string // Bearer token for Ollama Cloud (empty = no auth)
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ModelName() string {
	return c.model
}

func (c *Client) GenerateReport(ctx context.Context, prompt string) ([]byte, error) {
	payload := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a cloud cost auditing engine. Respond with a single JSON object and nothing else."},
			{"role": "user", "content": prompt},
		},
		"format": "json",
		"stream": false,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("ollama chat: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ollama chat: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, body)
	}

	var parsed struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("ollama chat decode: %w", err)
	}
	if parsed.Message.Content == "" {
		return nil, fmt.Errorf("ollama chat: empty response")
	}

	return []byte(parsed.Message.Content), nil
}
