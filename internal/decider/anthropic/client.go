// Package anthropic settles games by asking the Anthropic Messages API to narrate a mascot fight.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/mascot-madness/internal/decider"
	"github.com/preston-bernstein/mascot-madness/internal/domain/games"
)

// Config controls how the client reaches the Messages API.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxTokens  int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a live decider backed by the Anthropic Messages API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		model:      resolveModel(cfg.Model),
		maxTokens:  resolveMaxTokens(cfg.MaxTokens),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Decide asks the model who wins the fight between teamA and teamB.
func (c *Client) Decide(ctx context.Context, teamA, teamB string) (games.Outcome, error) {
	if c == nil || c.apiKey == "" {
		return games.Outcome{}, decider.ErrUnavailable
	}

	req, err := c.buildRequest(ctx, teamA, teamB)
	if err != nil {
		return games.Outcome{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.Outcome{}, fmt.Errorf("anthropic: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return games.Outcome{}, c.statusError(resp)
	}

	var payload messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return games.Outcome{}, fmt.Errorf("anthropic: decode response: %w", err)
	}
	if payload.Error != nil {
		return games.Outcome{}, fmt.Errorf("anthropic: api error %s: %s", payload.Error.Type, payload.Error.Message)
	}

	var text strings.Builder
	for _, block := range payload.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return games.Outcome{}, fmt.Errorf("anthropic: response has no text content")
	}
	return parseVerdict(text.String())
}

func (c *Client) buildRequest(ctx context.Context, teamA, teamB string) (*http.Request, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: buildPrompt(teamA, teamB)}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	return req, nil
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))
	var parsed errorResponse
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error != nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &decider.RateLimitError{
			Decider:    deciderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    msg,
		}
	}
	return &decider.StatusError{Decider: deciderName, StatusCode: resp.StatusCode, Body: msg}
}
