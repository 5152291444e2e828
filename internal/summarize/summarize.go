// Package summarize optionally generates a one-line commit description
// from the set of changed paths, via the Anthropic API. It is grounded on
// the teacher's internal/compact.HaikuClient: same template/retry/backoff
// shape and the same ANTHROPIC_API_KEY environment variable, adapted from
// issue-summarization to commit-description generation.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Describer generates a short description for a set of changed paths.
// Implementations must be best-effort: callers never fail an operation
// because a Describer returned an error.
type Describer interface {
	Describe(ctx context.Context, paths []string) (string, error)
}

const (
	defaultModel   = "claude-3-5-haiku-20241022"
	maxRetries     = 2
	initialBackoff = 500 * time.Millisecond
)

// ErrAPIKeyRequired is returned when no API key is available.
var ErrAPIKeyRequired = errors.New("summarize: API key required")

// Client wraps the Anthropic API to produce commit description candidates.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClient builds a Client. The ANTHROPIC_API_KEY environment variable
// takes precedence over an explicitly supplied apiKey.
func NewClient(apiKey string) (*Client, error) {
	if envKey := os.Getenv("ANTHROPIC_API_KEY"); envKey != "" {
		apiKey = envKey
	}
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  defaultModel,
	}, nil
}

// Describe renders a prompt from the changed paths and returns a single
// sentence description candidate.
func (c *Client) Describe(ctx context.Context, paths []string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}
	prompt := fmt.Sprintf(
		"Write ONE short sentence (no prefix, no quotes) describing a commit "+
			"that touches these files:\n%s", strings.Join(paths, "\n"))

	return c.callWithRetry(ctx, prompt)
}

func (c *Client) callWithRetry(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 128,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := initialBackoff * time.Duration(math.Pow(2, float64(attempt-1)))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			if len(message.Content) > 0 && message.Content[0].Type == "text" {
				return strings.TrimSpace(message.Content[0].Text), nil
			}
			return "", fmt.Errorf("summarize: unexpected response format")
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !isRetryable(err) {
			return "", fmt.Errorf("summarize: non-retryable: %w", err)
		}
	}
	return "", fmt.Errorf("summarize: failed after retries: %w", lastErr)
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}
	return false
}
