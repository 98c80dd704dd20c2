package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"newsdesk/internal/logger"
)

// Completer is the interface stages use to talk to the LLM. The request
// asks for JSON-only output; implementations return the raw JSON document.
type Completer interface {
	Complete(ctx context.Context, req Request) (json.RawMessage, error)
}

// Request describes one chat completion call.
type Request struct {
	Model        string  // Model to use (e.g., "gpt-4o-mini")
	SystemPrompt string  // System role content
	UserPrompt   string  // User prompt content
	Temperature  float64 // Randomness, 0.0 to 1.0
	MaxTokens    int     // Output length cap
}

// Client wraps the OpenAI chat completions API in JSON output mode.
type Client struct {
	client  openai.Client
	timeout time.Duration
}

// NewClient creates a new LLM client. The API key must be non-empty; its
// absence is a startup failure, not a per-request one.
func NewClient(apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		timeout: timeout,
	}, nil
}

// Complete performs one chat completion call and returns the model's JSON
// document. Every failure path returns a classified *Error so callers can
// switch on the kind.
func (c *Client) Complete(ctx context.Context, req Request) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(req.Temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, Classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &Error{Kind: KindOther, Message: "no response choices from model"}
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		logger.Warn("model returned non-JSON output", "model", req.Model, "length", len(content))
		return nil, &Error{Kind: KindOther, Message: "model returned invalid JSON"}
	}

	return json.RawMessage(content), nil
}

// Classify maps an arbitrary completion error onto the closed taxonomy.
func Classify(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Kind: KindAuth, Message: "authentication failed, check the API key", Err: err}
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimit, Message: "rate limit exceeded", Err: err}
		}
	}

	return &Error{Kind: KindOther, Message: err.Error(), Err: err}
}

// cleanJSONResponse strips markdown code fences the model sometimes wraps
// around its JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
