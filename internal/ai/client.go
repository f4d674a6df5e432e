package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/softnews/softnews/internal/config"
)

// ErrConfig marks a deployment defect: missing API key or unknown provider.
// Unlike the news feed, an AI call has no meaningful empty substitute, so
// this surfaces as HTTP 500.
var ErrConfig = errors.New("ai: configuration error")

const (
	groqBaseURL   = "https://api.groq.com/openai/v1/chat/completions"
	openaiBaseURL = "https://api.openai.com/v1/chat/completions"

	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Message is one chat turn in the OpenAI-compatible wire format.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the /api/ai request body, passed through to the configured
// provider. Model is optional; the provider default fills it in.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages" validate:"required,min=1,dive"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Response carries the upstream status and raw chat-completion body; the
// handler passes both through untouched.
type Response struct {
	Status int
	Body   []byte
}

// Client proxies chat completions to an OpenAI-compatible provider selected
// by AI_PROVIDER.
type Client struct {
	provider string
	apiKey   string
	baseURL  string
	model    string
	client   *resty.Client
}

func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{
		provider: strings.ToLower(cfg.AIProvider),
		client:   resty.New().SetTimeout(cfg.AITimeout),
	}

	switch c.provider {
	case "", "groq":
		c.provider = "groq"
		c.apiKey = cfg.GroqAPIKey
		c.baseURL = groqBaseURL
		c.model = defaultGroqModel
	case "openai":
		c.apiKey = cfg.OpenAIKey
		c.baseURL = openaiBaseURL
		c.model = defaultOpenAIModel
	default:
		return nil, fmt.Errorf("%w: unknown AI provider %q", ErrConfig, cfg.AIProvider)
	}

	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key for provider %q is not set", ErrConfig, c.provider)
	}
	return c, nil
}

// Complete forwards the request upstream and returns the raw response. A
// transport-level failure is the only error; an upstream non-2xx comes back
// in Response for the handler to pass through.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (Response, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(req).
		Post(c.baseURL)
	if err != nil {
		return Response{}, fmt.Errorf("chat completion request to %s failed: %w", c.provider, err)
	}

	return Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
