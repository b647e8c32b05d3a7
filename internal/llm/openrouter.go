package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterConfig configures the OpenRouter client.
type OpenRouterConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the endpoint for OpenRouter-compatible APIs.
	BaseURL string
	// Referer and Title are the identification pair OpenRouter expects
	// on every request.
	Referer string
	Title   string
}

// OpenRouterClient implements Client against an OpenRouter-compatible
// chat-completions API. OpenRouter speaks the OpenAI wire protocol, so
// the OpenAI SDK is reused with an overridden base URL and the
// HTTP-Referer / X-Title identification headers.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

// NewOpenRouterClient creates a client for the OpenRouter API.
func NewOpenRouterClient(cfg OpenRouterConfig) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, &ErrAuth{Err: fmt.Errorf("API key is required")}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	referer := cfg.Referer
	if referer == "" {
		referer = "https://kidskills.app"
	}
	title := cfg.Title
	if title == "" {
		title = "KidSkills"
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = baseURL
	config.HTTPClient = &http.Client{
		Transport: &headerTransport{referer: referer, title: title},
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel().ID
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONOnly {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapAPIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrMalformed{Err: fmt.Errorf("no choices in completion response")}
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return nil, &ErrMalformed{Err: fmt.Errorf("empty completion content")}
	}

	return &Response{
		Content: content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (c *OpenRouterClient) Models(ctx context.Context) ([]ModelInfo, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, mapAPIError(err)
	}

	infos := make([]ModelInfo, 0, len(list.Models))
	for _, m := range list.Models {
		infos = append(infos, ModelInfo{ID: m.ID})
	}
	if len(infos) == 0 {
		return nil, &ErrAuth{Err: fmt.Errorf("credential returned an empty model list")}
	}
	return infos, nil
}

func (c *OpenRouterClient) ModelID() string {
	return c.model
}

// headerTransport injects the OpenRouter identification headers into
// every request.
type headerTransport struct {
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("HTTP-Referer", t.referer)
	clone.Header.Set("X-Title", t.title)
	return http.DefaultTransport.RoundTrip(clone)
}

// mapAPIError converts SDK errors into the engine's typed taxonomy.
func mapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized:
			return &ErrAuth{Err: err}
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrTransport{Status: apiErr.HTTPStatusCode, Err: err}
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.HTTPStatusCode == http.StatusUnauthorized:
			return &ErrAuth{Err: err}
		case reqErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		}
		return &ErrTransport{Status: reqErr.HTTPStatusCode, Err: err}
	}
	return &ErrTransport{Err: err}
}
