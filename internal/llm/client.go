package llm

import "context"

// Client is the engine's view of the remote chat-completion provider.
// Implementations talk to an OpenRouter-compatible endpoint; the mock
// implementation serves canned responses for tests.
type Client interface {
	// Complete sends one chat-completion request and returns the raw
	// message content. Errors are one of the typed errors in errors.go.
	Complete(ctx context.Context, req Request) (*Response, error)

	// Models lists the model identifiers the credential can use.
	// A non-empty list from a 2xx response means the credential is valid.
	Models(ctx context.Context) ([]ModelInfo, error)

	// ModelID returns the model identifier this client sends by default.
	ModelID() string
}

// Request describes one chat-completion call.
type Request struct {
	// Model overrides the client's configured model when non-empty.
	Model string

	// System is the system prompt.
	System string

	// User is the user message. Single-turn generation is the only
	// conversation shape the engine uses.
	User string

	// Temperature controls sampling randomness.
	Temperature float64

	// MaxTokens caps the response length.
	MaxTokens int

	// JSONOnly asks the provider for a JSON-object response format.
	JSONOnly bool
}

// Response holds the raw completion.
type Response struct {
	// Content is the completion message content, expected to be a JSON
	// document for the engine's requests.
	Content string

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ModelInfo is one entry from the models endpoint.
type ModelInfo struct {
	ID   string
	Name string
}
