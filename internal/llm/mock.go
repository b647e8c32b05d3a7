package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned reply for the MockClient.
type MockResponse struct {
	Content string
	Err     error
}

// MockClient is a deterministic Client for tests. It serves canned
// responses in FIFO order and records every request it sees. When the
// queue drains, the last response repeats.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	models    []ModelInfo
	Calls     []Request
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{
		responses: responses,
		models:    []ModelInfo{{ID: "mock/model"}},
	}
}

func (m *MockClient) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrTransport{Err: context.Canceled}
	}

	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}

	if resp.Err != nil {
		return nil, resp.Err
	}
	return &Response{Content: resp.Content, Model: "mock/model"}, nil
}

func (m *MockClient) Models(_ context.Context) ([]ModelInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.models, nil
}

func (m *MockClient) ModelID() string { return "mock/model" }

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}
