package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is a canned answer for MockCompleter.
type MockReply struct {
	Content json.RawMessage
	Err     error
}

// MockCompleter returns canned replies in FIFO order and records requests.
// Content is validated against the request schema like a real backend.
type MockCompleter struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []Request
}

// NewMockCompleter creates a MockCompleter with the given replies.
func NewMockCompleter(replies ...MockReply) *MockCompleter {
	return &MockCompleter{replies: replies}
}

// Complete returns the next reply, or ErrUnavailable once the queue is empty.
func (m *MockCompleter) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}

	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	if err := validateContent(req.Schema, r.Content); err != nil {
		return nil, err
	}
	return &Response{Content: r.Content, Model: "mock"}, nil
}

func (m *MockCompleter) ModelID() string { return "mock" }

// CallCount returns the number of Complete calls made.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
