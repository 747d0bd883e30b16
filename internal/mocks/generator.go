package mocks

import (
	"context"
	"sync"

	"github.com/inspiro-ai/inspiro-api/internal/domain"
	"github.com/inspiro-ai/inspiro-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req domain.GenerationRequest) (string, error)

	// ExplainFn allows test cases to mock the Explain behavior
	ExplainFn func(ctx context.Context, req domain.ExplanationRequest) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		generate []domain.GenerationRequest
		explain  []domain.ExplanationRequest
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	m.calls.mu.Lock()
	m.calls.generate = append(m.calls.generate, req)
	m.calls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Text, m.Err
}

// Explain implements the generation.Generator interface
func (m *MockGenerator) Explain(ctx context.Context, req domain.ExplanationRequest) (string, error) {
	m.calls.mu.Lock()
	m.calls.explain = append(m.calls.explain, req)
	m.calls.mu.Unlock()

	if m.ExplainFn != nil {
		return m.ExplainFn(ctx, req)
	}
	return m.Text, m.Err
}

// GenerateCalls returns the requests passed to Generate so far.
func (m *MockGenerator) GenerateCalls() []domain.GenerationRequest {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()
	return append([]domain.GenerationRequest(nil), m.calls.generate...)
}

// ExplainCalls returns the requests passed to Explain so far.
func (m *MockGenerator) ExplainCalls() []domain.ExplanationRequest {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()
	return append([]domain.ExplanationRequest(nil), m.calls.explain...)
}

// NewMockGeneratorWithText creates a MockGenerator that returns text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that simulates an unreachable service
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(generation.Failed(generation.ErrServiceUnavailable).Err())
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.Failed(generation.ErrContentBlocked).Err())
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.calls.mu.Lock()
	defer m.calls.mu.Unlock()

	m.calls.generate = nil
	m.calls.explain = nil
}
