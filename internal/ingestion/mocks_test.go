package ingestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return `{}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

// MockEmbedder implements llm.Embedder for testing
type MockEmbedder struct {
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)
}

func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

// MockStore implements Store for testing
type MockStore struct {
	AddJobFunc       func(ctx context.Context, title, description string, summary *types.JobSummary, embedding []float32) (uuid.UUID, error)
	AddCandidateFunc func(ctx context.Context, name, cvText string, embedding []float32) (uuid.UUID, error)

	// AddedJobs and AddedCandidates record calls for assertions.
	AddedJobs       []AddedJob
	AddedCandidates []AddedCandidate
}

// AddedJob captures the arguments of one AddJob call.
type AddedJob struct {
	Title       string
	Description string
	Summary     *types.JobSummary
	Embedding   []float32
}

// AddedCandidate captures the arguments of one AddCandidate call.
type AddedCandidate struct {
	Name      string
	CVText    string
	Embedding []float32
}

func (m *MockStore) AddJob(ctx context.Context, title, description string, summary *types.JobSummary, embedding []float32) (uuid.UUID, error) {
	m.AddedJobs = append(m.AddedJobs, AddedJob{Title: title, Description: description, Summary: summary, Embedding: embedding})
	if m.AddJobFunc != nil {
		return m.AddJobFunc(ctx, title, description, summary, embedding)
	}
	return uuid.New(), nil
}

func (m *MockStore) AddCandidate(ctx context.Context, name, cvText string, embedding []float32) (uuid.UUID, error) {
	m.AddedCandidates = append(m.AddedCandidates, AddedCandidate{Name: name, CVText: cvText, Embedding: embedding})
	if m.AddCandidateFunc != nil {
		return m.AddCandidateFunc(ctx, name, cvText, embedding)
	}
	return uuid.New(), nil
}
