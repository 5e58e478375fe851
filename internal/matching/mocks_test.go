package matching

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

// MockStore implements Store for testing
type MockStore struct {
	GetJobFunc        func(ctx context.Context, id uuid.UUID) (*types.Job, error)
	GetCandidateFunc  func(ctx context.Context, id uuid.UUID) (*types.Candidate, error)
	GetCandidatesFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.Candidate, error)
	AddMatchFunc      func(ctx context.Context, jobID, candidateID uuid.UUID, score float64, details *types.MatchDetails) (uuid.UUID, error)

	// AddedMatches records every AddMatch call for assertions.
	AddedMatches []AddedMatch
}

// AddedMatch captures the arguments of one AddMatch call.
type AddedMatch struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
	Score       float64
	Details     *types.MatchDetails
}

func (m *MockStore) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	if m.GetJobFunc != nil {
		return m.GetJobFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	if m.GetCandidateFunc != nil {
		return m.GetCandidateFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) GetCandidates(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.Candidate, error) {
	if m.GetCandidatesFunc != nil {
		return m.GetCandidatesFunc(ctx, ids)
	}
	return map[uuid.UUID]types.Candidate{}, nil
}

func (m *MockStore) AddMatch(ctx context.Context, jobID, candidateID uuid.UUID, score float64, details *types.MatchDetails) (uuid.UUID, error) {
	m.AddedMatches = append(m.AddedMatches, AddedMatch{
		JobID:       jobID,
		CandidateID: candidateID,
		Score:       score,
		Details:     details,
	})
	if m.AddMatchFunc != nil {
		return m.AddMatchFunc(ctx, jobID, candidateID, score, details)
	}
	return uuid.New(), nil
}
