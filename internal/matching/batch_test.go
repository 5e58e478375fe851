package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// batchFixture wires a mock store holding one job and the given candidates.
func batchFixture(job *types.Job, candidates ...types.Candidate) *MockStore {
	byID := make(map[uuid.UUID]types.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}
	return &MockStore{
		GetJobFunc: func(_ context.Context, id uuid.UUID) (*types.Job, error) {
			if job != nil && id == job.ID {
				return job, nil
			}
			return nil, nil
		},
		GetCandidatesFunc: func(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]types.Candidate, error) {
			found := make(map[uuid.UUID]types.Candidate)
			for _, id := range ids {
				if c, ok := byID[id]; ok {
					found[id] = c
				}
			}
			return found, nil
		},
	}
}

func TestMatchBatch_UnknownJobReturnsEmpty(t *testing.T) {
	store := batchFixture(nil)
	m := New(store, &MockLLMClient{}, nil)

	calls := 0
	results, err := m.MatchBatch(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, func(_, _ int) { calls++ })
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, calls, "progress must not fire for an unknown job")
}

func TestMatchBatch_EmptyCandidateList(t *testing.T) {
	job := testJob()
	m := New(batchFixture(job), &MockLLMClient{}, nil)

	calls := 0
	results, err := m.MatchBatch(context.Background(), job.ID, nil, func(_, _ int) { calls++ })
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, calls)
}

func TestMatchBatch_PreservesInputOrderWithMissingCandidate(t *testing.T) {
	job := testJob()
	first := types.Candidate{ID: uuid.New(), Name: "First", CVText: "Go and PostgreSQL"}
	third := types.Candidate{ID: uuid.New(), Name: "Third", CVText: "Go"}
	missing := uuid.New()

	store := batchFixture(job, first, third)
	client := scriptedClient(`{"score": 60}`, `{"match_score": 0.6}`)
	m := New(store, client, nil)

	ids := []uuid.UUID{first.ID, missing, third.ID}
	results, err := m.MatchBatch(context.Background(), job.ID, ids, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, first.ID, results[0].CandidateID)
	assert.Equal(t, StatusSuccess, results[0].Status)
	assert.Greater(t, results[0].Score, 0.0)

	assert.Equal(t, missing, results[1].CandidateID)
	assert.Equal(t, "error: Candidate not found", results[1].Status)
	assert.Equal(t, 0.0, results[1].Score)
	assert.Contains(t, results[1].Name, "Candidate ")

	assert.Equal(t, third.ID, results[2].CandidateID)
	assert.Equal(t, StatusSuccess, results[2].Status)
}

func TestMatchBatch_FailureIsolatedToOneCandidate(t *testing.T) {
	job := testJob()
	good := types.Candidate{ID: uuid.New(), Name: "Good", CVText: "Go and PostgreSQL"}
	bad := types.Candidate{ID: uuid.New(), Name: "Bad", CVText: "poisoned cv"}
	also := types.Candidate{ID: uuid.New(), Name: "Also", CVText: "Go"}

	store := batchFixture(job, good, bad, also)
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			if strings.Contains(prompt, "poisoned cv") {
				return "", errors.New("model unavailable")
			}
			if strings.Contains(prompt, "match_score") {
				return `{"match_score": 0.6}`, nil
			}
			return `{"score": 60}`, nil
		},
	}
	m := New(store, client, nil)

	results, err := m.MatchBatch(context.Background(), job.ID, []uuid.UUID{good.ID, bad.ID, also.ID}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, StatusSuccess, results[0].Status)

	assert.Equal(t, "Bad", results[1].Name)
	assert.Equal(t, 0.0, results[1].Score)
	assert.True(t, strings.HasPrefix(results[1].Status, "error: "), "got status %q", results[1].Status)
	assert.Contains(t, results[1].Status, "model unavailable")

	assert.Equal(t, StatusSuccess, results[2].Status)
}

func TestMatchBatch_PersistenceFailureIsolated(t *testing.T) {
	job := testJob()
	a := types.Candidate{ID: uuid.New(), Name: "A", CVText: "Go"}
	b := types.Candidate{ID: uuid.New(), Name: "B", CVText: "Go"}

	store := batchFixture(job, a, b)
	failFor := a.ID
	store.AddMatchFunc = func(_ context.Context, _, candidateID uuid.UUID, _ float64, _ *types.MatchDetails) (uuid.UUID, error) {
		if candidateID == failFor {
			return uuid.Nil, errors.New("deadlock detected")
		}
		return uuid.New(), nil
	}
	client := scriptedClient(`{"score": 60}`, `{"match_score": 0.6}`)
	m := New(store, client, nil)

	results, err := m.MatchBatch(context.Background(), job.ID, []uuid.UUID{a.ID, b.ID}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Contains(t, results[0].Status, "deadlock detected")
	assert.Equal(t, StatusSuccess, results[1].Status)
}

func TestMatchBatch_ProgressCallbackSequence(t *testing.T) {
	job := testJob()
	a := types.Candidate{ID: uuid.New(), Name: "A", CVText: "Go"}
	b := types.Candidate{ID: uuid.New(), Name: "B", CVText: "Go"}
	missing := uuid.New()

	store := batchFixture(job, a, b)
	client := scriptedClient(`{"score": 60}`, `{"match_score": 0.6}`)
	m := New(store, client, nil)

	type call struct{ completed, total int }
	var calls []call
	_, err := m.MatchBatch(context.Background(), job.ID, []uuid.UUID{a.ID, missing, b.ID}, func(completed, total int) {
		calls = append(calls, call{completed, total})
	})
	require.NoError(t, err)

	// Invoked after every candidate, failures included, in order.
	assert.Equal(t, []call{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestMatchBatch_NilProgressCallback(t *testing.T) {
	job := testJob()
	a := types.Candidate{ID: uuid.New(), Name: "A", CVText: "Go"}
	client := scriptedClient(`{"score": 60}`, `{"match_score": 0.6}`)
	m := New(batchFixture(job, a), client, nil)

	results, err := m.MatchBatch(context.Background(), job.ID, []uuid.UUID{a.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestMatchBatch_CandidateLookupErrorAborts(t *testing.T) {
	job := testJob()
	store := batchFixture(job)
	store.GetCandidatesFunc = func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]types.Candidate, error) {
		return nil, errors.New("connection refused")
	}
	m := New(store, &MockLLMClient{}, nil)

	_, err := m.MatchBatch(context.Background(), job.ID, []uuid.UUID{uuid.New()}, nil)
	assert.Error(t, err)
}
