package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// MockStore implements Store for testing
type MockStore struct {
	GetMatchesForJobFunc func(ctx context.Context, jobID uuid.UUID) ([]types.JobMatch, error)
	GetShortlistedFunc   func(ctx context.Context, jobID uuid.UUID, threshold float64) ([]types.JobMatch, error)
	UpdateShortlistFunc  func(ctx context.Context, matchID uuid.UUID, shortlisted bool) error

	// ShortlistUpdates records every UpdateShortlist call for assertions.
	ShortlistUpdates []uuid.UUID
}

func (m *MockStore) GetMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]types.JobMatch, error) {
	if m.GetMatchesForJobFunc != nil {
		return m.GetMatchesForJobFunc(ctx, jobID)
	}
	return nil, nil
}

func (m *MockStore) GetShortlisted(ctx context.Context, jobID uuid.UUID, threshold float64) ([]types.JobMatch, error) {
	if m.GetShortlistedFunc != nil {
		return m.GetShortlistedFunc(ctx, jobID, threshold)
	}
	return nil, nil
}

func (m *MockStore) UpdateShortlist(ctx context.Context, matchID uuid.UUID, shortlisted bool) error {
	m.ShortlistUpdates = append(m.ShortlistUpdates, matchID)
	if m.UpdateShortlistFunc != nil {
		return m.UpdateShortlistFunc(ctx, matchID, shortlisted)
	}
	return nil
}

func TestShortlist_FlipsFlagForEveryQualifyingMatch(t *testing.T) {
	jobID := uuid.New()
	qualifying := []types.JobMatch{
		{MatchID: uuid.New(), Name: "Top", Score: 0.95},
		{MatchID: uuid.New(), Name: "Boundary", Score: 0.8},
	}
	store := &MockStore{
		GetShortlistedFunc: func(_ context.Context, id uuid.UUID, threshold float64) ([]types.JobMatch, error) {
			assert.Equal(t, jobID, id)
			assert.Equal(t, 0.8, threshold)
			return qualifying, nil
		},
	}
	s := New(store, nil)

	result, err := s.Shortlist(context.Background(), jobID, 0.8)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, []uuid.UUID{qualifying[0].MatchID, qualifying[1].MatchID}, store.ShortlistUpdates)
	for _, m := range result {
		assert.True(t, m.Shortlisted)
	}
}

func TestShortlist_NoQualifyingMatches(t *testing.T) {
	store := &MockStore{}
	s := New(store, nil)

	result, err := s.Shortlist(context.Background(), uuid.New(), DefaultShortlistThreshold)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, store.ShortlistUpdates)
}

func TestShortlist_UpdateErrorPropagates(t *testing.T) {
	store := &MockStore{
		GetShortlistedFunc: func(_ context.Context, _ uuid.UUID, _ float64) ([]types.JobMatch, error) {
			return []types.JobMatch{{MatchID: uuid.New(), Score: 0.9}}, nil
		},
		UpdateShortlistFunc: func(_ context.Context, _ uuid.UUID, _ bool) error {
			return errors.New("write failed")
		},
	}
	s := New(store, nil)

	_, err := s.Shortlist(context.Background(), uuid.New(), 0.8)
	assert.Error(t, err)
}
