// Package ranking operates on already-computed matches: shortlisting by
// score threshold and re-ranking under caller-supplied priority skills.
package ranking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// DefaultShortlistThreshold is the inclusive score cutoff used when the
// caller does not supply one.
const DefaultShortlistThreshold = 0.8

// Store is the storage capability this package needs. *db.DB satisfies it.
type Store interface {
	GetMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]types.JobMatch, error)
	GetShortlisted(ctx context.Context, jobID uuid.UUID, threshold float64) ([]types.JobMatch, error)
	UpdateShortlist(ctx context.Context, matchID uuid.UUID, shortlisted bool) error
}

// Shortlister filters and re-ranks persisted matches for a job.
type Shortlister struct {
	store  Store
	logger *zap.Logger
}

// New creates a Shortlister. A nil logger disables logging.
func New(store Store, logger *zap.Logger) *Shortlister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shortlister{
		store:  store,
		logger: logger,
	}
}

// Shortlist returns the matches for a job with score at or above the
// threshold (inclusive, delegated to storage) and flips their persisted
// shortlisted flag. Ordering is whatever storage returned.
func (s *Shortlister) Shortlist(ctx context.Context, jobID uuid.UUID, threshold float64) ([]types.JobMatch, error) {
	matches, err := s.store.GetShortlisted(ctx, jobID, threshold)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		if err := s.store.UpdateShortlist(ctx, matches[i].MatchID, true); err != nil {
			return nil, err
		}
		matches[i].Shortlisted = true
	}

	s.logger.Info("shortlisted candidates",
		zap.String("job_id", jobID.String()),
		zap.Float64("threshold", threshold),
		zap.Int("count", len(matches)),
	)

	return matches, nil
}
