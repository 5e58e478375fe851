// Package matching implements the candidate/job matching engine: three
// independent scoring techniques, their aggregation into a composite score,
// and batch execution with per-candidate failure isolation.
package matching

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// Sentinel errors for the single-match path. The batch path never surfaces
// these; it converts missing candidates into per-item error records.
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// Store is the storage capability the matcher needs. *db.DB satisfies it.
type Store interface {
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error)
	GetCandidates(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.Candidate, error)
	AddMatch(ctx context.Context, jobID, candidateID uuid.UUID, score float64, details *types.MatchDetails) (uuid.UUID, error)
}

// Matcher computes and persists job/candidate matches.
type Matcher struct {
	store  Store
	client llm.Client
	logger *zap.Logger
}

// New creates a Matcher. A nil logger disables logging.
func New(store Store, client llm.Client, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		store:  store,
		client: client,
		logger: logger,
	}
}

// ComputeMatch scores a candidate against a job using the already-fetched job
// and candidate data, persists the resulting match, and returns the match ID,
// the composite score and the details record.
//
// The composite is the unweighted arithmetic mean of the three technique
// scores. Only the direct-score technique contributes qualitative fields.
func (m *Matcher) ComputeMatch(ctx context.Context, job *types.Job, candidate *types.Candidate) (uuid.UUID, float64, *types.MatchDetails, error) {
	direct, err := m.directScore(ctx, job.Summary, candidate.CVText)
	if err != nil {
		return uuid.Nil, 0, nil, err
	}

	var requiredSkills []string
	if job.Summary != nil {
		requiredSkills = job.Summary.RequiredSkills
	}
	skillsScore := skillsMatchScore(requiredSkills, candidate.CVText)

	semantic, err := m.semanticScore(ctx, job.Description, candidate.CVText)
	if err != nil {
		return uuid.Nil, 0, nil, err
	}

	avgScore := (direct.Score + skillsScore + semantic) / 3.0

	details := &types.MatchDetails{
		DirectScore:             direct.Score,
		SkillsScore:             skillsScore,
		SemanticScore:           semantic,
		AverageScore:            avgScore,
		MatchingSkills:          direct.MatchingSkills,
		MissingSkills:           direct.MissingSkills,
		MatchingPreferredSkills: direct.MatchingPreferredSkills,
		Assessment:              direct.Assessment,
	}

	matchID, err := m.store.AddMatch(ctx, job.ID, candidate.ID, avgScore, details)
	if err != nil {
		return uuid.Nil, 0, nil, err
	}

	m.logger.Debug("computed match",
		zap.String("job_id", job.ID.String()),
		zap.String("candidate_id", candidate.ID.String()),
		zap.Float64("direct_score", direct.Score),
		zap.Float64("skills_score", skillsScore),
		zap.Float64("semantic_score", semantic),
		zap.Float64("average_score", avgScore),
	)

	return matchID, avgScore, details, nil
}

// MatchWithJob fetches the job and candidate by ID, then computes and
// persists their match, returning the composite score.
//
// Unlike the batch path, this path has no failure isolation: storage and
// scoring errors propagate to the caller.
func (m *Matcher) MatchWithJob(ctx context.Context, jobID, candidateID uuid.UUID) (float64, error) {
	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if job == nil {
		return 0, ErrJobNotFound
	}

	candidate, err := m.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return 0, err
	}
	if candidate == nil {
		return 0, ErrCandidateNotFound
	}

	_, score, _, err := m.ComputeMatch(ctx, job, candidate)
	return score, err
}
