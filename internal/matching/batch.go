package matching

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// StatusSuccess marks a batch entry whose match was computed and persisted.
// Failed entries carry "error: <message>" instead.
const StatusSuccess = "success"

// ProgressFunc is invoked after every candidate in a batch, success or
// failure, with the number completed so far and the batch total.
type ProgressFunc func(completed, total int)

// BatchResult is the per-candidate outcome of a batch match run.
type BatchResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	Status      string    `json:"status"`
}

// MatchBatch matches every requested candidate against a job, strictly in the
// order given and strictly sequentially; the scoring calls are rate-limited
// upstream and sequential processing keeps load on them bounded and results
// deterministic.
//
// The job is fetched once; a missing job yields an empty result and no error.
// Candidates are fetched in a single lookup and scored from that data without
// re-fetching. One candidate's failure, missing record included, becomes an
// error entry in its input position and the batch continues: callers always
// get exactly one result per requested ID.
func (m *Matcher) MatchBatch(ctx context.Context, jobID uuid.UUID, candidateIDs []uuid.UUID, progress ProgressFunc) ([]BatchResult, error) {
	job, err := m.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		m.logger.Warn("batch match requested for unknown job", zap.String("job_id", jobID.String()))
		return []BatchResult{}, nil
	}

	candidates, err := m.store.GetCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}

	total := len(candidateIDs)
	results := make([]BatchResult, 0, total)

	for i, candidateID := range candidateIDs {
		results = append(results, m.matchOne(ctx, job, candidateID, candidates))
		if progress != nil {
			progress(i+1, total)
		}
	}

	return results, nil
}

// matchOne produces the batch entry for a single candidate, converting every
// failure into an error record rather than letting it escape the batch.
func (m *Matcher) matchOne(ctx context.Context, job *types.Job, candidateID uuid.UUID, candidates map[uuid.UUID]types.Candidate) BatchResult {
	candidate, ok := candidates[candidateID]
	if !ok {
		return BatchResult{
			CandidateID: candidateID,
			Name:        fmt.Sprintf("Candidate %s", candidateID),
			Score:       0.0,
			Status:      "error: Candidate not found",
		}
	}

	_, score, _, err := m.ComputeMatch(ctx, job, &candidate)
	if err != nil {
		m.logger.Warn("candidate match failed",
			zap.String("job_id", job.ID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err),
		)
		return BatchResult{
			CandidateID: candidateID,
			Name:        candidate.Name,
			Score:       0.0,
			Status:      fmt.Sprintf("error: %s", err),
		}
	}

	return BatchResult{
		CandidateID: candidateID,
		Name:        candidate.Name,
		Score:       score,
		Status:      StatusSuccess,
	}
}
