package ranking

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// prioritySkillBonus is added to the stored score for every priority skill
// found in the candidate's CV.
const prioritySkillBonus = 0.05

// AdjustRanking re-ranks a job's matched candidates under caller-supplied
// priority skills. It is a pure read plus derived computation: stored scores
// are never mutated and nothing is persisted.
//
// Each matched priority skill (case-insensitive substring of the CV) adds
// 0.05 to the stored score, clamped at 1.0. The result is stable-sorted by
// adjusted score descending over the stored-score-descending fetch order, so
// ties keep their original ranking.
func (s *Shortlister) AdjustRanking(ctx context.Context, jobID uuid.UUID, prioritySkills []string) ([]types.RankedCandidate, error) {
	matches, err := s.store.GetMatchesForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	ranked := make([]types.RankedCandidate, 0, len(matches))
	for _, m := range matches {
		matched := matchPrioritySkills(prioritySkills, m.CVText)

		adjusted := m.Score + prioritySkillBonus*float64(len(matched))
		if adjusted > 1.0 {
			adjusted = 1.0
		}

		ranked = append(ranked, types.RankedCandidate{
			MatchID:               m.MatchID,
			CandidateID:           m.CandidateID,
			Name:                  m.Name,
			OriginalScore:         m.Score,
			AdjustedScore:         adjusted,
			MatchedPrioritySkills: matched,
			Details:               m.Details,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedScore > ranked[j].AdjustedScore
	})

	s.logger.Debug("adjusted ranking",
		zap.String("job_id", jobID.String()),
		zap.Strings("priority_skills", prioritySkills),
		zap.Int("candidates", len(ranked)),
	)

	return ranked, nil
}

// matchPrioritySkills returns the subset of priority skills present in the
// CV text, preserving the caller's order and casing.
func matchPrioritySkills(prioritySkills []string, cvText string) []string {
	cvLower := strings.ToLower(cvText)
	matched := make([]string, 0, len(prioritySkills))
	for _, skill := range prioritySkills {
		if strings.Contains(cvLower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	return matched
}
