package types

import (
	"github.com/google/uuid"
)

// MatchDetails is the per-technique score breakdown persisted with every
// match. The JSON keys are a durable contract: downstream consumers of stored
// matches depend on these exact names.
type MatchDetails struct {
	DirectScore             float64  `json:"direct_score"`
	SkillsScore             float64  `json:"skills_score"`
	SemanticScore           float64  `json:"semantic_score"`
	AverageScore            float64  `json:"average_score"`
	MatchingSkills          []string `json:"matching_skills"`
	MissingSkills           []string `json:"missing_skills"`
	MatchingPreferredSkills []string `json:"matching_preferred_skills"`
	Assessment              string   `json:"assessment"`
}

// JobMatch is a match joined with candidate name and CV text, as returned by
// per-job match queries ordered by stored score descending.
type JobMatch struct {
	MatchID     uuid.UUID     `json:"match_id"`
	CandidateID uuid.UUID     `json:"candidate_id"`
	Name        string        `json:"name"`
	CVText      string        `json:"-"`
	Score       float64       `json:"score"`
	Details     *MatchDetails `json:"score_details,omitempty"`
	Shortlisted bool          `json:"shortlisted"`
	EmailSent   bool          `json:"email_sent"`
}

// RankedCandidate is the derived, never-persisted view produced by rank
// adjustment: the stored score plus a priority-skill bonus.
type RankedCandidate struct {
	MatchID               uuid.UUID     `json:"match_id"`
	CandidateID           uuid.UUID     `json:"candidate_id"`
	Name                  string        `json:"name"`
	OriginalScore         float64       `json:"original_score"`
	AdjustedScore         float64       `json:"adjusted_score"`
	MatchedPrioritySkills []string      `json:"matched_priority_skills"`
	Details               *MatchDetails `json:"score_details,omitempty"`
}

// MatchContext carries the joined candidate name and job title for a single
// match, used when generating interview emails.
type MatchContext struct {
	MatchID       uuid.UUID `json:"match_id"`
	CandidateName string    `json:"candidate_name"`
	JobTitle      string    `json:"job_title"`
}
