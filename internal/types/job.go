// Package types defines the core domain types shared across the recruitment
// assistant: jobs, candidates, matches and their derived views.
package types

import (
	"time"

	"github.com/google/uuid"
)

// JobSummary is the structured summary of a job description, produced by the
// LLM during job ingestion. Missing fields default to empty values.
type JobSummary struct {
	Title            string   `json:"title"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills"`
	Qualifications   string   `json:"qualifications"`
	Experience       string   `json:"experience"`
	Responsibilities []string `json:"responsibilities"`
	Location         string   `json:"location"`
	JobType          string   `json:"job_type"`
}

// EmptySummary returns a summary with the given title and all other fields
// empty. Used as the fallback when the LLM response cannot be parsed.
func EmptySummary(title string) *JobSummary {
	return &JobSummary{
		Title:            title,
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
		Responsibilities: []string{},
	}
}

// Job represents a stored job posting with its structured summary.
type Job struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Summary     *JobSummary `json:"summary,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
