package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// AddMatch stores a new match record for a (job, candidate) pair. Re-matching
// the same pair inserts a new record; no uniqueness is enforced here.
func (db *DB) AddMatch(ctx context.Context, jobID, candidateID uuid.UUID, score float64, details *types.MatchDetails) (uuid.UUID, error) {
	var detailsJSON []byte
	var err error

	if details != nil {
		detailsJSON, err = json.Marshal(details)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal match details: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO matches (job_id, candidate_id, score, details)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		jobID, candidateID, score, detailsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add match: %w", err)
	}
	return id, nil
}

// GetMatchesForJob retrieves all matches for a job with candidate name and CV
// text joined, ordered by stored score descending.
func (db *DB) GetMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]types.JobMatch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT m.id, c.id, c.name, c.cv_text, m.score, m.details, m.shortlisted, m.email_sent
		 FROM matches m
		 JOIN candidates c ON m.candidate_id = c.id
		 WHERE m.job_id = $1
		 ORDER BY m.score DESC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get matches for job: %w", err)
	}
	defer rows.Close()

	return scanJobMatches(rows)
}

// GetShortlisted retrieves matches for a job with score at or above the
// threshold, ordered by score descending. The threshold is inclusive.
func (db *DB) GetShortlisted(ctx context.Context, jobID uuid.UUID, threshold float64) ([]types.JobMatch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT m.id, c.id, c.name, c.cv_text, m.score, m.details, m.shortlisted, m.email_sent
		 FROM matches m
		 JOIN candidates c ON m.candidate_id = c.id
		 WHERE m.job_id = $1 AND m.score >= $2
		 ORDER BY m.score DESC`,
		jobID, threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get shortlisted matches: %w", err)
	}
	defer rows.Close()

	return scanJobMatches(rows)
}

// UpdateShortlist sets the shortlisted flag on a match.
func (db *DB) UpdateShortlist(ctx context.Context, matchID uuid.UUID, shortlisted bool) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE matches SET shortlisted = $1 WHERE id = $2`,
		shortlisted, matchID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shortlist flag: %w", err)
	}
	return nil
}

// UpdateEmailSent sets the interview-email-sent flag on a match.
func (db *DB) UpdateEmailSent(ctx context.Context, matchID uuid.UUID, sent bool) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE matches SET email_sent = $1 WHERE id = $2`,
		sent, matchID,
	)
	if err != nil {
		return fmt.Errorf("failed to update email sent flag: %w", err)
	}
	return nil
}

// GetMatchContext retrieves the candidate name and job title for a match.
// Returns (nil, nil) when the match does not exist.
func (db *DB) GetMatchContext(ctx context.Context, matchID uuid.UUID) (*types.MatchContext, error) {
	var mc types.MatchContext

	err := db.pool.QueryRow(ctx,
		`SELECT m.id, c.name, j.title
		 FROM matches m
		 JOIN candidates c ON m.candidate_id = c.id
		 JOIN jobs j ON m.job_id = j.id
		 WHERE m.id = $1`,
		matchID,
	).Scan(&mc.MatchID, &mc.CandidateName, &mc.JobTitle)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match context: %w", err)
	}

	return &mc, nil
}

// scanJobMatches collects joined match rows, tolerating absent details.
func scanJobMatches(rows pgx.Rows) ([]types.JobMatch, error) {
	var matches []types.JobMatch
	for rows.Next() {
		var m types.JobMatch
		var detailsJSON []byte
		if err := rows.Scan(&m.MatchID, &m.CandidateID, &m.Name, &m.CVText,
			&m.Score, &detailsJSON, &m.Shortlisted, &m.EmailSent); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if detailsJSON != nil {
			_ = json.Unmarshal(detailsJSON, &m.Details)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
