package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// AddJob stores a job posting with its structured summary and embedding,
// returning the new job ID.
func (db *DB) AddJob(ctx context.Context, title, description string, summary *types.JobSummary, embedding []float32) (uuid.UUID, error) {
	var summaryJSON, embeddingJSON []byte
	var err error

	if summary != nil {
		summaryJSON, err = json.Marshal(summary)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal job summary: %w", err)
		}
	}
	if len(embedding) > 0 {
		embeddingJSON, err = json.Marshal(embedding)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal embedding: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, summary, embedding)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		title, description, summaryJSON, embeddingJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID. Returns (nil, nil) when the job does not exist.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var j types.Job
	var summaryJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, description, summary, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.Title, &j.Description, &summaryJSON, &j.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if summaryJSON != nil {
		_ = json.Unmarshal(summaryJSON, &j.Summary)
	}

	return &j, nil
}
