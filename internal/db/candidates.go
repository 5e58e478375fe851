package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// AddCandidate stores a candidate with their CV text and embedding, returning
// the new candidate ID.
func (db *DB) AddCandidate(ctx context.Context, name, cvText string, embedding []float32) (uuid.UUID, error) {
	var embeddingJSON []byte
	var err error

	if len(embedding) > 0 {
		embeddingJSON, err = json.Marshal(embedding)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal embedding: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, cv_text, embedding)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, cvText, embeddingJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. Returns (nil, nil) when the
// candidate does not exist.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	var c types.Candidate

	err := db.pool.QueryRow(ctx,
		`SELECT id, name, cv_text, created_at
		 FROM candidates WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CVText, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &c, nil
}

// GetCandidates retrieves the requested candidates in a single query, keyed by
// ID. Candidates that do not exist are simply absent from the result map.
func (db *DB) GetCandidates(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.Candidate, error) {
	candidates := make(map[uuid.UUID]types.Candidate, len(ids))
	if len(ids) == 0 {
		return candidates, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, cv_text, created_at
		 FROM candidates WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c types.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.CVText, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates[c.ID] = c
	}
	return candidates, rows.Err()
}
