package types

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents a stored candidate with the raw text of their CV.
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CVText    string    `json:"cv_text"`
	CreatedAt time.Time `json:"created_at"`
}
