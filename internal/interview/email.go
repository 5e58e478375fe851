// Package interview generates interview invitation emails for matched
// candidates.
package interview

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/prompts"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// DefaultCompanyName is used when the caller does not supply a company name.
const DefaultCompanyName = "Our Company"

// Store is the storage capability this package needs. *db.DB satisfies it.
type Store interface {
	GetMatchContext(ctx context.Context, matchID uuid.UUID) (*types.MatchContext, error)
	UpdateEmailSent(ctx context.Context, matchID uuid.UUID, sent bool) error
}

// Scheduler generates interview emails and tracks which matches received one.
type Scheduler struct {
	store  Store
	client llm.Client
	logger *zap.Logger
}

// New creates a Scheduler. A nil logger disables logging.
func New(store Store, client llm.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		store:  store,
		client: client,
		logger: logger,
	}
}

// GenerateEmail produces an interview invitation email for a match and flips
// its persisted email-sent flag. A missing match yields an empty string and
// no error.
func (s *Scheduler) GenerateEmail(ctx context.Context, matchID uuid.UUID, companyName string) (string, error) {
	if companyName == "" {
		companyName = DefaultCompanyName
	}

	mc, err := s.store.GetMatchContext(ctx, matchID)
	if err != nil {
		return "", err
	}
	if mc == nil {
		return "", nil
	}

	prompt := prompts.MustRender(prompts.InterviewFile, "interview-email", map[string]string{
		"CandidateName": mc.CandidateName,
		"JobTitle":      mc.JobTitle,
		"CompanyName":   companyName,
	})

	email, err := s.client.GenerateContent(ctx, prompt, llm.TierCreative)
	if err != nil {
		return "", err
	}

	if err := s.store.UpdateEmailSent(ctx, matchID, true); err != nil {
		return "", err
	}

	s.logger.Info("generated interview email",
		zap.String("match_id", matchID.String()),
		zap.String("candidate", mc.CandidateName),
		zap.String("job_title", mc.JobTitle),
	)

	return email, nil
}
