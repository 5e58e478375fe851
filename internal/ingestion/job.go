// Package ingestion brings jobs and candidate résumés into the system:
// LLM-summarizing job descriptions, extracting candidate names, embedding
// text, and storing the results.
package ingestion

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/prompts"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/schemas"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// Store is the storage capability ingestion needs. *db.DB satisfies it.
type Store interface {
	AddJob(ctx context.Context, title, description string, summary *types.JobSummary, embedding []float32) (uuid.UUID, error)
	AddCandidate(ctx context.Context, name, cvText string, embedding []float32) (uuid.UUID, error)
}

// JobProcessor summarizes, embeds and stores job descriptions.
type JobProcessor struct {
	store    Store
	client   llm.Client
	embedder llm.Embedder
	logger   *zap.Logger
}

// NewJobProcessor creates a JobProcessor. A nil logger disables logging.
func NewJobProcessor(store Store, client llm.Client, embedder llm.Embedder, logger *zap.Logger) *JobProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobProcessor{
		store:    store,
		client:   client,
		embedder: embedder,
		logger:   logger,
	}
}

// ProcessJobDescription summarizes a job description via the LLM, embeds the
// raw description, stores the job and returns its ID.
//
// An unparseable or schema-invalid summary response degrades to an empty
// summary carrying the supplied title; it never fails the ingestion.
func (p *JobProcessor) ProcessJobDescription(ctx context.Context, title, description string) (uuid.UUID, error) {
	summary := p.summarize(ctx, title, description)

	embedding, err := p.embedder.EmbedText(ctx, description)
	if err != nil {
		return uuid.Nil, err
	}

	jobID, err := p.store.AddJob(ctx, title, description, summary, embedding)
	if err != nil {
		return uuid.Nil, err
	}

	p.logger.Info("processed job description",
		zap.String("job_id", jobID.String()),
		zap.String("title", title),
		zap.Int("required_skills", len(summary.RequiredSkills)),
	)

	return jobID, nil
}

// summarize asks the LLM for a structured summary, falling back to an empty
// summary on any parse or validation failure.
func (p *JobProcessor) summarize(ctx context.Context, title, description string) *types.JobSummary {
	prompt := prompts.MustRender(prompts.IngestionFile, "job-summary", map[string]string{
		"Description": description,
	})

	resp, err := p.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		p.logger.Warn("job summary generation failed, using empty summary", zap.Error(err))
		return types.EmptySummary(title)
	}

	extracted := llm.ExtractJSONObject(resp)
	if len(extracted) == 0 {
		p.logger.Warn("job summary response had no parseable JSON, using empty summary")
		return types.EmptySummary(title)
	}

	raw, err := json.Marshal(extracted)
	if err != nil {
		return types.EmptySummary(title)
	}
	if err := schemas.ValidateJobSummary(string(raw)); err != nil {
		p.logger.Warn("job summary failed schema validation, using empty summary", zap.Error(err))
		return types.EmptySummary(title)
	}

	var summary types.JobSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return types.EmptySummary(title)
	}
	if summary.Title == "" {
		summary.Title = title
	}

	return &summary
}
