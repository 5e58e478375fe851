package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/prompts"
)

// AutoName asks the processor to extract the candidate name from the résumé
// text instead of using a caller-supplied one.
const AutoName = "auto"

// unknownCandidate is the terminal fallback when no name can be extracted.
const unknownCandidate = "Unknown Candidate"

// namePattern catches a "Name: Jane Doe" style mention in an LLM response
// that did not return JSON.
var namePattern = regexp.MustCompile(`(?i)name[:\s]+([^\n.]+)`)

// ResumeLoader extracts plain text from a résumé file. PDF extraction lives
// behind this interface; the engine only ever sees text.
type ResumeLoader interface {
	Load(ctx context.Context, path string) (string, error)
}

// TextFileLoader is the default ResumeLoader: it reads plain-text résumé
// files and normalizes their whitespace.
type TextFileLoader struct{}

// Load reads and cleans a plain-text résumé file.
func (TextFileLoader) Load(_ context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return CleanText(string(content)), nil
}

// ResumeResult is the per-file outcome of a bulk résumé ingestion run.
type ResumeResult struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	FilePath    string    `json:"file_path"`
}

// ResumeStatusFunc is invoked after every file in a bulk ingestion run.
type ResumeStatusFunc func(completed, total int, name, status string)

// ResumeProcessor loads, embeds and stores candidate résumés.
type ResumeProcessor struct {
	store    Store
	client   llm.Client
	embedder llm.Embedder
	loader   ResumeLoader
	logger   *zap.Logger
}

// NewResumeProcessor creates a ResumeProcessor. A nil loader defaults to
// TextFileLoader; a nil logger disables logging.
func NewResumeProcessor(store Store, client llm.Client, embedder llm.Embedder, loader ResumeLoader, logger *zap.Logger) *ResumeProcessor {
	if loader == nil {
		loader = TextFileLoader{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeProcessor{
		store:    store,
		client:   client,
		embedder: embedder,
		loader:   loader,
		logger:   logger,
	}
}

// ProcessResume loads a résumé file, resolves the candidate name, embeds the
// text and stores the candidate. An empty or "auto" name triggers LLM name
// extraction, falling back to the file name.
func (p *ResumeProcessor) ProcessResume(ctx context.Context, name, path string) (uuid.UUID, string, error) {
	resumeText, err := p.loader.Load(ctx, path)
	if err != nil {
		return uuid.Nil, "", err
	}

	resolved := name
	if resolved == "" || strings.EqualFold(resolved, AutoName) {
		resolved, err = p.ExtractName(ctx, resumeText)
		if err != nil || resolved == "" {
			resolved = filepath.Base(path)
		}
	}

	embedding, err := p.embedder.EmbedText(ctx, resumeText)
	if err != nil {
		return uuid.Nil, "", err
	}

	candidateID, err := p.store.AddCandidate(ctx, resolved, resumeText, embedding)
	if err != nil {
		return uuid.Nil, "", err
	}

	p.logger.Info("processed resume",
		zap.String("candidate_id", candidateID.String()),
		zap.String("name", resolved),
		zap.String("path", path),
	)

	return candidateID, resolved, nil
}

// ExtractName pulls the candidate's full name out of résumé text via the
// LLM. Fallback chain: JSON "full_name" field, then a "name: ..." mention in
// the response, then the response's first line, then "Unknown Candidate".
func (p *ResumeProcessor) ExtractName(ctx context.Context, resumeText string) (string, error) {
	prompt := prompts.MustRender(prompts.IngestionFile, "name-extraction", map[string]string{
		"ResumeText": resumeText,
	})

	resp, err := p.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", err
	}

	if extracted := llm.ExtractJSONObject(resp); len(extracted) > 0 {
		if name, ok := extracted["full_name"].(string); ok && name != "" {
			return strings.TrimSpace(name), nil
		}
	}

	if m := namePattern.FindStringSubmatch(resp); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	if first, _, _ := strings.Cut(strings.TrimSpace(resp), "\n"); first != "" {
		return strings.TrimSpace(first), nil
	}

	return unknownCandidate, nil
}

// BulkProcessResumes ingests many résumé files sequentially with the same
// contract as batch matching: one result per file in input order, per-file
// failures recorded as "error: <message>" without aborting the run, and the
// status callback invoked after every file.
func (p *ResumeProcessor) BulkProcessResumes(ctx context.Context, paths []string, status ResumeStatusFunc) []ResumeResult {
	total := len(paths)
	results := make([]ResumeResult, 0, total)

	for i, path := range paths {
		candidateID, name, err := p.ProcessResume(ctx, AutoName, path)

		result := ResumeResult{
			CandidateID: candidateID,
			Name:        name,
			Status:      "success",
			FilePath:    path,
		}
		if err != nil {
			result.Name = filepath.Base(path)
			result.Status = fmt.Sprintf("error: %s", err)
			p.logger.Warn("resume ingestion failed",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		results = append(results, result)

		if status != nil {
			status(i+1, total, result.Name, result.Status)
		}
	}

	return results
}
