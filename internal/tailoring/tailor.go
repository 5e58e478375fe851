// Package tailoring generates a CV tailored to a specific job description
// from a candidate's existing résumé.
package tailoring

import (
	"context"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/prompts"
)

// Generator produces tailored CVs.
type Generator struct {
	client llm.Client
}

// New creates a Generator.
func New(client llm.Client) *Generator {
	return &Generator{client: client}
}

// GenerateCV rewrites the résumé to foreground the experience most relevant
// to the job description, without inventing anything new.
func (g *Generator) GenerateCV(ctx context.Context, resumeText, jobDescription string) (string, error) {
	prompt := prompts.MustRender(prompts.TailoringFile, "cv-generation", map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})

	return g.client.GenerateContent(ctx, prompt, llm.TierCreative)
}
