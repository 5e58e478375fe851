package matching

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/logger"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/prompts"
	"github.com/shekharsomani98/hr-recruitment-assistant/internal/types"
)

// neutralScore is returned when a technique has nothing to judge: jobs with
// no declared required skills and semantic judgments that failed to parse
// score 0.5 rather than 0, so their absence does not read as "no match".
const neutralScore = 0.5

// responsePreviewLimit caps LLM responses quoted in debug logs.
const responsePreviewLimit = 200

// directScoreResult holds the score and qualitative fields produced by the
// LLM-judged direct evaluation. Only this technique contributes skill lists
// and the free-text assessment to the persisted details.
type directScoreResult struct {
	Score                   float64
	MatchingSkills          []string
	MissingSkills           []string
	MatchingPreferredSkills []string
	Assessment              string
}

// directScore runs the LLM-judged evaluation of the structured job summary
// against the CV text. The response is expected to carry a 0-100 "score"
// plus skill lists and an assessment; the score is normalized to [0,1].
// Unparseable responses fail soft to a zero-score empty result. The returned
// error is reserved for generation failures (transport, quota), which the
// caller decides how to isolate.
func (m *Matcher) directScore(ctx context.Context, summary *types.JobSummary, cvText string) (directScoreResult, error) {
	if summary == nil {
		summary = &types.JobSummary{}
	}
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return directScoreResult{}, err
	}

	prompt := prompts.MustRender(prompts.MatchingFile, "candidate-match", map[string]string{
		"JobSummary": string(summaryJSON),
		"CVText":     cvText,
	})

	resp, err := m.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return directScoreResult{}, err
	}
	m.logger.Debug("direct score response",
		zap.String("response_preview", logger.TruncateForLog(resp, responsePreviewLimit)),
	)

	data := llm.ExtractJSONObject(resp)

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		score = 0
	}

	return directScoreResult{
		Score:                   score / 100.0,
		MatchingSkills:          coerceStringSlice(data["matching_skills"]),
		MissingSkills:           coerceStringSlice(data["missing_skills"]),
		MatchingPreferredSkills: coerceStringSlice(data["matching_preferred_skills"]),
		Assessment:              coerceString(data["assessment"]),
	}, nil
}

// semanticScore runs the LLM-judged semantic comparison of the raw job
// description against the CV text. A missing or unparseable "match_score"
// defaults to the neutral 0.5.
func (m *Matcher) semanticScore(ctx context.Context, jobDescription, cvText string) (float64, error) {
	prompt := prompts.MustRender(prompts.MatchingFile, "semantic-match", map[string]string{
		"JobDescription": jobDescription,
		"CVText":         cvText,
	})

	resp, err := m.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return 0, err
	}
	m.logger.Debug("semantic score response",
		zap.String("response_preview", logger.TruncateForLog(resp, responsePreviewLimit)),
	)

	data := llm.ExtractJSONObject(resp)
	score := coerceFloat(data["match_score"])
	if math.IsNaN(score) {
		return neutralScore, nil
	}
	return score, nil
}

// skillsMatchScore is the keyword heuristic: the fraction of required skills
// present in the CV as case-insensitive substrings. A job with no declared
// required skills scores the neutral 0.5 so it is not penalized.
func skillsMatchScore(requiredSkills []string, cvText string) float64 {
	if len(requiredSkills) == 0 {
		return neutralScore
	}

	cvLower := strings.ToLower(cvText)
	matched := 0
	for _, skill := range requiredSkills {
		if strings.Contains(cvLower, strings.ToLower(skill)) {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSkills))
}

// coerceFloat converts loosely-typed JSON values to float64, returning NaN
// when no numeric reading exists.
func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
