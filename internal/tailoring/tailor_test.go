package tailoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/llm"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return `{}`, nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestGenerateCV_PassesInputsToPrompt(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			assert.Equal(t, llm.TierCreative, tier)
			assert.Contains(t, prompt, "Jane Doe, Go developer since 2015")
			assert.Contains(t, prompt, "Senior Backend Engineer at Acme")
			return "# Jane Doe\n\nTailored CV body", nil
		},
	}
	g := New(client)

	cv, err := g.GenerateCV(context.Background(),
		"Jane Doe, Go developer since 2015",
		"Senior Backend Engineer at Acme")
	require.NoError(t, err)
	assert.Contains(t, cv, "Tailored CV body")
}

func TestGenerateCV_PropagatesError(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	g := New(client)

	_, err := g.GenerateCV(context.Background(), "cv", "job")
	assert.Error(t, err)
}
