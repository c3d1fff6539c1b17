package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rss-summarizer/config"
	"rss-summarizer/renderer"
	"rss-summarizer/summarizer"
)

func TestNewRenderer(t *testing.T) {
	_, ok := NewRenderer(config.RetrieverConfig{Renderer: "http", TimeoutSeconds: 5}).(*renderer.HTTPRenderer)
	assert.True(t, ok)

	_, ok = NewRenderer(config.RetrieverConfig{Renderer: "chrome"}).(*renderer.ChromeRenderer)
	assert.True(t, ok)
}

func TestNewSummaryServiceGeminiBackend(t *testing.T) {
	cfg := config.AppConfig{
		Feed: config.FeedConfig{MaxPosts: 10, TimeoutSeconds: 5},
		LLM: config.LLMConfig{
			Backend:         "gemini",
			APIKey:          "test-key",
			ModelName:       "gemini-2.0-flash",
			MaxOutputTokens: 256,
		},
	}

	svc, cleanup, err := NewSummaryService(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, svc)
}

func TestNewSummaryServiceMissingKey(t *testing.T) {
	_, _, err := NewSummaryService(context.Background(), config.AppConfig{LLM: config.LLMConfig{Backend: "gemini"}})
	assert.ErrorIs(t, err, summarizer.ErrMissingCredentials)
}
