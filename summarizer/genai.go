package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"rss-summarizer/models"
)

var ErrEmptyResponse = errors.New("model returned an empty response")

// GenAIGenerator calls a Gemini model through google.golang.org/genai.
type GenAIGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGenAIGenerator(client *genai.Client, modelName string) *GenAIGenerator {
	return &GenAIGenerator{client: client, modelName: modelName}
}

func (g *GenAIGenerator) Generate(ctx context.Context, prompt string, cfg models.ModelConfig) (string, *LLMRequestLog, error) {
	startTime := time.Now()
	llmLog := &LLMRequestLog{
		Prompt:      prompt,
		ModelName:   g.modelName,
		RequestedAt: startTime,
	}

	result, err := g.client.Models.GenerateContent(
		ctx,
		g.modelName,
		genai.Text(prompt),
		contentConfig(cfg),
	)
	llmLog.LatencyMs = time.Since(startTime).Milliseconds()
	llmLog.GeneratedAt = time.Now()
	if err != nil {
		llmLog.Error = err.Error()
		return "", llmLog, fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	llmLog.Response = text
	llmLog.ModelVersion = result.ModelVersion
	if result.UsageMetadata != nil {
		llmLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	// Callers decide whether an empty answer is an error.
	if text == "" {
		llmLog.Error = ErrEmptyResponse.Error()
	}
	return text, llmLog, nil
}

func contentConfig(cfg models.ModelConfig) *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(cfg.Temperature),
		TopP:        genai.Ptr(cfg.TopP),
	}
	if cfg.TopK > 0 {
		gc.TopK = genai.Ptr(float32(cfg.TopK))
	}
	if cfg.MaxOutputTokens > 0 {
		gc.MaxOutputTokens = int32(cfg.MaxOutputTokens)
	}
	return gc
}
