package summarizer

import (
	"context"
	"time"

	"rss-summarizer/models"
)

// Purposes recorded on each model call.
const (
	PurposeSummary = "summary"
	PurposeTopic   = "topic"
)

type LLMRequestLog struct {
	Purpose      string     `json:"purpose"`
	Source       string     `json:"source"`
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	Error        string     `json:"error,omitempty"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	RequestedAt  time.Time  `json:"requested_at"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// Generator sends one prompt to a text model.
// The returned log may be non-nil even when err is set.
type Generator interface {
	Generate(ctx context.Context, prompt string, cfg models.ModelConfig) (string, *LLMRequestLog, error)
}

// CallRecorder receives every model call made by a Summarizer.
type CallRecorder interface {
	RecordCall(ctx context.Context, log *LLMRequestLog)
}

type noopRecorder struct{}

func (noopRecorder) RecordCall(context.Context, *LLMRequestLog) {}
