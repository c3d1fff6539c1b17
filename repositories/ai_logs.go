package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"rss-summarizer/internal/logger"
	"rss-summarizer/internal/trace"
	"rss-summarizer/models"
	"rss-summarizer/summarizer"
)

const recordTimeout = 5 * time.Second

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// RecordCall stores one model call. Storage errors are logged, never returned,
// so the audit log cannot fail a summary.
func (r *AILogRepository) RecordCall(ctx context.Context, l *summarizer.LLMRequestLog) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if _, err := r.Insert(ctx, ToAILog(ctx, l)); err != nil {
		logger.ErrorWithFields("failed to insert ai log", logger.Fields{
			"post_link": l.Source,
			"purpose":   l.Purpose,
			"error":     err.Error(),
		})
	}
}

// ToAILog maps a model call onto the stored document.
func ToAILog(ctx context.Context, l *summarizer.LLMRequestLog) models.AILog {
	requestID := trace.RequestIDFromContext(ctx)
	log := models.AILog{
		RequestID:      requestID,
		Purpose:        l.Purpose,
		PostLink:       l.Source,
		ModelName:      l.ModelName,
		ModelVersion:   l.ModelVersion,
		InputTokens:    l.TokenUsage.InputTokens,
		OutputTokens:   l.TokenUsage.OutputTokens,
		TotalTokens:    l.TokenUsage.TotalTokens,
		DurationMs:     l.LatencyMs,
		InputPrompt:    l.Prompt,
		OutputResponse: l.Response,
		RequestedAt:    l.RequestedAt,
		CompletedAt:    l.GeneratedAt,
	}
	if l.Error != "" {
		msg := l.Error
		log.ErrorMessage = &msg
	}
	return log
}
