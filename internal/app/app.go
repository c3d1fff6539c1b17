package app

import (
	"context"
	"errors"
	"time"

	"rss-summarizer/config"
	"rss-summarizer/db"
	"rss-summarizer/feeder"
	"rss-summarizer/internal/logger"
	"rss-summarizer/quota"
	"rss-summarizer/ranker"
	"rss-summarizer/renderer"
	"rss-summarizer/repositories"
	"rss-summarizer/retriever"
	"rss-summarizer/services"
	"rss-summarizer/summarizer"
)

// NewSummaryService wires the request pipeline from configuration. The model
// client is built here once; the returned cleanup closes the optional Mongo
// audit log connection.
func NewSummaryService(ctx context.Context, cfg config.AppConfig) (*services.SummaryService, func(), error) {
	client, err := summarizer.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	sumOpts := []summarizer.Option{
		summarizer.WithClassification(cfg.LLM.ClassifyEnabled()),
		summarizer.WithTopicPolicy(cfg.LLM.TopicPolicy),
	}
	switch err := db.Init(ctx, cfg.Mongo); {
	case err == nil:
		sumOpts = append(sumOpts, summarizer.WithCallRecorder(repositories.NewAILogRepository(db.Database())))
		cleanup = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = db.Close(ctx)
		}
	case errors.Is(err, db.ErrNotConfigured):
		logger.Log.Info("mongo.uri not set, model call audit log disabled")
	default:
		logger.Log.Errorf("failed to connect to MongoDB, model call audit log disabled: %v", err)
	}

	svc := services.NewSummaryService(
		feeder.NewFetcher(seconds(cfg.Feed.TimeoutSeconds), feeder.WithUpdatedFallback(cfg.Feed.UseUpdatedFallback)),
		ranker.NewRanker(cfg.Feed.MaxPosts, ranker.WithLenientDates(cfg.Feed.LenientDates)),
		retriever.New(
			NewRenderer(cfg.Retriever),
			retriever.WithEngine(cfg.Retriever.Extractor),
			retriever.WithMaxContentChars(cfg.Retriever.MaxContentChars),
		),
		summarizer.New(summarizer.NewGenAIGenerator(client, cfg.LLM.ModelName), sumOpts...),
		quota.NewSummaryQuotaLimiterFromConfig(cfg),
		cfg.LLM.MaxOutputTokens,
	)
	return svc, cleanup, nil
}

// NewRenderer picks the page renderer named in retriever.renderer.
func NewRenderer(cfg config.RetrieverConfig) renderer.Renderer {
	timeout := seconds(cfg.TimeoutSeconds)
	if cfg.Renderer == "chrome" {
		return renderer.NewChromeRenderer(timeout)
	}
	return renderer.NewHTTPRenderer(timeout)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
