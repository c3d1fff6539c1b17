package services

import (
	"context"
	"errors"
	"time"

	"rss-summarizer/internal/logger"
	"rss-summarizer/internal/trace"
	"rss-summarizer/models"
	"rss-summarizer/ranker"
	"rss-summarizer/summarizer"
)

type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]models.FeedEntry, error)
}

type ArticleRetriever interface {
	Retrieve(ctx context.Context, link string) ([]models.Document, error)
}

type PostSummarizer interface {
	Summarize(ctx context.Context, docs []models.Document, mc models.ModelConfig) (*summarizer.SummarizeResult, error)
}

// QuotaLimiter is checked once before every summarization.
type QuotaLimiter interface {
	WaitAndReserve(ctx context.Context) error
}

// Report is everything one request produced.
type Report struct {
	FeedURL    string
	Creativity models.Creativity
	// Results are in ranked order, one per ranked post.
	Results   []models.PostResult
	Skipped   []models.SkippedEntry
	StartedAt time.Time
	Duration  time.Duration
}

// Succeeded returns the summarized posts in ranked order.
func (r *Report) Succeeded() []models.SummarizedPost {
	out := make([]models.SummarizedPost, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, *res.Summarized)
		}
	}
	return out
}

func (r *Report) Failed() []models.PostResult {
	var out []models.PostResult
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// SummaryService runs fetch, rank, retrieve and summarize for one feed.
type SummaryService struct {
	fetcher         FeedFetcher
	ranker          *ranker.Ranker
	retriever       ArticleRetriever
	summarizer      PostSummarizer
	quota           QuotaLimiter
	maxOutputTokens int
}

func NewSummaryService(
	fetcher FeedFetcher,
	rk *ranker.Ranker,
	retriever ArticleRetriever,
	sum PostSummarizer,
	quota QuotaLimiter,
	maxOutputTokens int,
) *SummaryService {
	return &SummaryService{
		fetcher:         fetcher,
		ranker:          rk,
		retriever:       retriever,
		summarizer:      sum,
		quota:           quota,
		maxOutputTokens: maxOutputTokens,
	}
}

// Run processes the newest posts of feedURL one at a time, in ranked order.
// Only a feed failure is returned as an error; per-post failures are tagged
// in the report and the batch carries on.
func (s *SummaryService) Run(ctx context.Context, feedURL string, creativity models.Creativity) (*Report, error) {
	report := &Report{
		FeedURL:    feedURL,
		Creativity: creativity,
		StartedAt:  time.Now(),
	}

	entries, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	ranking := s.ranker.Rank(entries)
	report.Skipped = ranking.Skipped
	for _, sk := range ranking.Skipped {
		logger.InfoWithFields("feed entry skipped", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"title":      sk.Entry.Title,
			"reason":     sk.Reason.Error(),
		})
	}

	mc := models.ModelConfigFor(creativity, s.maxOutputTokens)
	report.Results = make([]models.PostResult, 0, len(ranking.Posts))
	for _, post := range ranking.Posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := s.processPost(ctx, post, mc)
		if !res.OK() {
			logger.ErrorWithFields("post summary failed", logger.Fields{
				"request_id": trace.RequestIDFromContext(ctx),
				"link":       post.Link,
				"stage":      string(res.Stage),
				"error":      res.Err.Error(),
			})
		}
		report.Results = append(report.Results, res)
	}

	report.Duration = time.Since(report.StartedAt)
	logger.InfoWithFields("feed summarized", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"feed_url":   feedURL,
		"creativity": string(creativity),
		"ranked":     len(ranking.Posts),
		"skipped":    len(ranking.Skipped),
		"failed":     len(report.Failed()),
		"duration":   report.Duration.String(),
	})
	return report, nil
}

func (s *SummaryService) processPost(ctx context.Context, post models.RankedPost, mc models.ModelConfig) models.PostResult {
	res := models.PostResult{Post: post}

	docs, err := s.retriever.Retrieve(ctx, post.Link)
	if err != nil {
		res.Stage, res.Err = models.StageRetrieve, err
		return res
	}

	if s.quota != nil {
		if err := s.quota.WaitAndReserve(ctx); err != nil {
			res.Stage, res.Err = models.StageQuota, err
			return res
		}
	}

	out, err := s.summarizer.Summarize(ctx, docs, mc)
	if err != nil {
		res.Stage = models.StageSummarize
		if errors.Is(err, summarizer.ErrClassify) {
			res.Stage = models.StageClassify
		}
		res.Err = err
		return res
	}

	res.Summarized = &models.SummarizedPost{
		RankedPost: post,
		Summary:    out.Summary,
		Topic:      out.Topic,
	}
	return res
}
