package ranker

import (
	"slices"

	"rss-summarizer/models"
)

const DefaultLimit = 10

// Ranking is the outcome of ordering one feed.
type Ranking struct {
	// Posts are newest first, at most the ranker's limit.
	Posts []models.RankedPost
	// Skipped are entries left out because their date was missing or unparseable.
	Skipped []models.SkippedEntry
}

type Ranker struct {
	limit   int
	lenient bool
}

type Option func(*Ranker)

// WithLenientDates tries a free-form parser when every fixed layout fails.
func WithLenientDates(enabled bool) Option {
	return func(r *Ranker) {
		r.lenient = enabled
	}
}

// NewRanker returns a ranker keeping at most limit posts (DefaultLimit when <= 0).
func NewRanker(limit int, opts ...Option) *Ranker {
	if limit <= 0 {
		limit = DefaultLimit
	}
	r := &Ranker{limit: limit}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank parses every entry's date, drops the ones that cannot be placed, sorts the
// rest by time descending and keeps the first limit. A bad date never fails the batch.
func (r *Ranker) Rank(entries []models.FeedEntry) Ranking {
	var ranking Ranking
	posts := make([]models.RankedPost, 0, len(entries))

	for _, entry := range entries {
		publishedAt, err := parsePublished(entry.PublishedRaw, r.lenient)
		if err != nil {
			ranking.Skipped = append(ranking.Skipped, models.SkippedEntry{Entry: entry, Reason: err})
			continue
		}
		posts = append(posts, models.RankedPost{FeedEntry: entry, PublishedAt: publishedAt})
	}

	slices.SortStableFunc(posts, func(a, b models.RankedPost) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})

	if len(posts) > r.limit {
		posts = posts[:r.limit]
	}
	ranking.Posts = posts
	return ranking
}
