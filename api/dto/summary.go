package dto

import (
	"rss-summarizer/models"
	"rss-summarizer/services"
)

type SummaryRequestDTO struct {
	URL        string `json:"url" form:"url" example:"https://www.bleepingcomputer.com/feed/"`
	Creativity string `json:"creativity" form:"creativity" example:"Medium" enums:"Low,Medium,High"`
}

// SummarizedPostDTO is one panel: title, topic, summary, raw published string and link.
type SummarizedPostDTO struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published" example:"Mon, 02 Jan 2023 10:00:00 +0000"`
	Topic     string `json:"topic,omitempty" example:"Technology"`
	Summary   string `json:"summary"`
}

type FailedPostDTO struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Stage     string `json:"stage" example:"retrieve"`
	Error     string `json:"error"`
}

type SkippedEntryDTO struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
	Reason    string `json:"reason"`
}

type SummaryResponseDTO struct {
	FeedURL    string              `json:"feed_url"`
	Creativity string              `json:"creativity"`
	Posts      []SummarizedPostDTO `json:"posts"`
	Failures   []FailedPostDTO     `json:"failures"`
	Skipped    []SkippedEntryDTO   `json:"skipped"`
	DurationMs int64               `json:"duration_ms"`
}

func NewSummarizedPostDTO(p models.SummarizedPost) SummarizedPostDTO {
	return SummarizedPostDTO{
		Title:     p.Title,
		Link:      p.Link,
		Published: p.PublishedRaw,
		Topic:     p.Topic,
		Summary:   p.Summary,
	}
}

func NewFailedPostDTO(r models.PostResult) FailedPostDTO {
	d := FailedPostDTO{
		Title:     r.Post.Title,
		Link:      r.Post.Link,
		Published: r.Post.PublishedRaw,
		Stage:     string(r.Stage),
	}
	if r.Err != nil {
		d.Error = r.Err.Error()
	}
	return d
}

func NewSummaryResponseDTO(report *services.Report) SummaryResponseDTO {
	out := SummaryResponseDTO{
		FeedURL:    report.FeedURL,
		Creativity: string(report.Creativity),
		Posts:      []SummarizedPostDTO{},
		Failures:   []FailedPostDTO{},
		Skipped:    []SkippedEntryDTO{},
		DurationMs: report.Duration.Milliseconds(),
	}
	for _, p := range report.Succeeded() {
		out.Posts = append(out.Posts, NewSummarizedPostDTO(p))
	}
	for _, f := range report.Failed() {
		out.Failures = append(out.Failures, NewFailedPostDTO(f))
	}
	for _, s := range report.Skipped {
		d := SkippedEntryDTO{
			Title:     s.Entry.Title,
			Link:      s.Entry.Link,
			Published: s.Entry.PublishedRaw,
		}
		if s.Reason != nil {
			d.Reason = s.Reason.Error()
		}
		out.Skipped = append(out.Skipped, d)
	}
	return out
}
