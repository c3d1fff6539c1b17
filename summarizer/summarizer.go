package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rss-summarizer/config"
	"rss-summarizer/internal/logger"
	"rss-summarizer/models"
)

// Step errors let callers tell which model call failed.
var (
	ErrSummarize = errors.New("summary step failed")
	ErrClassify  = errors.New("topic step failed")
	ErrNoContent = errors.New("no document content to summarize")
)

type SummarizeResult struct {
	Summary string `json:"summary"`
	Topic   string `json:"topic,omitempty"`
}

type Summarizer struct {
	gen         Generator
	recorder    CallRecorder
	classify    bool
	topicPolicy string
}

type Option func(*Summarizer)

// WithClassification turns the topic step on or off. It is on by default.
func WithClassification(enabled bool) Option {
	return func(s *Summarizer) {
		s.classify = enabled
	}
}

func WithTopicPolicy(policy string) Option {
	return func(s *Summarizer) {
		s.topicPolicy = policy
	}
}

func WithCallRecorder(r CallRecorder) Option {
	return func(s *Summarizer) {
		if r != nil {
			s.recorder = r
		}
	}
}

func New(gen Generator, opts ...Option) *Summarizer {
	s := &Summarizer{
		gen:         gen,
		recorder:    noopRecorder{},
		classify:    true,
		topicPolicy: config.TopicPolicyPassthrough,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize runs the summary prompt over docs, then classifies the summary.
// Either step failing fails the whole call; no partial result is returned.
func (s *Summarizer) Summarize(ctx context.Context, docs []models.Document, mc models.ModelConfig) (*SummarizeResult, error) {
	text := stuffDocuments(docs)
	if text == "" {
		return nil, fmt.Errorf("%w: %w", ErrSummarize, ErrNoContent)
	}
	source := ""
	if len(docs) > 0 {
		source = docs[0].Source
	}

	summary, err := s.call(ctx, PurposeSummary, source, BuildSummaryPrompt(text), mc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSummarize, err)
	}
	result := &SummarizeResult{Summary: strings.TrimSpace(summary)}

	if !s.classify {
		return result, nil
	}

	label, err := s.call(ctx, PurposeTopic, source, BuildTopicPrompt(result.Summary), mc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassify, err)
	}
	result.Topic = NormalizeTopic(label, s.topicPolicy)
	return result, nil
}

func (s *Summarizer) call(ctx context.Context, purpose, source, prompt string, mc models.ModelConfig) (string, error) {
	text, llmLog, err := s.gen.Generate(ctx, prompt, mc)
	if llmLog != nil {
		llmLog.Purpose = purpose
		llmLog.Source = source
		s.recorder.RecordCall(ctx, llmLog)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" && purpose == PurposeSummary {
		return "", ErrEmptyResponse
	}

	logger.DebugWithFields("model call finished", logger.Fields{
		"purpose": purpose,
		"source":  source,
	})
	return text, nil
}

// stuffDocuments joins every document into one prompt body.
func stuffDocuments(docs []models.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		if c := strings.TrimSpace(d.PageContent); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "\n\n")
}
