package retriever

import (
	"context"
	"fmt"

	"rss-summarizer/models"
	"rss-summarizer/parser"
	"rss-summarizer/renderer"
)

// Retriever turns an article link into documents ready for summarization.
type Retriever struct {
	renderer renderer.Renderer
	engine   string
	maxChars int
}

type Option func(*Retriever)

// WithEngine selects the extraction engine (see parser.Engine*).
func WithEngine(engine string) Option {
	return func(r *Retriever) {
		r.engine = engine
	}
}

// WithMaxContentChars truncates each document to n runes. Zero means no limit.
func WithMaxContentChars(n int) Option {
	return func(r *Retriever) {
		r.maxChars = n
	}
}

func New(rd renderer.Renderer, opts ...Option) *Retriever {
	r := &Retriever{renderer: rd, engine: parser.EngineReadability}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Retriever) Retrieve(ctx context.Context, link string) ([]models.Document, error) {
	page, err := r.renderer.Render(ctx, link)
	if err != nil {
		return nil, err
	}

	doc := models.Document{Source: link}
	if page.IsHTML() {
		article, err := parser.Extract(r.engine, page.Body, page.URL)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", link, err)
		}
		doc.Title = article.Title
		doc.PageContent = article.TextContent
	} else {
		doc.PageContent = parser.NormalizeText(page.Body)
		if doc.PageContent == "" {
			return nil, fmt.Errorf("extract %s: %w", link, parser.ErrEmptyContent)
		}
	}

	doc.PageContent = truncateRunes(doc.PageContent, r.maxChars)
	return []models.Document{doc}, nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
