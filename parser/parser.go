package parser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

const (
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
	EngineGoose       = "goose"
	EngineParagraphs  = "paragraphs"
)

var (
	ErrEmptyContent  = errors.New("no readable content")
	ErrUnknownEngine = errors.New("unknown extraction engine")
)

// Article is the readable part of an HTML page.
type Article struct {
	Title       string
	TextContent string
}

// Extract pulls the article text out of htmlStr with the given engine.
// An empty engine means readability. When the engine errors or finds no text
// the paragraph extractor is tried before giving up.
func Extract(engine, htmlStr, pageURL string) (*Article, error) {
	article, err := extractWith(engine, htmlStr, pageURL)
	if errors.Is(err, ErrUnknownEngine) {
		return nil, err
	}
	if err != nil && engine != EngineParagraphs {
		fallback, ferr := extractWith(EngineParagraphs, htmlStr, pageURL)
		if ferr == nil {
			return fallback, nil
		}
	}
	return article, err
}

func extractWith(engine, htmlStr, pageURL string) (*Article, error) {
	var (
		article *Article
		err     error
	)
	switch engine {
	case "", EngineReadability:
		article, err = ParseHtmlWithReadability(htmlStr, pageURL)
	case EngineTrafilatura:
		article, err = ParseHtmlWithTrafilatura(htmlStr, pageURL)
	case EngineGoose:
		article, err = ParseHtmlWithGoose(htmlStr, pageURL)
	case EngineParagraphs:
		article, err = ParseHtmlParagraphs(htmlStr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
	if err != nil {
		return nil, err
	}

	article.TextContent = NormalizeText(article.TextContent)
	if article.TextContent == "" {
		return nil, ErrEmptyContent
	}
	article.Title = strings.TrimSpace(article.Title)
	return article, nil
}

// main parser
func ParseHtmlWithReadability(htmlStr, pageURL string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, parseURL(pageURL))
	if err != nil {
		return nil, err
	}
	return &Article{Title: article.Title, TextContent: article.TextContent}, nil
}

func ParseHtmlWithTrafilatura(htmlStr, pageURL string) (*Article, error) {
	opts := trafilatura.Options{
		OriginalURL: parseURL(pageURL),
	}

	result, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}
	return &Article{Title: result.Metadata.Title, TextContent: result.ContentText}, nil
}

func ParseHtmlWithGoose(htmlStr, pageURL string) (*Article, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, pageURL)
	if err != nil {
		return nil, err
	}
	return &Article{Title: article.Title, TextContent: article.CleanedText}, nil
}

// NormalizeText trims every line and collapses runs of blank lines into one.
func NormalizeText(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func parseURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return u
}
