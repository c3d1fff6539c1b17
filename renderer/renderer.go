package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"rss-summarizer/internal/httpclient"
)

// MaxBodyBytes caps how much of an article response is read.
const MaxBodyBytes = 5 << 20

var ErrUnsupportedContentType = errors.New("unsupported content type")

// Page is a fetched article before extraction.
type Page struct {
	URL         string
	ContentType string
	Body        string
}

// IsHTML reports whether Body needs extraction. An empty content type is treated as HTML.
func (p *Page) IsHTML() bool {
	return p.ContentType == "" || p.ContentType == "text/html" || p.ContentType == "application/xhtml+xml"
}

type Renderer interface {
	Render(ctx context.Context, pageURL string) (*Page, error)
}

// HTTPRenderer fetches server-rendered pages with a plain GET.
type HTTPRenderer struct {
	client *http.Client
}

func NewHTTPRenderer(timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{client: httpclient.New(httpclient.Config{Timeout: timeout})}
}

// NewHTTPRendererWithClient renders through an existing client.
func NewHTTPRendererWithClient(client *http.Client) *HTTPRenderer {
	return &HTTPRenderer{client: client}
}

func (r *HTTPRenderer) Render(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", httpclient.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}

	contentType := mediaType(resp.Header.Get("Content-Type"))
	if contentType != "" && !strings.HasPrefix(contentType, "text/") && contentType != "application/xhtml+xml" {
		return nil, fmt.Errorf("fetch %s: %w %q", pageURL, ErrUnsupportedContentType, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", pageURL, err)
	}

	return &Page{
		URL:         resp.Request.URL.String(),
		ContentType: contentType,
		Body:        string(body),
	}, nil
}

func mediaType(header string) string {
	if header == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(header)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.Split(header, ";")[0]))
	}
	return mt
}
