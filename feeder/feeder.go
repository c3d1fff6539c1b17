package feeder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"

	"rss-summarizer/internal/httpclient"
	"rss-summarizer/models"
)

const FEEDER_TIMEOUT = 30 * time.Second

var ErrInvalidFeedURL = errors.New("invalid feed url")

// Fetcher downloads a feed and maps its items to FeedEntry values.
type Fetcher struct {
	client *http.Client
	// useUpdated lets an item without published/pubDate fall back to its updated field.
	useUpdated bool
}

type Option func(*Fetcher)

func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

func WithUpdatedFallback(enabled bool) Option {
	return func(f *Fetcher) {
		f.useUpdated = enabled
	}
}

func NewFetcher(timeout time.Duration, opts ...Option) *Fetcher {
	if timeout <= 0 {
		timeout = FEEDER_TIMEOUT
	}
	f := &Fetcher{
		client: httpclient.New(httpclient.Config{Timeout: timeout}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves feedURL and returns its entries in document order.
// There is no retry: network, status and parse failures are returned as is.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]models.FeedEntry, error) {
	if err := ValidateURL(feedURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSS request: %w", err)
	}
	req.Header.Set("User-Agent", httpclient.UserAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodySample, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return nil, fmt.Errorf("failed to fetch RSS feed: status code %d, url: %s, body: %s", resp.StatusCode, feedURL, string(bodySample))
	}

	cleanedReader, err := cleanControlCharacters(resp.Body)
	if err != nil {
		return nil, err
	}

	fp := gofeed.NewParser()
	fp.AtomTranslator = &atomTranslator{}

	feed, err := fp.Parse(cleanedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	return f.entries(feed), nil
}

func (f *Fetcher) entries(feed *gofeed.Feed) []models.FeedEntry {
	// gofeed maps both RSS <pubDate> and Atom <published> onto Item.Published.
	publishedField := models.DateFieldPublished
	if feed.FeedType == "rss" {
		publishedField = models.DateFieldPubDate
	}

	items := make([]models.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entry := models.FeedEntry{
			Title: strings.TrimSpace(item.Title),
			Link:  strings.TrimSpace(item.Link),
		}
		switch {
		case strings.TrimSpace(item.Published) != "":
			entry.PublishedRaw = strings.TrimSpace(item.Published)
			entry.DateField = publishedField
		case f.useUpdated && strings.TrimSpace(item.Updated) != "":
			entry.PublishedRaw = strings.TrimSpace(item.Updated)
			entry.DateField = models.DateFieldUpdated
		}
		items = append(items, entry)
	}
	return items
}

// atomTranslator keeps Item.Published empty for entries without <published>.
// The default translator copies <updated> into it, which would hide the
// difference between the two fields.
type atomTranslator struct {
	gofeed.DefaultAtomTranslator
}

func (t *atomTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	result, err := t.DefaultAtomTranslator.Translate(feed)
	if err != nil {
		return nil, err
	}
	af, ok := feed.(*atom.Feed)
	if !ok {
		return result, nil
	}
	for i, entry := range af.Entries {
		if i < len(result.Items) && strings.TrimSpace(entry.Published) == "" {
			result.Items[i].Published = ""
			result.Items[i].PublishedParsed = nil
		}
	}
	return result, nil
}

// ValidateURL accepts absolute http(s) URLs only.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFeedURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFeedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidFeedURL, raw)
	}
	return nil
}

// Control characters XML forbids. Tab, LF and CR are allowed.
var invalidControlCharRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

func cleanControlCharacters(r io.Reader) (io.Reader, error) {
	bodyBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body for cleaning: %w", err)
	}

	cleanedBytes := invalidControlCharRegex.ReplaceAll(bodyBytes, []byte(""))

	return bytes.NewReader(cleanedBytes), nil
}
