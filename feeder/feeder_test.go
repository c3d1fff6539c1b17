package feeder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rss-summarizer/feeder"
	"rss-summarizer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example</title>
  <item>
    <title>First` + "\x0B" + ` post</title>
    <link>https://example.com/1</link>
    <pubDate>Mon, 02 Jan 2023 10:00:00 +0000</pubDate>
  </item>
  <item>
    <title>No date</title>
    <link>https://example.com/2</link>
  </item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Example</title>
  <entry>
    <title>Published entry</title>
    <link href="https://example.com/a"/>
    <id>a</id>
    <published>2023-01-02T10:00:00Z</published>
    <updated>2023-01-03T10:00:00Z</updated>
  </entry>
  <entry>
    <title>Updated only</title>
    <link href="https://example.com/b"/>
    <id>b</id>
    <updated>2023-01-04T10:00:00Z</updated>
  </entry>
</feed>`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRSS(t *testing.T) {
	srv := serve(t, http.StatusOK, rssFeed)

	items, err := feeder.NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "First post", items[0].Title)
	assert.Equal(t, "https://example.com/1", items[0].Link)
	assert.Equal(t, "Mon, 02 Jan 2023 10:00:00 +0000", items[0].PublishedRaw)
	assert.Equal(t, models.DateFieldPubDate, items[0].DateField)

	assert.Empty(t, items[1].PublishedRaw)
	assert.Empty(t, items[1].DateField)
}

func TestFetchAtom(t *testing.T) {
	srv := serve(t, http.StatusOK, atomFeed)

	items, err := feeder.NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "2023-01-02T10:00:00Z", items[0].PublishedRaw)
	assert.Equal(t, models.DateFieldPublished, items[0].DateField)
	assert.Empty(t, items[1].PublishedRaw)
}

func TestFetchAtomUpdatedFallback(t *testing.T) {
	srv := serve(t, http.StatusOK, atomFeed)

	f := feeder.NewFetcher(5*time.Second, feeder.WithUpdatedFallback(true))
	items, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.DateFieldPublished, items[0].DateField)
	assert.Equal(t, "2023-01-04T10:00:00Z", items[1].PublishedRaw)
	assert.Equal(t, models.DateFieldUpdated, items[1].DateField)
}

func TestFetchNonOK(t *testing.T) {
	srv := serve(t, http.StatusForbidden, "blocked")

	_, err := feeder.NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "blocked")
}

func TestFetchNotAFeed(t *testing.T) {
	srv := serve(t, http.StatusOK, "<html><body>hello</body></html>")

	_, err := feeder.NewFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestValidateURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com/feed", "example.com/feed", "https://"} {
		assert.ErrorIs(t, feeder.ValidateURL(raw), feeder.ErrInvalidFeedURL, raw)
	}
	assert.NoError(t, feeder.ValidateURL("https://www.bleepingcomputer.com/feed/"))
}
