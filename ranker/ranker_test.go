package ranker

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rss-summarizer/models"
)

func entryAt(i int, t time.Time) models.FeedEntry {
	return models.FeedEntry{
		Title:        fmt.Sprintf("post-%02d", i),
		Link:         fmt.Sprintf("https://example.com/%d", i),
		PublishedRaw: t.Format(time.RFC1123Z),
		DateField:    models.DateFieldPubDate,
	}
}

func TestParsePublishedOffsetAndNamedZone(t *testing.T) {
	withOffset, err := ParsePublished("Mon, 02 Jan 2023 10:00:00 +0000")
	require.NoError(t, err)
	named, err := ParsePublished("Mon, 02 Jan 2023 10:00:00 GMT")
	require.NoError(t, err)

	assert.True(t, withOffset.Equal(named))
	assert.Equal(t, time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC), withOffset.UTC())
}

func TestParsePublishedLayouts(t *testing.T) {
	want := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)

	tests := map[string]string{
		"numeric offset":    "Tue, 05 Mar 2024 10:30:00 -0500",
		"named zone":        "Tue, 05 Mar 2024 10:30:00 EST",
		"single digit day":  "Tue, 5 Mar 2024 15:30:00 +0000",
		"single digit zone": "Tue, 5 Mar 2024 07:30:00 PST",
		"rfc3339":           "2024-03-05T15:30:00Z",
		"surrounding space": "  Tue, 05 Mar 2024 15:30:00 GMT\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParsePublished(raw)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParsePublishedErrors(t *testing.T) {
	_, err := ParsePublished("")
	assert.ErrorIs(t, err, ErrMissingPublished)

	_, err = ParsePublished("yesterday-ish")
	assert.ErrorIs(t, err, ErrUnparseableDate)
	assert.Contains(t, err.Error(), "yesterday-ish")

	_, err = ParsePublished("2024/03/05 15:30")
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestParsePublishedRejectsUnknownZones(t *testing.T) {
	for _, raw := range []string{
		"Mon, 02 Jan 2023 10:00:00 XYZ",
		"Mon, 02 Jan 2023 10:00:00 CEST",
		"Mon, 2 Jan 2023 10:00:00 BST",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParsePublished(raw)
			assert.ErrorIs(t, err, ErrUnparseableDate)

			_, err = parsePublished(raw, true)
			assert.ErrorIs(t, err, ErrUnparseableDate)
		})
	}
}

func TestRankSkipsUnknownZones(t *testing.T) {
	base := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)
	entries := []models.FeedEntry{
		entryAt(1, base),
		{Title: "cest", Link: "https://example.com/cest", PublishedRaw: "Mon, 02 Jan 2023 13:00:00 CEST"},
		entryAt(2, base.Add(-time.Hour)),
	}

	ranking := NewRanker(DefaultLimit).Rank(entries)
	require.Len(t, ranking.Posts, 2)
	assert.Equal(t, "post-01", ranking.Posts[0].Title)
	require.Len(t, ranking.Skipped, 1)
	assert.Equal(t, "cest", ranking.Skipped[0].Entry.Title)
	assert.ErrorIs(t, ranking.Skipped[0].Reason, ErrUnparseableDate)
}

func TestParsePublishedLenient(t *testing.T) {
	got, err := parsePublished("2024/03/05 15:30", true)
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 5, got.Day())

	_, err = parsePublished("not a date at all", true)
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestRankKeepsNewestTen(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var entries []models.FeedEntry
	// shuffled insertion order
	for _, i := range []int{3, 11, 0, 7, 5, 9, 1, 10, 2, 8, 4, 6} {
		entries = append(entries, entryAt(i, base.Add(time.Duration(i)*time.Hour)))
	}

	ranking := NewRanker(10).Rank(entries)
	require.Len(t, ranking.Posts, 10)
	assert.Empty(t, ranking.Skipped)

	for i := 1; i < len(ranking.Posts); i++ {
		assert.False(t, ranking.Posts[i].PublishedAt.After(ranking.Posts[i-1].PublishedAt))
	}
	assert.Equal(t, "post-11", ranking.Posts[0].Title)
	assert.Equal(t, "post-02", ranking.Posts[9].Title)

	oldestKept := ranking.Posts[9].PublishedAt
	kept := map[string]bool{}
	for _, p := range ranking.Posts {
		kept[p.Title] = true
	}
	for _, e := range entries {
		if kept[e.Title] {
			continue
		}
		excluded, err := ParsePublished(e.PublishedRaw)
		require.NoError(t, err)
		assert.False(t, excluded.After(oldestKept))
	}
}

func TestRankFewerThanLimit(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.FeedEntry{
		entryAt(1, base),
		entryAt(2, base.Add(2*time.Hour)),
		entryAt(3, base.Add(time.Hour)),
	}

	ranking := NewRanker(10).Rank(entries)
	require.Len(t, ranking.Posts, 3)
	assert.Equal(t, "post-02", ranking.Posts[0].Title)
	assert.Equal(t, "post-03", ranking.Posts[1].Title)
	assert.Equal(t, "post-01", ranking.Posts[2].Title)
	assert.Equal(t, entries[1].PublishedRaw, ranking.Posts[0].PublishedRaw)
}

func TestRankEmpty(t *testing.T) {
	ranking := NewRanker(0).Rank(nil)
	assert.Empty(t, ranking.Posts)
	assert.Empty(t, ranking.Skipped)
}

func TestRankSkipsBadDates(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.FeedEntry{
		entryAt(1, base),
		{Title: "no date", Link: "https://example.com/x"},
		{Title: "garbage", Link: "https://example.com/y", PublishedRaw: "soon", DateField: models.DateFieldPubDate},
		entryAt(2, base.Add(time.Hour)),
	}

	ranking := NewRanker(10).Rank(entries)
	require.Len(t, ranking.Posts, 2)
	require.Len(t, ranking.Skipped, 2)
	assert.ErrorIs(t, ranking.Skipped[0].Reason, ErrMissingPublished)
	assert.Equal(t, "no date", ranking.Skipped[0].Entry.Title)
	assert.ErrorIs(t, ranking.Skipped[1].Reason, ErrUnparseableDate)
}

func TestRankStableForEqualTimes(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.FeedEntry{entryAt(1, at), entryAt(2, at), entryAt(3, at)}

	ranking := NewRanker(2).Rank(entries)
	require.Len(t, ranking.Posts, 2)
	assert.Equal(t, "post-01", ranking.Posts[0].Title)
	assert.Equal(t, "post-02", ranking.Posts[1].Title)
}
