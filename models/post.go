package models

import (
	"time"
)

// Feed fields a raw published string can come from.
const (
	DateFieldPublished = "published"
	DateFieldPubDate   = "pubDate"
	DateFieldUpdated   = "updated"
)

// FeedEntry is one item as it appears in the feed.
type FeedEntry struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	PublishedRaw string `json:"published_ts"`
	// DateField names the feed field PublishedRaw was read from. Empty when the
	// entry carries no published date at all.
	DateField string `json:"date_field,omitempty"`
}

// RankedPost is a FeedEntry with its parsed publication time.
// PublishedAt is only used for ordering; pages show PublishedRaw.
type RankedPost struct {
	FeedEntry
	PublishedAt time.Time `json:"published_at"`
}

// SummarizedPost is a ranked post after a successful model call.
type SummarizedPost struct {
	RankedPost
	Summary string `json:"summary"`
	Topic   string `json:"topic,omitempty"`
}

// SkippedEntry is a feed entry the ranker could not place on the timeline.
type SkippedEntry struct {
	Entry  FeedEntry
	Reason error
}

// Document is the readable content of one article page.
type Document struct {
	Source      string
	Title       string
	PageContent string
}
