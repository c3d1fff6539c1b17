package ranker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrMissingPublished = errors.New("entry has no published date")
	ErrUnparseableDate  = errors.New("unparseable published date")
)

// publishedLayouts are tried in order. The first two are the RFC 822 forms feeds
// use in practice: numeric offset, then named zone.
var publishedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
}

// rfc822Zones are the zone names RFC 822 allows. time.Parse only knows the
// offset of an abbreviation that matches the local zone, so these are fixed up
// after parsing.
var rfc822Zones = map[string]int{
	"UT":  0,
	"UTC": 0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ParsePublished parses a raw feed date with the fixed layout list.
func ParsePublished(raw string) (time.Time, error) {
	return parsePublished(raw, false)
}

func parsePublished(raw string, lenient bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrMissingPublished
	}

	if hasUnknownZone(raw) {
		return time.Time{}, fmt.Errorf("%w: unknown zone in %q", ErrUnparseableDate, raw)
	}

	for _, layout := range publishedLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return fixNamedZone(t), nil
	}

	if lenient {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, raw)
}

// hasUnknownZone reports whether raw ends in a zone abbreviation outside
// rfc822Zones. time.Parse reads such names as UTC, which would rank the entry
// at the wrong instant.
func hasUnknownZone(raw string) bool {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return false
	}
	name := fields[len(fields)-1]
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	_, ok := rfc822Zones[name]
	return !ok
}

func fixNamedZone(t time.Time) time.Time {
	name, offset := t.Zone()
	want, ok := rfc822Zones[name]
	if !ok || offset == want {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, want))
}
