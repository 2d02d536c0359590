// Package timebucket sorts match timestamps into coarse recency buckets.
//
// All calendar arithmetic happens in UTC so a classification never depends
// on the host time zone.
package timebucket

import "time"

type Bucket string

const (
	Today     Bucket = "today"
	Yesterday Bucket = "yesterday"
	ThisWeek  Bucket = "this_week"
	Older     Bucket = "older"
	Unknown   Bucket = "unknown"
)

const week = 7 * 24 * time.Hour

// Classify buckets ts relative to now. A zero ts is Unknown.
func Classify(ts, now time.Time) Bucket {
	if ts.IsZero() {
		return Unknown
	}
	ts = ts.UTC()
	now = now.UTC()

	if ts.After(now) {
		return Today
	}

	switch daysBetween(ts, now) {
	case 0:
		return Today
	case 1:
		return Yesterday
	}

	if now.Sub(ts) <= week {
		return ThisWeek
	}
	return Older
}

// daysBetween counts calendar days from a to b, both UTC.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

type Counts struct {
	Today     int
	Yesterday int
	ThisWeek  int
	Older     int
	Unknown   int
}

func (c Counts) Total() int {
	return c.Today + c.Yesterday + c.ThisWeek + c.Older + c.Unknown
}

// Known is the number of timestamps that could be classified.
func (c Counts) Known() int {
	return c.Total() - c.Unknown
}

func Count(timestamps []time.Time, now time.Time) Counts {
	var c Counts
	for _, ts := range timestamps {
		switch Classify(ts, now) {
		case Today:
			c.Today++
		case Yesterday:
			c.Yesterday++
		case ThisWeek:
			c.ThisWeek++
		case Older:
			c.Older++
		default:
			c.Unknown++
		}
	}
	return c
}
