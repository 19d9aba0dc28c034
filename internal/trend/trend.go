// Package trend turns a target's session logs into an ordered series of
// chart buckets: one bucket per session when a single day is requested,
// one bucket per calendar day otherwise.
package trend

import (
	"fmt"
	"sort"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
	"github.com/lixm/gokao/internal/timerange"
)

// FilterAll selects every category; any other CategoryFilter value names a
// single category to restrict summation to.
const FilterAll = record.Category("all")

// ParseFilter maps a user-supplied filter string to a category filter.
func ParseFilter(s string) (record.Category, error) {
	if s == "" || s == string(FilterAll) {
		return FilterAll, nil
	}
	c, ok := record.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Bucket is one aggregation unit in the trend chart. SortKey is the epoch
// millisecond the bucket starts at; buckets are returned in ascending
// SortKey order.
type Bucket struct {
	Label    string
	SortKey  int64
	Accuracy int
}

// Buckets produces the chart series for the inclusive range [start, end].
// A single-day range yields one bucket per session on that date; a
// multi-day range yields one bucket per calendar day, with zero-accuracy
// buckets for days that have no logs so the timeline stays continuous.
func Buckets(logs []record.SessionLog, start, end string, filter record.Category) ([]Bucket, error) {
	matched, err := timerange.FilterLogs(logs, start, end)
	if err != nil {
		return nil, err
	}

	if start == end {
		return sessionBuckets(matched, filter), nil
	}
	return dayBuckets(matched, start, end, filter)
}

// sessionBuckets emits one bucket per log, ordered by timestamp ascending,
// labeled with the session's local time of day.
func sessionBuckets(logs []record.SessionLog, filter record.Category) []Bucket {
	sorted := make([]record.SessionLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	buckets := make([]Bucket, 0, len(sorted))
	for _, log := range sorted {
		total, correct := filteredTally([]record.SessionLog{log}, filter)
		buckets = append(buckets, Bucket{
			Label:    time.UnixMilli(log.Timestamp).In(time.Local).Format("15:04"),
			SortKey:  log.Timestamp,
			Accuracy: stats.Accuracy(total, correct),
		})
	}
	return buckets
}

// dayBuckets emits one bucket for every calendar date from start to end
// inclusive, summing the logs that fall on each date.
func dayBuckets(logs []record.SessionLog, start, end string, filter record.Category) ([]Bucket, error) {
	from, err := timerange.DayStart(start)
	if err != nil {
		return nil, err
	}
	to, err := timerange.DayStart(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("range end %s is before start %s", end, start)
	}

	byDay := make(map[string][]record.SessionLog)
	for _, log := range logs {
		day := log.Date
		if log.Timestamp != 0 {
			day = time.UnixMilli(log.Timestamp).In(time.Local).Format("2006-01-02")
		}
		byDay[day] = append(byDay[day], log)
	}

	var buckets []Bucket
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		total, correct := filteredTally(byDay[key], filter)
		buckets = append(buckets, Bucket{
			Label:    day.Format("01-02"),
			SortKey:  day.UnixMilli(),
			Accuracy: stats.Accuracy(total, correct),
		})
	}
	return buckets, nil
}

// filteredTally sums totals and corrects across the logs, restricted to one
// category unless the filter is FilterAll.
func filteredTally(logs []record.SessionLog, filter record.Category) (total, correct int) {
	for _, log := range logs {
		if filter == FilterAll {
			for _, c := range record.Categories {
				qr := log.Categories[c]
				total += qr.Total
				correct += qr.Correct
			}
			continue
		}
		qr := log.Categories[filter]
		total += qr.Total
		correct += qr.Correct
	}
	return total, correct
}
