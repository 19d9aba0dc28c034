// Package timerange provides the one shared definition of an inclusive
// date range over session logs and review notes. Aggregation, charting,
// export, and deletion sizing all filter through the same boundary
// normalization; diverging copies of this logic caused off-by-one-day bugs
// in the past, so nothing outside this package parses range boundaries.
package timerange

import (
	"fmt"
	"time"

	"github.com/lixm/gokao/internal/record"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as local midnight, never UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("time.ParseInLocation(%s) > %w", date, err)
	}
	return t, nil
}

// DayStart returns local midnight (00:00:00.000) of the given calendar date.
func DayStart(date string) (time.Time, error) {
	return ParseDate(date)
}

// DayEnd returns local end-of-day (23:59:59.999) of the given calendar date.
// The next midnight is found with calendar arithmetic, not a 24h offset, so
// the boundary stays at 23:59:59.999 on 23- and 25-hour DST days.
func DayEnd(date string) (time.Time, error) {
	start, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, 1).Add(-time.Millisecond), nil
}

// logInstant returns a log's authoritative instant in epoch milliseconds,
// falling back to its calendar date (as local midnight) when the timestamp
// is absent.
func logInstant(log record.SessionLog) int64 {
	if log.Timestamp != 0 {
		return log.Timestamp
	}
	day, err := ParseDate(log.Date)
	if err != nil {
		return 0
	}
	return day.UnixMilli()
}

// noteInstant mirrors logInstant for review notes.
func noteInstant(note record.ReviewNote) int64 {
	if note.Timestamp != 0 {
		return note.Timestamp
	}
	day, err := ParseDate(note.Date)
	if err != nil {
		return 0
	}
	return day.UnixMilli()
}

// FilterLogs returns the logs whose instant falls within the inclusive
// range [DayStart(start), DayEnd(end)]. Input order is preserved.
func FilterLogs(logs []record.SessionLog, start, end string) ([]record.SessionLog, error) {
	from, err := DayStart(start)
	if err != nil {
		return nil, err
	}
	to, err := DayEnd(end)
	if err != nil {
		return nil, err
	}

	var matched []record.SessionLog
	for _, log := range logs {
		instant := logInstant(log)
		if instant >= from.UnixMilli() && instant <= to.UnixMilli() {
			matched = append(matched, log)
		}
	}
	return matched, nil
}

// FilterNotes returns the notes whose instant falls within the inclusive
// range [DayStart(start), DayEnd(end)]. Input order is preserved.
func FilterNotes(notes []record.ReviewNote, start, end string) ([]record.ReviewNote, error) {
	from, err := DayStart(start)
	if err != nil {
		return nil, err
	}
	to, err := DayEnd(end)
	if err != nil {
		return nil, err
	}

	var matched []record.ReviewNote
	for _, note := range notes {
		instant := noteInstant(note)
		if instant >= from.UnixMilli() && instant <= to.UnixMilli() {
			matched = append(matched, note)
		}
	}
	return matched, nil
}

// rangeSubset is the canonical interchange form a pending deletion is sized
// against: the matched records encoded exactly as the store encodes them.
type rangeSubset struct {
	Logs    []record.SessionLog `yaml:"logs"`
	Reviews []record.ReviewNote `yaml:"reviews"`
}

// EstimateSize serializes the logs and notes matched by [start, end] and
// returns the byte length. Read-only; used to give the user a stable number
// before an irreversible range deletion.
func EstimateSize(logs []record.SessionLog, notes []record.ReviewNote, start, end string) (int64, error) {
	matchedLogs, err := FilterLogs(logs, start, end)
	if err != nil {
		return 0, err
	}
	matchedNotes, err := FilterNotes(notes, start, end)
	if err != nil {
		return 0, err
	}

	encoded, err := yaml.Marshal(rangeSubset{Logs: matchedLogs, Reviews: matchedNotes})
	if err != nil {
		return 0, fmt.Errorf("yaml.Marshal(range subset) > %w", err)
	}
	return int64(len(encoded)), nil
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with 1024-based units and the given
// number of decimals.
func FormatBytes(n int64, decimals int) string {
	if n <= 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	value := float64(n)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d Bytes", n)
	}
	return fmt.Sprintf("%.*f %s", decimals, value, byteUnits[unit])
}
