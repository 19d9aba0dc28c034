// Package stats computes aggregate statistics over a target's session logs:
// check-in streak, question totals, accuracy, and the weakest category.
// All functions are pure over the snapshot they are handed; callers filter
// by range or category first.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/lixm/gokao/internal/record"
)

const dateLayout = "2006-01-02"

// Totals is the summed tally across every category of every log.
type Totals struct {
	Questions int
	Correct   int
	Duration  int // minutes
}

// ComputeTotals sums every question record across all categories of all logs.
func ComputeTotals(logs []record.SessionLog) Totals {
	var totals Totals
	for _, log := range logs {
		for _, c := range record.Categories {
			qr := log.Categories[c]
			totals.Questions += qr.Total
			totals.Correct += qr.Correct
			totals.Duration += qr.Duration
		}
	}
	return totals
}

// Accuracy is the single canonical accuracy rule: round-half-up percent,
// 0 when no questions were attempted. Every percentage the program shows
// goes through here.
func Accuracy(total, correct int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Streak counts consecutive active calendar days anchored to today or
// yesterday. A day is active when it has at least one log, regardless of
// how many sessions it holds. A most recent active day older than
// yesterday breaks the streak to zero.
func Streak(logs []record.SessionLog, today time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(logs))
	days := make([]string, 0, len(logs))
	for _, log := range logs {
		day := activeDay(log)
		if day == "" {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	todayDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	latest, err := time.ParseInLocation(dateLayout, days[0], time.Local)
	if err != nil {
		return 0
	}
	// Compare calendar dates, not elapsed time: a DST transition makes
	// yesterday-to-today 23 or 25 hours.
	yesterday := todayDay.AddDate(0, 0, -1).Format(dateLayout)
	if days[0] != todayDay.Format(dateLayout) && days[0] != yesterday {
		return 0
	}

	streak := 0
	expected := latest
	for _, day := range days {
		if day != expected.Format(dateLayout) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// activeDay returns the local calendar date a log belongs to, preferring
// the authoritative timestamp over the stored date string.
func activeDay(log record.SessionLog) string {
	if log.Timestamp != 0 {
		return time.UnixMilli(log.Timestamp).In(time.Local).Format(dateLayout)
	}
	return log.Date
}

// weakestMinTotal is the strict eligibility floor: a category with ten or
// fewer accumulated questions is too small a sample to call weak.
const weakestMinTotal = 10

// WeakestCategory accumulates per-category totals across all logs and
// returns the eligible category with the lowest accuracy. Ties go to the
// earlier entry of record.Categories. The second return is false when no
// category clears the sample-size floor.
func WeakestCategory(logs []record.SessionLog) (record.Category, bool) {
	type tally struct {
		total   int
		correct int
	}
	tallies := make(map[record.Category]*tally, len(record.Categories))
	for _, c := range record.Categories {
		tallies[c] = &tally{}
	}
	for _, log := range logs {
		for _, c := range record.Categories {
			qr := log.Categories[c]
			tallies[c].total += qr.Total
			tallies[c].correct += qr.Correct
		}
	}

	var weakest record.Category
	found := false
	lowest := 0
	for _, c := range record.Categories {
		acc := tallies[c]
		if acc.total <= weakestMinTotal {
			continue
		}
		accuracy := Accuracy(acc.total, acc.correct)
		if !found || accuracy < lowest {
			weakest = c
			lowest = accuracy
			found = true
		}
	}
	return weakest, found
}
