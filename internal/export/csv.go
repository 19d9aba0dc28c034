// Package export renders a target's filtered history for consumption
// outside the tracker: CSV, Word-compatible HTML, a SQLite archive, and a
// PDF report. Renderers take pre-filtered record sets; the range query
// layer decides what is in scope.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
)

// CSV column contract: Date, Time, Total, Accuracy, then one
// correct/total/duration cell per category in record.Categories order,
// then a trailing notes section. Export consumers pin this byte-for-byte.

func csvHeader() string {
	columns := []string{"Date", "Time", "Total", "Accuracy"}
	for _, c := range record.Categories {
		columns = append(columns, c.DisplayName())
	}
	return strings.Join(columns, ",")
}

// CSV renders the logs and notes as a value-delimited document.
func CSV(logs []record.SessionLog, notes []record.ReviewNote) string {
	var b strings.Builder
	b.WriteString(csvHeader())
	b.WriteString("\n")

	for _, log := range logs {
		totals := stats.ComputeTotals([]record.SessionLog{log})
		cells := []string{
			log.Date,
			timeOfDay(log.Timestamp),
			fmt.Sprintf("%d", totals.Questions),
			fmt.Sprintf("%d%%", stats.Accuracy(totals.Questions, totals.Correct)),
		}
		for _, c := range record.Categories {
			qr := log.Categories[c]
			cells = append(cells, fmt.Sprintf("%d/%d/%d", qr.Correct, qr.Total, qr.Duration))
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	b.WriteString("\nNotes\nDate,Time,Content\n")
	for _, note := range notes {
		cells := []string{
			dayOf(note.Timestamp),
			timeOfDay(note.Timestamp),
			escapeCSV(note.Content),
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func dayOf(timestamp int64) string {
	return time.UnixMilli(timestamp).In(time.Local).Format("2006-01-02")
}

func timeOfDay(timestamp int64) string {
	return time.UnixMilli(timestamp).In(time.Local).Format("15:04")
}

// escapeCSV quotes a cell when it contains a delimiter, quote, or newline.
func escapeCSV(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
