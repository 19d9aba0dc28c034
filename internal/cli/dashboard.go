package cli

import (
	"fmt"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
	"github.com/lixm/gokao/internal/timerange"
)

// Dashboard prints the selected target's countdown, streak, totals, and
// weakest category. With a start and end date the numbers cover only that
// range; the streak always reflects the full history since it is anchored
// to today.
func (c *CLI) Dashboard(start, end string, now time.Time) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	allLogs := state.Logs[target.ID]
	logs := allLogs
	if start != "" && end != "" {
		logs, err = timerange.FilterLogs(allLogs, start, end)
		if err != nil {
			return err
		}
	}

	c.bold.Fprintf(c.stdoutWriter, "%s\n", target.Name)
	daysLeft := target.DaysLeft(now)
	switch {
	case daysLeft > 0:
		fmt.Fprintf(c.stdoutWriter, "Exam on %s — %d days left.\n", target.ExamDate, daysLeft)
	case daysLeft == 0:
		fmt.Fprintf(c.stdoutWriter, "Exam day is today. Good luck!\n")
	default:
		fmt.Fprintf(c.stdoutWriter, "Exam on %s has passed.\n", target.ExamDate)
	}

	totals := stats.ComputeTotals(logs)
	fmt.Fprintf(c.stdoutWriter, "Sessions: %d\n", len(logs))
	fmt.Fprintf(c.stdoutWriter, "Questions: %d (%d correct, %d%%)\n",
		totals.Questions, totals.Correct, stats.Accuracy(totals.Questions, totals.Correct))
	fmt.Fprintf(c.stdoutWriter, "Time spent: %d minutes\n", totals.Duration)
	fmt.Fprintf(c.stdoutWriter, "Streak: %d days\n", stats.Streak(allLogs, now))

	if weakest, found := stats.WeakestCategory(logs); found {
		fmt.Fprintf(c.stdoutWriter, "Weakest category: %s (%d%%)\n",
			weakest.DisplayName(), categoryAccuracy(logs, weakest))
	} else {
		fmt.Fprintln(c.stdoutWriter, "Weakest category: not enough attempts yet.")
	}
	return nil
}

// categoryAccuracy reports one category's accumulated accuracy across logs.
func categoryAccuracy(logs []record.SessionLog, category record.Category) int {
	var total, correct int
	for _, log := range logs {
		qr := log.Categories[category]
		total += qr.Total
		correct += qr.Correct
	}
	return stats.Accuracy(total, correct)
}
