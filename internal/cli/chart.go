package cli

import (
	"fmt"
	"strings"

	"github.com/lixm/gokao/internal/trend"
)

const chartBarWidth = 50

// Chart prints the accuracy trend for the inclusive range as horizontal
// bars, one per bucket. A single-day range charts each session of that
// day; a multi-day range charts each calendar day, empty days included.
func (c *CLI) Chart(start, end, categoryFilter string) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	filter, err := trend.ParseFilter(categoryFilter)
	if err != nil {
		return err
	}

	buckets, err := trend.Buckets(state.Logs[target.ID], start, end, filter)
	if err != nil {
		return err
	}
	if len(buckets) == 0 {
		fmt.Fprintln(c.stdoutWriter, "No sessions in range.")
		return nil
	}

	for _, bucket := range buckets {
		width := bucket.Accuracy * chartBarWidth / 100
		if width > chartBarWidth {
			width = chartBarWidth
		}
		fmt.Fprintf(c.stdoutWriter, "%s  %s %d%%\n",
			bucket.Label, strings.Repeat("█", width), bucket.Accuracy)
	}
	return nil
}
