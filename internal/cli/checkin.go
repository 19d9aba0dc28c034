package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
)

// ParseTally parses a "total:correct:minutes" flag value into a
// QuestionRecord. An empty value is a zero record.
func ParseTally(value string) (record.QuestionRecord, error) {
	if value == "" {
		return record.QuestionRecord{}, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return record.QuestionRecord{}, fmt.Errorf("expected total:correct:minutes, got %q", value)
	}
	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return record.QuestionRecord{}, fmt.Errorf("strconv.Atoi(%s) > %w", part, err)
		}
		numbers[i] = n
	}
	return record.QuestionRecord{Total: numbers[0], Correct: numbers[1], Duration: numbers[2]}, nil
}

// validateTallies enforces the input-time invariants: non-negative fields
// and correct <= total. The engine itself never re-validates stored data.
func validateTallies(results record.CategoryResults) error {
	validate := validator.New()
	for _, c := range record.Categories {
		if err := validate.Struct(results[c]); err != nil {
			return fmt.Errorf("invalid tally for %s: %w", c.DisplayName(), err)
		}
	}
	return nil
}

// Checkin records one practice session for the selected target.
func (c *CLI) Checkin(tallies map[record.Category]record.QuestionRecord, now time.Time) error {
	state, _, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	results := record.NewCategoryResults()
	for category, tally := range tallies {
		if _, known := results[category]; !known {
			return fmt.Errorf("unknown category %q", category)
		}
		results[category] = tally
	}
	if err := validateTallies(results); err != nil {
		return err
	}

	log := record.SessionLog{
		ID:         uuid.NewString(),
		Date:       now.Format("2006-01-02"),
		Timestamp:  now.UnixMilli(),
		Categories: results,
	}
	state.Logs[state.SelectedTargetID] = append(state.Logs[state.SelectedTargetID], log)
	c.save(state)

	totals := stats.ComputeTotals([]record.SessionLog{log})
	fmt.Fprintf(c.stdoutWriter, "Checked in: %d questions, %d correct (%d%%), %d minutes.\n",
		totals.Questions, totals.Correct, stats.Accuracy(totals.Questions, totals.Correct), totals.Duration)
	fmt.Fprintf(c.stdoutWriter, "Streak: %d days.\n", stats.Streak(state.Logs[state.SelectedTargetID], now))
	return nil
}
