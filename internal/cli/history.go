package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixm/gokao/internal/purge"
	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
	"github.com/lixm/gokao/internal/timerange"
)

// HistoryList prints the selected target's sessions, optionally limited to
// an inclusive date range.
func (c *CLI) HistoryList(start, end string) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	logs := state.Logs[target.ID]
	if start != "" && end != "" {
		logs, err = timerange.FilterLogs(logs, start, end)
		if err != nil {
			return err
		}
	}
	if len(logs) == 0 {
		fmt.Fprintln(c.stdoutWriter, "No sessions in range.")
		return nil
	}

	for _, log := range logs {
		totals := stats.ComputeTotals([]record.SessionLog{log})
		fmt.Fprintf(c.stdoutWriter, "%s  %s %s  %3d questions  %3d%%  %s\n",
			log.ID, log.Date,
			time.UnixMilli(log.Timestamp).In(time.Local).Format("15:04"),
			totals.Questions, stats.Accuracy(totals.Questions, totals.Correct),
			fmt.Sprintf("%d min", totals.Duration))
	}
	return nil
}

// HistoryDelete removes one session by id after an explicit confirmation.
func (c *CLI) HistoryDelete(id string) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	var confirm purge.SingleConfirm
	confirm.Request(id)

	fmt.Fprintf(c.stdoutWriter, "Delete session %s? This cannot be undone. (y/N): ", id)
	answer, err := c.readLine()
	if err != nil {
		return fmt.Errorf("readLine() > %w", err)
	}
	if answer != "y" && answer != "Y" {
		confirm.Cancel()
		fmt.Fprintln(c.stdoutWriter, "Cancelled.")
		return nil
	}

	pendingID, pending := confirm.Confirm()
	if !pending {
		return nil
	}
	kept, deleted := purge.DeleteLog(state.Logs[target.ID], pendingID)
	if !deleted {
		fmt.Fprintf(c.stdoutWriter, "No session with id %s.\n", pendingID)
		return nil
	}
	state.Logs[target.ID] = kept
	c.save(state)
	fmt.Fprintln(c.stdoutWriter, "Session deleted.")
	return nil
}

// Wipe bulk-deletes every log and note in [start, end] for the selected
// target, walking the staged confirmation flow: pick the range, warn,
// show the size of what is about to go, then require a typed confirmation.
// Without a selected target the command is a no-op.
func (c *CLI) Wipe(start, end string) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	var flow purge.Flow
	if err := flow.Begin(); err != nil {
		return err
	}
	if err := flow.PickRange(start, end); err != nil {
		if errors.Is(err, purge.ErrMissingRange) {
			flow.Abort()
			return fmt.Errorf("both --start and --end are required")
		}
		return err
	}

	fmt.Fprintf(c.stdoutWriter, "This permanently deletes every session and note between %s and %s. Continue? (y/N): ", start, end)
	answer, err := c.readLine()
	if err != nil {
		return fmt.Errorf("readLine() > %w", err)
	}
	if answer != "y" && answer != "Y" {
		flow.Abort()
		fmt.Fprintln(c.stdoutWriter, "Cancelled. Nothing was deleted.")
		return nil
	}

	logs := state.Logs[target.ID]
	notes := state.Reviews[target.ID]
	estimate, err := flow.Arm(logs, notes)
	if err != nil {
		flow.Abort()
		return err
	}

	fmt.Fprintf(c.stdoutWriter, "About %s of records will be deleted. Type DELETE to confirm: ",
		timerange.FormatBytes(estimate, c.sizeDecimals))
	answer, err = c.readLine()
	if err != nil {
		return fmt.Errorf("readLine() > %w", err)
	}
	if answer != "DELETE" {
		flow.Abort()
		fmt.Fprintln(c.stdoutWriter, "Cancelled. Nothing was deleted.")
		return nil
	}

	keptLogs, keptNotes, err := flow.Execute(logs, notes)
	if err != nil {
		return err
	}
	state.Logs[target.ID] = keptLogs
	state.Reviews[target.ID] = keptNotes
	c.save(state)

	fmt.Fprintf(c.stdoutWriter, "Deleted %d sessions and %d notes.\n",
		len(logs)-len(keptLogs), len(notes)-len(keptNotes))
	return nil
}
