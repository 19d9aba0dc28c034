package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/lixm/gokao/internal/export"
	"github.com/lixm/gokao/internal/timerange"
)

// Export writes the selected target's records in [start, end] to the given
// path in one of the supported formats: csv, word, sqlite, or pdf.
func (c *CLI) Export(format, start, end, outPath string, now time.Time) error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	logs, err := timerange.FilterLogs(state.Logs[target.ID], start, end)
	if err != nil {
		return err
	}
	notes, err := timerange.FilterNotes(state.Reviews[target.ID], start, end)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		if err := os.WriteFile(outPath, []byte(export.CSV(logs, notes)), 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", outPath, err)
		}
	case "word":
		if err := os.WriteFile(outPath, []byte(export.WordHTML(logs, notes, target.Name)), 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", outPath, err)
		}
	case "sqlite":
		if err := export.SQLite(outPath, logs, notes); err != nil {
			return err
		}
	case "pdf":
		written, err := export.PDF(outPath, logs, notes, target, now)
		if err != nil {
			return err
		}
		outPath = written
	default:
		return fmt.Errorf("unknown export format %q (expected csv, word, sqlite, or pdf)", format)
	}

	fmt.Fprintf(c.stdoutWriter, "Exported %d sessions and %d notes to %s.\n", len(logs), len(notes), outPath)
	return nil
}
