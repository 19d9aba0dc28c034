package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lixm/gokao/internal/record"
)

// NoteAdd appends a free-text review note to the selected target.
func (c *CLI) NoteAdd(content string, now time.Time) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content must not be empty")
	}

	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	note := record.ReviewNote{
		ID:        uuid.NewString(),
		Date:      now.Format("2006-01-02 15:04"),
		Content:   content,
		TargetID:  target.ID,
		Timestamp: now.UnixMilli(),
	}
	state.Reviews[target.ID] = append(state.Reviews[target.ID], note)
	c.save(state)

	fmt.Fprintln(c.stdoutWriter, "Note saved.")
	return nil
}

// NoteList prints the selected target's notes, newest first.
func (c *CLI) NoteList() error {
	state, target, ok, err := c.selectedTarget()
	if err != nil || !ok {
		return err
	}

	notes := state.Reviews[target.ID]
	if len(notes) == 0 {
		fmt.Fprintln(c.stdoutWriter, "No notes yet.")
		return nil
	}
	for i := len(notes) - 1; i >= 0; i-- {
		note := notes[i]
		c.bold.Fprintf(c.stdoutWriter, "%s\n", note.Date)
		fmt.Fprintf(c.stdoutWriter, "%s\n\n", note.Content)
	}
	return nil
}
