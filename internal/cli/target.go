package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/timerange"
)

// TargetAdd creates a new exam target and selects it.
func (c *CLI) TargetAdd(name, examDate string) error {
	if name == "" {
		return fmt.Errorf("target name must not be empty")
	}
	if _, err := timerange.ParseDate(examDate); err != nil {
		return fmt.Errorf("exam date must be YYYY-MM-DD: %w", err)
	}

	state, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load() > %w", err)
	}
	for _, t := range state.Targets {
		if t.Name == name {
			return fmt.Errorf("target %q already exists", name)
		}
	}

	target := record.ExamTarget{ID: uuid.NewString(), Name: name, ExamDate: examDate}
	state.Targets = append(state.Targets, target)
	state.SelectedTargetID = target.ID
	state.Logs[target.ID] = []record.SessionLog{}
	state.Reviews[target.ID] = []record.ReviewNote{}
	c.save(state)

	fmt.Fprintf(c.stdoutWriter, "Added and selected target %q (exam on %s).\n", name, examDate)
	return nil
}

// TargetList prints every target with its countdown, marking the selected
// one.
func (c *CLI) TargetList(now time.Time) error {
	state, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load() > %w", err)
	}
	if len(state.Targets) == 0 {
		fmt.Fprintln(c.stdoutWriter, "No targets yet. Add one with 'gokao target add'.")
		return nil
	}

	for _, target := range state.Targets {
		marker := " "
		if target.ID == state.SelectedTargetID {
			marker = "*"
		}
		fmt.Fprintf(c.stdoutWriter, "%s %s  %s  exam %s (%d days left)  %d sessions\n",
			marker, target.ID, target.Name, target.ExamDate, target.DaysLeft(now),
			len(state.Logs[target.ID]))
	}
	return nil
}

// TargetSelect switches the current target by id or name.
func (c *CLI) TargetSelect(idOrName string) error {
	state, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load() > %w", err)
	}

	for _, target := range state.Targets {
		if target.ID == idOrName || target.Name == idOrName {
			state.SelectedTargetID = target.ID
			c.save(state)
			fmt.Fprintf(c.stdoutWriter, "Selected target %q.\n", target.Name)
			return nil
		}
	}
	return fmt.Errorf("no target matching %q", idOrName)
}

// TargetRemove deletes a target together with its partition of logs and
// notes.
func (c *CLI) TargetRemove(idOrName string) error {
	state, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load() > %w", err)
	}

	for i, target := range state.Targets {
		if target.ID != idOrName && target.Name != idOrName {
			continue
		}

		fmt.Fprintf(c.stdoutWriter, "Remove target %q and all its sessions and notes? (y/N): ", target.Name)
		answer, err := c.readLine()
		if err != nil {
			return fmt.Errorf("readLine() > %w", err)
		}
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(c.stdoutWriter, "Cancelled.")
			return nil
		}

		state.Targets = append(state.Targets[:i:i], state.Targets[i+1:]...)
		delete(state.Logs, target.ID)
		delete(state.Reviews, target.ID)
		if state.SelectedTargetID == target.ID {
			state.SelectedTargetID = ""
			if len(state.Targets) > 0 {
				state.SelectedTargetID = state.Targets[0].ID
			}
		}
		c.save(state)
		fmt.Fprintf(c.stdoutWriter, "Removed target %q.\n", target.Name)
		return nil
	}
	return fmt.Errorf("no target matching %q", idOrName)
}
