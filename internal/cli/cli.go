// Package cli implements the gokao commands on top of the store and the
// reporting engine. Prompts read from an injected reader and print to an
// injected writer so tests can drive the interactive flows.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/store"
)

// CLI holds the collaborators every command needs.
type CLI struct {
	store        store.Store
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	sizeDecimals int
	bold         *color.Color
}

// New creates a CLI over the given store and streams.
func New(st store.Store, stdin io.Reader, stdout io.Writer, sizeDecimals int) *CLI {
	return &CLI{
		store:        st,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		sizeDecimals: sizeDecimals,
		bold:         color.New(color.Bold),
	}
}

// save persists the state. Save failures are reported and swallowed: the
// in-memory state stays authoritative for the rest of the session and the
// next mutation attempts another save.
func (c *CLI) save(state record.State) {
	if err := c.store.Save(state); err != nil {
		slog.Error("failed to save state", "error", err)
		fmt.Fprintln(c.stdoutWriter, "Warning: changes could not be saved and will be lost when this session ends.")
	}
}

// selectedTarget loads the state and resolves the selected target, telling
// the user what to do when none is selected.
func (c *CLI) selectedTarget() (record.State, record.ExamTarget, bool, error) {
	state, err := c.store.Load()
	if err != nil {
		return record.State{}, record.ExamTarget{}, false, fmt.Errorf("store.Load() > %w", err)
	}
	target, ok := state.SelectedTarget()
	if !ok {
		fmt.Fprintln(c.stdoutWriter, "No exam target selected. Add one with 'gokao target add' first.")
		return state, record.ExamTarget{}, false, nil
	}
	return state, target, true, nil
}

// readLine reads one trimmed line from the prompt stream.
func (c *CLI) readLine() (string, error) {
	line, err := c.stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
