package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newNoteCommand() *cobra.Command {
	noteCommand := &cobra.Command{
		Use:   "note",
		Short: "Review notes for the selected target",
	}

	noteCommand.AddCommand(newNoteAddCommand(), newNoteListCommand())

	return noteCommand
}

func newNoteAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <content>",
		Short: "Add a review note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.NoteAdd(strings.Join(args, " "), time.Now())
		},
	}
}

func newNoteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List review notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.NoteList()
		},
	}
}
