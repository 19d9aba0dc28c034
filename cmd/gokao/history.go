package main

import (
	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Inspect and prune session history",
	}

	historyCommand.AddCommand(
		newHistoryListCommand(),
		newHistoryDeleteCommand(),
		newHistoryWipeCommand(),
	)

	return historyCommand
}

func newHistoryListCommand() *cobra.Command {
	var start, end string
	command := &cobra.Command{
		Use:   "list",
		Short: "List sessions, optionally scoped to a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.HistoryList(start, end)
		},
	}
	command.Flags().StringVar(&start, "start", "", "Start date in YYYY-MM-DD")
	command.Flags().StringVar(&end, "end", "", "End date in YYYY-MM-DD")

	return command
}

func newHistoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session id>",
		Short: "Delete a single session after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.HistoryDelete(args[0])
		},
	}
}

func newHistoryWipeCommand() *cobra.Command {
	var start, end string
	command := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all sessions and notes in a date range (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.Wipe(start, end)
		},
	}
	command.Flags().StringVar(&start, "start", "", "Start date in YYYY-MM-DD")
	command.Flags().StringVar(&end, "end", "", "End date in YYYY-MM-DD")

	return command
}
