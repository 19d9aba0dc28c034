package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	var start, end string
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard for the selected target",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.Dashboard(start, end, time.Now())
		},
	}
	command.Flags().StringVar(&start, "start", "", "Start date in YYYY-MM-DD (scopes aggregates, not streak)")
	command.Flags().StringVar(&end, "end", "", "End date in YYYY-MM-DD (scopes aggregates, not streak)")

	return command
}
