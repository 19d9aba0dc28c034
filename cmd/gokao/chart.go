package main

import (
	"github.com/spf13/cobra"
)

func newChartCommand() *cobra.Command {
	var start, end, category string
	command := &cobra.Command{
		Use:   "chart",
		Short: "Chart the accuracy trend over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.Chart(start, end, category)
		},
	}
	command.Flags().StringVar(&start, "start", "", "Start date in YYYY-MM-DD")
	command.Flags().StringVar(&end, "end", "", "End date in YYYY-MM-DD")
	command.Flags().StringVar(&category, "category", "all", "Category filter, or \"all\"")
	_ = command.MarkFlagRequired("start")
	_ = command.MarkFlagRequired("end")

	return command
}
