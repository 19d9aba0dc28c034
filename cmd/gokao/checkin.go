package main

import (
	"fmt"
	"time"

	"github.com/lixm/gokao/internal/cli"
	"github.com/lixm/gokao/internal/record"
	"github.com/spf13/cobra"
)

func newCheckinCommand() *cobra.Command {
	tallyFlags := make(map[record.Category]*string, len(record.Categories))
	command := &cobra.Command{
		Use:   "checkin",
		Short: "Record a practice session for the selected target",
		RunE: func(cmd *cobra.Command, args []string) error {
			tallies := make(map[record.Category]record.QuestionRecord)
			for category, value := range tallyFlags {
				if *value == "" {
					continue
				}
				tally, err := cli.ParseTally(*value)
				if err != nil {
					return fmt.Errorf("--%s: %w", category, err)
				}
				tallies[category] = tally
			}

			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.Checkin(tallies, time.Now())
		},
	}
	for _, category := range record.Categories {
		value := command.Flags().String(string(category), "",
			fmt.Sprintf("%s tally as total:correct:minutes", category.DisplayName()))
		tallyFlags[category] = value
	}

	return command
}
