package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newTargetCommand() *cobra.Command {
	targetCommand := &cobra.Command{
		Use:   "target",
		Short: "Manage exam targets",
	}

	targetCommand.AddCommand(
		newTargetAddCommand(),
		newTargetListCommand(),
		newTargetSelectCommand(),
		newTargetRemoveCommand(),
	)

	return targetCommand
}

func newTargetAddCommand() *cobra.Command {
	var examDate string
	command := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new exam target and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.TargetAdd(args[0], examDate)
		},
	}
	command.Flags().StringVar(&examDate, "date", "", "Exam date in YYYY-MM-DD")
	_ = command.MarkFlagRequired("date")

	return command
}

func newTargetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exam targets with days left",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.TargetList(time.Now())
		},
	}
}

func newTargetSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <id or name>",
		Short: "Switch the active exam target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.TargetSelect(args[0])
		},
	}
}

func newTargetRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id or name>",
		Short: "Remove an exam target and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, _, err := newCLI()
			if err != nil {
				return err
			}
			return gokaoCLI.TargetRemove(args[0])
		},
	}
}
