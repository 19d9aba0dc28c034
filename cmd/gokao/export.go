package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type FormatFlag string

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	switch v {
	case string(FormatCSV), string(FormatWord), string(FormatSQLite), string(FormatPDF):
		*f = FormatFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q, %q or %q",
			v, FormatCSV, FormatWord, FormatSQLite, FormatPDF)
	}
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

const (
	FormatCSV    FormatFlag = "csv"
	FormatWord   FormatFlag = "word"
	FormatSQLite FormatFlag = "sqlite"
	FormatPDF    FormatFlag = "pdf"
)

func newExportCommand() *cobra.Command {
	format := FormatCSV
	var start, end, out string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export sessions and notes to csv, word, sqlite, or pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			gokaoCLI, cfg, err := newCLI()
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(cfg.Exports.Directory,
					fmt.Sprintf("gokao-%s.%s", time.Now().Format("20060102-150405"), exportExtension(format)))
			}
			return gokaoCLI.Export(string(format), start, end, out, time.Now())
		},
	}
	command.Flags().Var(&format, "format", "Export format. Options: csv, word, sqlite, pdf")
	command.Flags().StringVar(&start, "start", "", "Start date in YYYY-MM-DD")
	command.Flags().StringVar(&end, "end", "", "End date in YYYY-MM-DD")
	command.Flags().StringVar(&out, "out", "", "Output file path (defaults to the configured exports directory)")
	_ = command.MarkFlagRequired("start")
	_ = command.MarkFlagRequired("end")

	return command
}

func exportExtension(format FormatFlag) string {
	switch format {
	case FormatWord:
		return "doc"
	case FormatSQLite:
		return "db"
	case FormatPDF:
		return "pdf"
	default:
		return "csv"
	}
}
