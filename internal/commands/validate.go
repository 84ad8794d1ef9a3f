package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fecgen/internal/importer"
	"github.com/cleared-dev/fecgen/internal/journal"
	"github.com/cleared-dev/fecgen/internal/runlog"
)

func newValidateCommand() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "validate <file-or-dir>...",
		Short: "Check that every entry of FEC files balances",
		Long: `Read FEC files (.txt or .csv pipe-delimited text, .xlsx spreadsheets) and
check that each entry's debits equal its credits within 0.01. Directories are
scanned for .txt and .xlsx files. With --repair, imbalanced entries are corrected once
and the file is rewritten in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args, repair)
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "repair imbalanced entries and rewrite the file")

	return cmd
}

func runValidate(out io.Writer, args []string, repair bool) error {
	reg := importer.DefaultRegistry()
	paths, err := reg.Expand(args, runlog.FileName)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no FEC files found")
	}

	bad := 0
	for _, path := range paths {
		ok, err := validateFile(out, reg, path, repair)
		if err != nil {
			fmt.Fprintf(out, "ERROR   %s: %v\n", path, err)
			bad++
			continue
		}
		if !ok {
			bad++
		}
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d files failed validation", bad, len(paths))
	}
	return nil
}

func validateFile(out io.Writer, reg *importer.Registry, path string, repair bool) (bool, error) {
	lines, err := reg.ReadFile(path)
	if err != nil {
		return false, err
	}

	report := journal.Validate(lines)
	if report.Valid() {
		fmt.Fprintf(out, "OK      %s (%d entries)\n", path, report.Entries)
		return true, nil
	}

	if repair {
		journal.SortLines(lines)
		result := journal.Repair(lines)
		if err := reg.WriteFile(path, lines); err != nil {
			return false, err
		}
		report = journal.Validate(lines)
		fmt.Fprintf(out, "REPAIRED %s (%d corrections)\n", path, len(result.Corrections))
		if report.Valid() {
			return true, nil
		}
	}

	fmt.Fprintf(out, "INVALID %s (%d of %d entries imbalanced)\n", path, len(report.Errors), report.Entries)
	for _, msg := range report.Messages() {
		fmt.Fprintf(out, "        %s\n", msg)
	}
	return false, nil
}
