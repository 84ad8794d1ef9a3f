package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/fecgen/internal/accounts"
)

func newChartCommand() *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart of accounts operations",
	}
	chartCmd.AddCommand(newChartExportCommand())
	return chartCmd
}

func newChartExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the built-in chart of accounts as CSV",
		Long:  "Write the built-in chart of accounts as CSV (account_num,account_lib). The file can be edited and passed back to generate --chart.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := accounts.Default()
			if len(args) == 0 {
				return accounts.WriteAccounts(cmd.OutOrStdout(), svc.All())
			}

			if err := svc.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d accounts to %s\n", len(svc.All()), args[0])
			return nil
		},
	}
}
