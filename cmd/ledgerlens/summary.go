package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/ledgerlens/internal/cli"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Net worth, cashflow, and top expenses",
		Long: `Summarize your financial position: net worth, total income and
expenses, savings rate, net cashflow, and the top expense categories.

Without a period, the whole journal is summarized.`,
		RunE: runSummary,
	}

	// Flags
	cmd.Flags().StringP("period", "p", "", "reporting period (optional)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	// Bind to viper
	_ = viper.BindPFlag("summary.period", cmd.Flags().Lookup("period"))
	_ = viper.BindPFlag("summary.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}

	result, err := svc.FinancialSummary(cmd.Context(), viper.GetString("summary.period"))
	if err != nil {
		return err
	}

	return printResult(viper.GetString("summary.format"), result, func() string {
		return cli.RenderSummary(result)
	})
}
