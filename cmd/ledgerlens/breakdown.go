package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/ledgerlens/internal/cli"
)

func breakdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Spending by category for a period",
		Long: `Break down spending by category for a reporting period.

Categories are shown largest-first with each one's share of the total.`,
		RunE: runBreakdown,
	}

	// Flags
	cmd.Flags().StringP("period", "p", "", "reporting period (e.g. 2024, 2024-01, 'last month')")
	cmd.Flags().IntP("depth", "d", 0, "account depth to group by (0 = hledger default)")
	cmd.Flags().String("category", "", "account query to filter by (default: expenses)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	// Bind to viper
	_ = viper.BindPFlag("breakdown.period", cmd.Flags().Lookup("period"))
	_ = viper.BindPFlag("breakdown.depth", cmd.Flags().Lookup("depth"))
	_ = viper.BindPFlag("breakdown.category", cmd.Flags().Lookup("category"))
	_ = viper.BindPFlag("breakdown.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	svc, err := initService()
	if err != nil {
		return err
	}

	result, err := svc.CategoryBreakdown(
		cmd.Context(),
		viper.GetString("breakdown.period"),
		viper.GetInt("breakdown.depth"),
		viper.GetString("breakdown.category"),
	)
	if err != nil {
		return err
	}

	// The decoder preserves upstream row order; the table reads better
	// largest-first.
	result.SortByAmount()

	return printResult(viper.GetString("breakdown.format"), result, func() string {
		return cli.RenderBreakdown(result)
	})
}
