package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshsymonds/ledgerlens/internal/cli"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

func trendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Income vs expenses over time",
		Long: `Show income, expenses, and net cashflow per interval bucket
across a reporting period.`,
		RunE: runTrend,
	}

	// Flags
	cmd.Flags().StringP("period", "p", "", "reporting period (e.g. 2024, 'last 6 months')")
	cmd.Flags().StringP("interval", "i", "monthly", "bucket size (monthly, weekly, quarterly)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	// Bind to viper
	_ = viper.BindPFlag("trend.period", cmd.Flags().Lookup("period"))
	_ = viper.BindPFlag("trend.interval", cmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("trend.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runTrend(cmd *cobra.Command, _ []string) error {
	interval, err := model.ParseInterval(viper.GetString("trend.interval"))
	if err != nil {
		return err
	}

	svc, err := initService()
	if err != nil {
		return err
	}

	result, err := svc.PeriodTrend(cmd.Context(), viper.GetString("trend.period"), interval)
	if err != nil {
		return err
	}

	return printResult(viper.GetString("trend.format"), result, func() string {
		return cli.RenderTrend(result)
	})
}
