package cli

import (
	"fmt"
	"strings"

	"github.com/joshsymonds/ledgerlens/internal/model"
)

// RenderBreakdown renders a category breakdown as a styled table.
func RenderBreakdown(b *model.CategoryBreakdown) string {
	var sb strings.Builder

	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-30s %14s %9s", "Category", "Amount", "Share")))
	sb.WriteString("\n")
	for _, c := range b.Categories {
		sb.WriteString(fmt.Sprintf("%-30s %14.2f %8.2f%%\n", c.Name, c.Amount, c.Percentage))
	}
	sb.WriteString(BoldStyle.Render(fmt.Sprintf("%-30s %14.2f", "Total", b.Total)))

	title := "Spending by Category"
	if b.Period != "" {
		title = fmt.Sprintf("Spending by Category — %s", b.Period)
	}
	return RenderBox(title, sb.String())
}

// RenderTrend renders an income/expense trend as a styled table.
func RenderTrend(t *model.Trend) string {
	var sb strings.Builder

	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-10s %12s %12s %12s", "Period", "Income", "Expenses", "Net")))
	sb.WriteString("\n")
	for _, p := range t.Points {
		net := PositiveStyle.Render(fmt.Sprintf("%12.2f", p.Net))
		if p.Net < 0 {
			net = NegativeStyle.Render(fmt.Sprintf("%12.2f", p.Net))
		}
		sb.WriteString(fmt.Sprintf("%-10s %12.2f %12.2f %s\n", p.Period, p.Income, p.Expenses, net))
	}

	return RenderBox(fmt.Sprintf("Income vs Expenses (%s)", t.Interval), strings.TrimRight(sb.String(), "\n"))
}

// RenderSummary renders a financial summary box.
func RenderSummary(s *model.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Net worth:      %14.2f\n", s.NetWorth))
	sb.WriteString(fmt.Sprintf("Total income:   %14.2f\n", s.TotalIncome))
	sb.WriteString(fmt.Sprintf("Total expenses: %14.2f\n", s.TotalExpenses))
	sb.WriteString(fmt.Sprintf("Savings rate:   %13.2f%%\n", s.SavingsRate))
	sb.WriteString(fmt.Sprintf("Net cashflow:   %14.2f\n", s.NetCashflow))

	if len(s.TopExpenses) > 0 {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render("Top expenses"))
		sb.WriteString("\n")
		for i, e := range s.TopExpenses {
			sb.WriteString(fmt.Sprintf("%d. %-27s %14.2f\n", i+1, e.Name, e.Amount))
		}
	}

	title := "Financial Summary"
	if s.Period != "" {
		title = fmt.Sprintf("Financial Summary — %s", s.Period)
	}
	return RenderBox(title, strings.TrimRight(sb.String(), "\n"))
}
