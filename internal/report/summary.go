package report

import (
	"math"
	"strings"

	"github.com/joshsymonds/ledgerlens/internal/hledger"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

// topExpenseCount bounds the ranked expense list in a summary.
const topExpenseCount = 5

// DecodeSummary combines a position report (net worth), an activity
// report (income statement), and a magnitude-sorted expense ranking into
// one financial summary.
//
// Every aggregate comes from upstream's own totals: the position report's
// grand total and each activity subreport's totals row. Row sums would
// drift from these through rounding and unposted entries.
func DecodeSummary(period, prefix string, position, activity *hledger.CompoundReport, ranking *hledger.BalanceReport) (*model.Summary, error) {
	netWorth, err := hledger.ExtractAmount("balancesheet", position.Totals.Total)
	if err != nil {
		return nil, err
	}

	revenues, err := activity.Revenues()
	if err != nil {
		return nil, err
	}
	expenses, err := activity.Expenses()
	if err != nil {
		return nil, err
	}

	income, err := hledger.ExtractAmount("incomestatement", revenues.Report.Totals.Total)
	if err != nil {
		return nil, err
	}
	income = math.Abs(income)

	spent, err := hledger.ExtractAmount("incomestatement", expenses.Report.Totals.Total)
	if err != nil {
		return nil, err
	}
	spent = math.Abs(spent)

	top := make([]model.ExpenseRank, 0, topExpenseCount)
	for _, row := range ranking.Rows {
		if len(top) == topExpenseCount {
			break
		}
		amount, err := hledger.ExtractAmount("balance", row.Amounts)
		if err != nil {
			return nil, err
		}
		top = append(top, model.ExpenseRank{
			Name:   strings.TrimPrefix(row.FullName, prefix),
			Amount: math.Abs(amount),
		})
	}

	return &model.Summary{
		Period:        period,
		NetWorth:      netWorth,
		TotalIncome:   income,
		TotalExpenses: spent,
		SavingsRate:   savingsRate(income, spent),
		NetCashflow:   round2(income - spent),
		TopExpenses:   top,
	}, nil
}
