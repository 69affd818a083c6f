package report

import (
	"math"

	"github.com/joshsymonds/ledgerlens/internal/common"
	"github.com/joshsymonds/ledgerlens/internal/hledger"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

// DecodeTrend turns a compound income-statement report into an ordered
// income/expense series, one point per period column. Column order is
// preserved exactly; the decoder never re-sorts.
func DecodeTrend(interval model.Interval, rep *hledger.CompoundReport) (*model.Trend, error) {
	revenues, err := rep.Revenues()
	if err != nil {
		return nil, err
	}
	expenses, err := rep.Expenses()
	if err != nil {
		return nil, err
	}

	points := make([]model.TrendPoint, 0, len(rep.Dates))
	for i, span := range rep.Dates {
		key, err := span.Start.MonthKey()
		if err != nil {
			return nil, err
		}

		income, err := sumColumn("incomestatement", revenues.Report.Rows, i, true)
		if err != nil {
			return nil, err
		}
		spent, err := sumColumn("incomestatement", expenses.Report.Rows, i, false)
		if err != nil {
			return nil, err
		}

		points = append(points, model.TrendPoint{
			Period:   key,
			Income:   income,
			Expenses: spent,
			Net:      round2(income - spent),
		})
	}

	return &model.Trend{
		Interval: interval,
		Points:   points,
	}, nil
}

// sumColumn adds up one period column across rows. A row with fewer cells
// than the report has columns simply had no activity that period, so the
// missing cell extracts to 0.
//
// Revenue rows arrive already sign-flipped positive upstream; the
// absolute value guards against a sign-convention regression without
// double-negating correct input, and revenueSigns flags any cell that
// contradicts the asserted convention.
func sumColumn(report string, rows []hledger.PeriodicRow, col int, revenueSigns bool) (float64, error) {
	var sum float64
	for _, row := range rows {
		var cell []hledger.Amount
		if col < len(row.Amounts) {
			cell = row.Amounts[col]
		}

		value, err := hledger.ExtractAmount(report, cell)
		if err != nil {
			return 0, err
		}
		if revenueSigns && value < 0 {
			common.LogWarn("revenue cell arrived negative, possible upstream sign-convention change", common.Fields{
				"account": string(row.Name),
				"column":  col,
				"value":   value,
			})
		}

		sum += value
	}

	return math.Abs(round2(sum)), nil
}
