package report

import (
	"math"
	"strings"

	"github.com/joshsymonds/ledgerlens/internal/hledger"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

// DecodeBreakdown turns a flat balance report into a category breakdown.
//
// The total comes from the report's own totals cell, not from summing
// rows; the two can legitimately differ through rounding. Category order
// is preserved exactly as upstream returned it.
func DecodeBreakdown(period, prefix string, rep *hledger.BalanceReport) (*model.CategoryBreakdown, error) {
	total, err := hledger.ExtractAmount("balance", rep.Totals)
	if err != nil {
		return nil, err
	}
	total = math.Abs(total)

	categories := make([]model.CategoryAmount, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		amount, err := hledger.ExtractAmount("balance", row.Amounts)
		if err != nil {
			return nil, err
		}
		amount = math.Abs(amount)

		categories = append(categories, model.CategoryAmount{
			Name:       strings.TrimPrefix(row.FullName, prefix),
			Amount:     amount,
			Percentage: percentOf(amount, total),
		})
	}

	return &model.CategoryBreakdown{
		Period:     period,
		Total:      total,
		Categories: categories,
	}, nil
}
