package hledger

import (
	"github.com/shopspring/decimal"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

// Quantity is hledger's nested numeric representation of an amount.
type Quantity struct {
	FloatingPoint   *float64 `json:"floatingPoint"`
	DecimalMantissa int64    `json:"decimalMantissa"`
	DecimalPlaces   int32    `json:"decimalPlaces"`
}

// Amount is one commodity-quantity pair in a report cell.
type Amount struct {
	Commodity string    `json:"acommodity"`
	Quantity  *Quantity `json:"aquantity"`
}

// ExtractAmount decodes a single numeric value from a report cell,
// rounded half away from zero to two decimal places.
//
// An empty cell means no activity and extracts to 0; this is the only
// place absence collapses to zero, so callers must invoke it at
// aggregation time, not when testing for presence. A non-empty entry
// without a quantity is upstream shape drift and fails loudly.
func ExtractAmount(report string, amounts []Amount) (float64, error) {
	if len(amounts) == 0 {
		return 0, nil
	}

	q := amounts[0].Quantity
	if q == nil || q.FloatingPoint == nil {
		return 0, common.NewDecodeError(report, "aquantity.floatingPoint", "amount entry has no quantity")
	}

	rounded, _ := decimal.NewFromFloat(*q.FloatingPoint).Round(2).Float64()
	return rounded, nil
}
