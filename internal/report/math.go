// Package report decodes hledger report output into typed results.
package report

import (
	"github.com/shopspring/decimal"
)

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}

// percentOf returns amount's share of total as a percentage rounded to
// two decimals. A zero total yields 0 rather than a division error.
func percentOf(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round2(amount / total * 100)
}

// savingsRate returns the saved share of income as a percentage rounded
// to two decimals. Zero income yields 0.
func savingsRate(income, expenses float64) float64 {
	if income <= 0 {
		return 0
	}
	return round2((income - expenses) / income * 100)
}
