// Package model defines the decoded report types the application produces.
package model

import (
	"fmt"
	"sort"
)

// Interval selects the bucket size for trend reports.
type Interval string

// Supported trend intervals.
const (
	IntervalMonthly   Interval = "monthly"
	IntervalWeekly    Interval = "weekly"
	IntervalQuarterly Interval = "quarterly"
)

// ParseInterval validates and normalizes an interval name.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case IntervalMonthly, IntervalWeekly, IntervalQuarterly:
		return Interval(s), nil
	default:
		return "", fmt.Errorf("invalid interval %q: want monthly, weekly, or quarterly", s)
	}
}

// CategoryAmount is one category's share of a spending breakdown.
type CategoryAmount struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdown is spending by category for one period.
// Categories arrive in upstream row order; display layers that want
// largest-first call SortByAmount explicitly.
type CategoryBreakdown struct {
	Period     string           `json:"period"`
	Total      float64          `json:"total"`
	Categories []CategoryAmount `json:"categories"`
}

// SortByAmount orders categories by amount descending, breaking ties by
// name ascending so equal amounts render deterministically.
func (b *CategoryBreakdown) SortByAmount() {
	sort.SliceStable(b.Categories, func(i, j int) bool {
		if b.Categories[i].Amount != b.Categories[j].Amount {
			return b.Categories[i].Amount > b.Categories[j].Amount
		}
		return b.Categories[i].Name < b.Categories[j].Name
	})
}

// TrendPoint is income versus expenses for one period bucket.
type TrendPoint struct {
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

// Trend is an ordered income/expense series. Point order is the upstream
// column order, which is chronological.
type Trend struct {
	Interval Interval     `json:"interval"`
	Points   []TrendPoint `json:"points"`
}

// ExpenseRank is one entry in the top-expenses list.
type ExpenseRank struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary is the combined point-in-time financial picture.
type Summary struct {
	Period        string        `json:"period,omitempty"`
	NetWorth      float64       `json:"netWorth"`
	TotalIncome   float64       `json:"totalIncome"`
	TotalExpenses float64       `json:"totalExpenses"`
	SavingsRate   float64       `json:"savingsRate"`
	NetCashflow   float64       `json:"netCashflow"`
	TopExpenses   []ExpenseRank `json:"topExpenses"`
}
