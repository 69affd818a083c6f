package hledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

// hledger emits two structurally different report forms: the flat balance
// report (a [rows, totals] tuple) and the compound multi-period report (a
// keyed object with positional subreports). They are modeled as distinct
// types so each decoder accepts only its expected shape and fails fast on
// the other.

// AccountName tolerates the two encodings hledger has used for row
// names: a plain string and a list of name components.
type AccountName string

// UnmarshalJSON decodes either name encoding; null becomes the empty name.
func (n *AccountName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = AccountName(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		*n = AccountName(strings.Join(parts, ":"))
		return nil
	}

	return common.NewDecodeError("report", "prrName", fmt.Sprintf("unrecognized account name encoding: %s", data))
}

// BalanceRow is one account row in a flat balance report.
type BalanceRow struct {
	FullName    string
	DisplayName string
	Depth       int
	Amounts     []Amount
}

// UnmarshalJSON decodes the 4-tuple [fullName, displayName, depth, amounts].
func (r *BalanceRow) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 4 {
		return common.NewDecodeError("balance", "row", fmt.Sprintf("want 4 elements, got %d", len(parts)))
	}

	var fullName AccountName
	if err := json.Unmarshal(parts[0], &fullName); err != nil {
		return err
	}
	r.FullName = string(fullName)

	var displayName AccountName
	if err := json.Unmarshal(parts[1], &displayName); err != nil {
		return err
	}
	r.DisplayName = string(displayName)

	if err := json.Unmarshal(parts[2], &r.Depth); err != nil {
		return common.NewDecodeError("balance", "row.depth", err.Error())
	}

	if err := json.Unmarshal(parts[3], &r.Amounts); err != nil {
		return common.NewDecodeError("balance", "row.amounts", err.Error())
	}

	return nil
}

// BalanceReport is the flat single-period report: rows plus an
// authoritative totals cell. The totals are upstream's own aggregate and
// must never be re-derived by summing rows.
type BalanceReport struct {
	Rows   []BalanceRow
	Totals []Amount
}

// UnmarshalJSON decodes the 2-tuple [rows, totals].
func (r *BalanceReport) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return common.NewDecodeError("balance", "$", fmt.Sprintf("not a [rows, totals] tuple: %v", err))
	}
	if len(parts) != 2 {
		return common.NewDecodeError("balance", "$", fmt.Sprintf("want 2 elements, got %d", len(parts)))
	}

	if err := json.Unmarshal(parts[0], &r.Rows); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], &r.Totals); err != nil {
		return common.NewDecodeError("balance", "totals", err.Error())
	}

	return nil
}

// PeriodicRow is one row of a multi-period subreport: one amounts cell
// per period column, plus the row's own overall total. A row may carry
// fewer cells than the report has columns when it had no activity in the
// trailing periods.
type PeriodicRow struct {
	Name    AccountName `json:"prrName"`
	Amounts [][]Amount  `json:"prrAmounts"`
	Total   []Amount    `json:"prrTotal"`
}

// PeriodicReport is the inner rows/totals structure of one subreport.
type PeriodicReport struct {
	Dates  []DateSpan    `json:"prDates"`
	Rows   []PeriodicRow `json:"prRows"`
	Totals PeriodicRow   `json:"prTotals"`
}

// Subreport is one named grouping inside a compound report.
type Subreport struct {
	Name           string
	Report         PeriodicReport
	IncreasesTotal bool
}

// UnmarshalJSON decodes the 3-tuple [name, report, increasesTotal].
func (s *Subreport) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return common.NewDecodeError("compound", "subreport", fmt.Sprintf("want 3 elements, got %d", len(parts)))
	}

	if err := json.Unmarshal(parts[0], &s.Name); err != nil {
		return common.NewDecodeError("compound", "subreport.name", err.Error())
	}
	if err := json.Unmarshal(parts[1], &s.Report); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[2], &s.IncreasesTotal); err != nil {
		return common.NewDecodeError("compound", "subreport.increasesTotal", err.Error())
	}

	return nil
}

// CompoundReport is the multi-period report form (income statements,
// balance sheets): period columns shared across named subreports, plus a
// grand-total row.
type CompoundReport struct {
	Title      string      `json:"cbrTitle"`
	Dates      []DateSpan  `json:"cbrDates"`
	Subreports []Subreport `json:"cbrSubreports"`
	Totals     PeriodicRow `json:"cbrTotals"`
}

// Subreport positions are a fragile upstream contract: hledger emits the
// revenue-like group first and the expense-like group second. The named
// accessors below are the only place that ordering is assumed.

// Revenues returns the revenue-like subreport.
func (r *CompoundReport) Revenues() (*Subreport, error) {
	if len(r.Subreports) < 2 {
		return nil, common.NewDecodeError("compound", "cbrSubreports", fmt.Sprintf("want 2 subreports, got %d", len(r.Subreports)))
	}
	return &r.Subreports[0], nil
}

// Expenses returns the expense-like subreport.
func (r *CompoundReport) Expenses() (*Subreport, error) {
	if len(r.Subreports) < 2 {
		return nil, common.NewDecodeError("compound", "cbrSubreports", fmt.Sprintf("want 2 subreports, got %d", len(r.Subreports)))
	}
	return &r.Subreports[1], nil
}
