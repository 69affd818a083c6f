package report

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/joshsymonds/ledgerlens/internal/hledger"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

// expensePrefix is stripped from fully-qualified account names for display.
const expensePrefix = "expenses:"

// Service exposes the three report operations over a Runner. Each call is
// a pure function of the runner's output; the service holds no state
// between invocations.
type Service struct {
	runner hledger.Runner
}

// NewService creates a report service backed by the given runner.
func NewService(runner hledger.Runner) *Service {
	return &Service{runner: runner}
}

// CategoryBreakdown reports spending by category for one period. An empty
// filter queries the expenses hierarchy; depth <= 0 keeps hledger's
// default grouping.
func (s *Service) CategoryBreakdown(ctx context.Context, period string, depth int, filter string) (*model.CategoryBreakdown, error) {
	query := filter
	if query == "" {
		query = "expenses"
	}

	args := []string{"balance", query, "-O", "json"}
	if period != "" {
		args = append(args, "-p", period)
	}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}

	var rep hledger.BalanceReport
	if err := s.runner.RunJSON(ctx, &rep, args...); err != nil {
		return nil, err
	}

	return DecodeBreakdown(period, expensePrefix, &rep)
}

// PeriodTrend reports income versus expenses per interval bucket across
// the given period.
func (s *Service) PeriodTrend(ctx context.Context, period string, interval model.Interval) (*model.Trend, error) {
	args := []string{"incomestatement", intervalFlag(interval), "-O", "json"}
	if period != "" {
		args = append(args, "-p", period)
	}

	var rep hledger.CompoundReport
	if err := s.runner.RunJSON(ctx, &rep, args...); err != nil {
		return nil, err
	}

	return DecodeTrend(interval, &rep)
}

// FinancialSummary combines net worth, income/expense totals, and the top
// expense categories for an optional period ("" means the whole journal).
// The three source reports are independent read-only queries and are
// fetched concurrently; any failure fails the whole summary.
func (s *Service) FinancialSummary(ctx context.Context, period string) (*model.Summary, error) {
	var (
		position hledger.CompoundReport
		activity hledger.CompoundReport
		ranking  hledger.BalanceReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		args := []string{"balancesheet", "-O", "json"}
		if period != "" {
			args = append(args, "-p", period)
		}
		return s.runner.RunJSON(gctx, &position, args...)
	})
	g.Go(func() error {
		args := []string{"incomestatement", "-O", "json"}
		if period != "" {
			args = append(args, "-p", period)
		}
		return s.runner.RunJSON(gctx, &activity, args...)
	})
	g.Go(func() error {
		args := []string{"balance", "expenses", "--sort-amount", "-O", "json"}
		if period != "" {
			args = append(args, "-p", period)
		}
		return s.runner.RunJSON(gctx, &ranking, args...)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return DecodeSummary(period, expensePrefix, &position, &activity, &ranking)
}

// intervalFlag maps a trend interval to hledger's reporting flag.
func intervalFlag(interval model.Interval) string {
	switch interval {
	case model.IntervalWeekly:
		return "-W"
	case model.IntervalQuarterly:
		return "-Q"
	default:
		return "-M"
	}
}
