package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/ledgerlens/internal/common"
	"github.com/joshsymonds/ledgerlens/internal/model"
)

func TestServiceCategoryBreakdown(t *testing.T) {
	runner := NewMockRunner()
	runner.Respond("balance", `[
	  [["expenses:food","expenses:food",1,[`+amountJSON(-300)+`]]],
	  [`+amountJSON(-300)+`]
	]`)

	svc := NewService(runner)
	got, err := svc.CategoryBreakdown(context.Background(), "2024-01", 2, "")
	require.NoError(t, err)

	assert.InDelta(t, 300, got.Total, 1e-9)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"balance", "expenses", "-O", "json", "-p", "2024-01", "--depth", "2"}, calls[0])
}

func TestServiceCategoryBreakdownDefaults(t *testing.T) {
	runner := NewMockRunner()
	runner.Respond("balance", `[[],[]]`)

	svc := NewService(runner)
	_, err := svc.CategoryBreakdown(context.Background(), "", 0, "expenses:food")
	require.NoError(t, err)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"balance", "expenses:food", "-O", "json"}, calls[0],
		"no period or depth flags without explicit values")
}

func TestServicePeriodTrend(t *testing.T) {
	runner := NewMockRunner()
	runner.Respond("incomestatement", twoMonthStatement(
		[]string{amountJSON(3000), amountJSON(3200)},
		[]string{amountJSON(-1000), amountJSON(-1100)},
	))

	svc := NewService(runner)
	got, err := svc.PeriodTrend(context.Background(), "2024", model.IntervalWeekly)
	require.NoError(t, err)

	assert.Equal(t, model.IntervalWeekly, got.Interval)
	require.Len(t, got.Points, 2)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"incomestatement", "-W", "-O", "json", "-p", "2024"}, calls[0])
}

func TestIntervalFlag(t *testing.T) {
	assert.Equal(t, "-M", intervalFlag(model.IntervalMonthly))
	assert.Equal(t, "-W", intervalFlag(model.IntervalWeekly))
	assert.Equal(t, "-Q", intervalFlag(model.IntervalQuarterly))
}

func TestServiceFinancialSummary(t *testing.T) {
	runner := NewMockRunner()
	runner.Respond("balancesheet", positionFixture(50000))
	runner.Respond("incomestatement", activityFixture(5000, -4000))
	runner.Respond("balance", rankingFixture(2))

	svc := NewService(runner)
	got, err := svc.FinancialSummary(context.Background(), "2024")
	require.NoError(t, err)

	assert.InDelta(t, 50000, got.NetWorth, 1e-9)
	assert.InDelta(t, 20.0, got.SavingsRate, 1e-9)
	require.Len(t, got.TopExpenses, 2)

	// Three independent queries, fetched in any order.
	assert.Len(t, runner.Calls(), 3)
}

func TestServiceFinancialSummaryNoPartialResults(t *testing.T) {
	runner := NewMockRunner()
	runner.Respond("balancesheet", positionFixture(50000))
	runner.Respond("balance", rankingFixture(2))
	runner.Fail("incomestatement", common.NewUpstreamError(1, "parse error", errors.New("exit status 1")))

	svc := NewService(runner)
	_, err := svc.FinancialSummary(context.Background(), "")
	require.Error(t, err)
	assert.True(t, common.IsUpstream(err), "a failing source report fails the whole summary")
}

func TestServiceUpstreamErrorPropagates(t *testing.T) {
	runner := NewMockRunner()
	runner.Fail("balance", common.NewUpstreamError(1, "could not parse journal", errors.New("exit status 1")))

	svc := NewService(runner)
	_, err := svc.CategoryBreakdown(context.Background(), "", 0, "")
	require.Error(t, err)

	var upstreamErr *common.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Contains(t, upstreamErr.Stderr, "could not parse journal")
}
