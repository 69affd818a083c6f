package hledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/ledgerlens/internal/common"
	"github.com/joshsymonds/ledgerlens/internal/config"
)

// fakeHledger writes an executable script that ignores its arguments and
// behaves as directed, so runner tests don't need a real hledger install.
func fakeHledger(t *testing.T, script string) config.Config {
	t.Helper()

	dir := t.TempDir()
	binary := filepath.Join(dir, "hledger")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	journal := filepath.Join(dir, "journal.ledger")
	require.NoError(t, os.WriteFile(journal, []byte("2024-01-01 opening\n"), 0o644))

	return config.Config{
		JournalFile: journal,
		Binary:      binary,
		Timeout:     5 * time.Second,
	}
}

func TestNewCLIRunnerMissingBinary(t *testing.T) {
	_, err := NewCLIRunner(config.Config{Binary: "definitely-not-hledger-xyz"})
	require.Error(t, err)
}

func TestCLIRunnerRun(t *testing.T) {
	runner, err := NewCLIRunner(fakeHledger(t, `printf 'hello'`))
	require.NoError(t, err)

	out, err := runner.Run(context.Background(), "balance")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestCLIRunnerNonZeroExit(t *testing.T) {
	runner, err := NewCLIRunner(fakeHledger(t, `echo 'no such account' >&2; exit 1`))
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), "balance", "nonsense")
	require.Error(t, err)

	var upstreamErr *common.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, 1, upstreamErr.ExitCode)
	assert.Contains(t, upstreamErr.Stderr, "no such account")
}

func TestCLIRunnerRunJSON(t *testing.T) {
	runner, err := NewCLIRunner(fakeHledger(t, `printf '[[],[]]'`))
	require.NoError(t, err)

	var rep BalanceReport
	require.NoError(t, runner.RunJSON(context.Background(), &rep, "balance", "-O", "json"))
	assert.Empty(t, rep.Rows)
	assert.Empty(t, rep.Totals)
}

func TestCLIRunnerNonJSONOutput(t *testing.T) {
	runner, err := NewCLIRunner(fakeHledger(t, `printf 'this is not json'`))
	require.NoError(t, err)

	var rep BalanceReport
	err = runner.RunJSON(context.Background(), &rep, "balance", "-O", "json")
	require.Error(t, err)
	assert.True(t, common.IsUpstream(err), "non-JSON output is an upstream failure, not shape drift")
}

func TestCLIRunnerTimeout(t *testing.T) {
	runner, err := NewCLIRunner(fakeHledger(t, `sleep 10`))
	require.NoError(t, err)
	runner.timeout = 50 * time.Millisecond

	_, err = runner.Run(context.Background(), "balance")
	require.Error(t, err)
	assert.True(t, common.IsUpstream(err))
}
