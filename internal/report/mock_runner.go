package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

// MockRunner is a test implementation of the hledger.Runner interface.
// It serves canned output keyed by the report subcommand (the first
// argument) and records every invocation.
type MockRunner struct {
	responses map[string][]byte
	errs      map[string]error
	calls     [][]string
	mu        sync.Mutex
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		responses: make(map[string][]byte),
		errs:      make(map[string]error),
	}
}

// Respond sets the canned stdout for a subcommand.
func (m *MockRunner) Respond(subcommand, output string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[subcommand] = []byte(output)
}

// Fail makes a subcommand return an error.
func (m *MockRunner) Fail(subcommand string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[subcommand] = err
}

// Calls returns the argument lists of every invocation so far.
func (m *MockRunner) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([][]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Run returns the canned output for args[0].
func (m *MockRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, args)

	if len(args) == 0 {
		return nil, fmt.Errorf("mock runner invoked with no arguments")
	}
	if err := m.errs[args[0]]; err != nil {
		return nil, err
	}

	out, ok := m.responses[args[0]]
	if !ok {
		return nil, fmt.Errorf("mock runner has no response for %q", args[0])
	}
	return out, nil
}

// RunJSON decodes the canned output for args[0] into v.
func (m *MockRunner) RunJSON(ctx context.Context, v any, args ...string) error {
	out, err := m.Run(ctx, args...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(out, v); err != nil {
		return common.NewUpstreamError(0, "", fmt.Errorf("hledger produced non-JSON output: %w", err))
	}
	return nil
}
