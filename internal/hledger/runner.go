// Package hledger wraps the hledger command-line tool and decodes the
// JSON report shapes it produces.
package hledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/joshsymonds/ledgerlens/internal/common"
	"github.com/joshsymonds/ledgerlens/internal/config"
)

// Runner executes hledger queries. Implementations must treat every call
// as independent: no state is shared between invocations.
type Runner interface {
	// Run invokes hledger with the given arguments and returns raw stdout.
	Run(ctx context.Context, args ...string) ([]byte, error)
	// RunJSON invokes hledger and decodes its stdout into v.
	RunJSON(ctx context.Context, v any, args ...string) error
}

// CLIRunner runs the real hledger binary against a configured journal.
type CLIRunner struct {
	binary  string
	journal string
	timeout time.Duration
}

// NewCLIRunner creates a runner from explicit configuration.
func NewCLIRunner(cfg config.Config) (*CLIRunner, error) {
	if _, err := exec.LookPath(cfg.Binary); err != nil {
		return nil, fmt.Errorf("hledger not found at %q: %w", cfg.Binary, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	return &CLIRunner{
		binary:  cfg.Binary,
		journal: cfg.JournalFile,
		timeout: timeout,
	}, nil
}

// Run invokes hledger with a bounded timeout. A non-zero exit or timeout
// surfaces as an UpstreamError carrying the exit code and stderr text.
func (r *CLIRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmdCtx := ctx
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	fullArgs := append([]string{"-f", r.journal}, args...)
	cmd := exec.CommandContext(cmdCtx, r.binary, fullArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	common.LogDebug("hledger invoked", common.Fields{
		"args":     strings.Join(args, " "),
		"duration": time.Since(start).String(),
	})

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, common.NewUpstreamError(exitCode, strings.TrimSpace(stderr.String()), err)
	}

	return stdout.Bytes(), nil
}

// RunJSON invokes hledger and decodes its stdout into v. Output that is
// not valid JSON is an upstream failure, not a decode-shape failure.
func (r *CLIRunner) RunJSON(ctx context.Context, v any, args ...string) error {
	out, err := r.Run(ctx, args...)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(out, v); err != nil {
		return common.NewUpstreamError(0, "", fmt.Errorf("hledger produced non-JSON output: %w", err))
	}

	return nil
}
