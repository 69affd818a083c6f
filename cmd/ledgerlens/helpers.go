package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshsymonds/ledgerlens/internal/config"
	"github.com/joshsymonds/ledgerlens/internal/hledger"
	"github.com/joshsymonds/ledgerlens/internal/report"
)

// initService wires config into a runner and the report service.
func initService() (*report.Service, error) {
	cfg, err := config.FromViper()
	if err != nil {
		return nil, err
	}

	runner, err := hledger.NewCLIRunner(cfg)
	if err != nil {
		return nil, err
	}

	return report.NewService(runner), nil
}

// printResult writes a decoded result to stdout in the requested format.
// "json" emits the result verbatim for scripting; anything else uses the
// given table renderer.
func printResult(format string, result any, renderTable func() string) error {
	if format == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	fmt.Fprintln(os.Stdout, renderTable())
	return nil
}
