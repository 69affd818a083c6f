package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

// DefaultTimeout bounds a single hledger invocation.
const DefaultTimeout = 30 * time.Second

// Config carries everything the hledger runner needs. It is an explicit
// value handed to constructors, not ambient global state, so tests can
// substitute fixture runners freely.
type Config struct {
	// JournalFile is the hledger journal to query.
	JournalFile string
	// Binary is the hledger executable to invoke.
	Binary string
	// Timeout is the hard upper bound on one hledger invocation.
	Timeout time.Duration
}

// FromViper builds a Config from the loaded viper state, falling back to
// hledger's own LEDGER_FILE convention for the journal path.
func FromViper() (Config, error) {
	journal := viper.GetString("ledger.file")
	if journal == "" {
		journal = os.Getenv("LEDGER_FILE")
	}
	if journal == "" {
		return Config{}, fmt.Errorf("%w: set ledger.file or LEDGER_FILE", common.ErrMissingConfig)
	}
	journal = ExpandPath(journal)

	if _, err := os.Stat(journal); err != nil {
		return Config{}, fmt.Errorf("%w: %s", common.ErrJournalNotFound, journal)
	}

	binary := viper.GetString("hledger.binary")
	if binary == "" {
		binary = "hledger"
	}

	timeout := viper.GetDuration("hledger.timeout")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return Config{
		JournalFile: journal,
		Binary:      binary,
		Timeout:     timeout,
	}, nil
}
