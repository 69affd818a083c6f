package hledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joshsymonds/ledgerlens/internal/common"
)

// hledger encodes period dates two ways depending on version and report:
// a calendar-date string (possibly wrapped in a tagged object) or a bare
// julian day number. Both must normalize to the same period key.
const (
	// julianUnixEpoch is the julian day number of the Unix epoch
	// (1858-11-17 MJD origin + 40587 days): 2400000.5 + 40587.
	julianUnixEpoch = 2440587.5
	millisPerDay    = 86400000
)

// PeriodDate is one period-boundary date in either upstream encoding.
type PeriodDate struct {
	exact  string
	julian float64
	isSet  bool
	isDay  bool
}

// UnmarshalJSON accepts a calendar-date string, a julian day number, or a
// tagged object whose "contents" field holds either of those.
func (d *PeriodDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return common.NewDecodeError("period", "date", "empty date value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		d.exact = s
		d.isSet = true
		return nil
	case '{':
		var wrapper struct {
			Contents json.RawMessage `json:"contents"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return err
		}
		if wrapper.Contents == nil {
			return common.NewDecodeError("period", "date.contents", "tagged date has no contents")
		}
		return d.UnmarshalJSON(wrapper.Contents)
	default:
		var day float64
		if err := json.Unmarshal(data, &day); err != nil {
			return common.NewDecodeError("period", "date", fmt.Sprintf("unrecognized date encoding: %s", data))
		}
		d.julian = day
		d.isSet = true
		d.isDay = true
		return nil
	}
}

// MonthKey returns the canonical "YYYY-MM" bucket for this date. Both
// encodings of the same calendar date yield an identical key.
func (d PeriodDate) MonthKey() (string, error) {
	if !d.isSet {
		return "", common.NewDecodeError("period", "date", "date was never decoded")
	}

	if d.isDay {
		unixMillis := (d.julian - julianUnixEpoch) * millisPerDay
		return time.UnixMilli(int64(unixMillis)).UTC().Format("2006-01"), nil
	}

	if len(d.exact) < 7 {
		return "", common.NewDecodeError("period", "date", fmt.Sprintf("calendar date too short: %q", d.exact))
	}
	return d.exact[:7], nil
}

// DateSpan is one report column's [start, end) date pair.
type DateSpan struct {
	Start PeriodDate
	End   PeriodDate
}

// UnmarshalJSON decodes the tuple form hledger uses for column spans.
func (s *DateSpan) UnmarshalJSON(data []byte) error {
	var parts []PeriodDate
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) == 0 {
		return common.NewDecodeError("period", "dates", "empty date span")
	}

	s.Start = parts[0]
	if len(parts) > 1 {
		s.End = parts[1]
	}
	return nil
}
