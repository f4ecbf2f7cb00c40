package models

import "fmt"

// Interval is the sampling period of a history query.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// Code returns the single-letter period code the provider expects.
func (i Interval) Code() string {
	switch i {
	case IntervalWeekly:
		return "w"
	case IntervalMonthly:
		return "m"
	default:
		return "d"
	}
}

// ParseInterval maps a user-supplied interval name to an Interval.
// Both the long names and the provider's single-letter codes are
// accepted; empty input defaults to daily.
func ParseInterval(s string) (Interval, error) {
	switch s {
	case "", "d", "daily":
		return IntervalDaily, nil
	case "w", "weekly":
		return IntervalWeekly, nil
	case "m", "monthly":
		return IntervalMonthly, nil
	default:
		return "", fmt.Errorf("invalid interval %q: expected daily, weekly or monthly", s)
	}
}

// QuoteRequest carries the parameters of one history query.
// Immutable once built: handlers construct it, the service and the
// session store only read it.
//
// Fields:
//   - Code: provider-specific ticker (e.g. "cn_600919").
//   - Start, End: date bounds as 8-digit YYYYMMDD strings.
//   - Interval: daily, weekly or monthly sampling.
type QuoteRequest struct {
	Code     string
	Start    string
	End      string
	Interval Interval
}

// Validate checks the request is complete and well-formed.
func (r QuoteRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("stock code is required")
	}
	if err := validateDate("start date", r.Start); err != nil {
		return err
	}
	if err := validateDate("end date", r.End); err != nil {
		return err
	}
	return nil
}

func validateDate(field, s string) error {
	if len(s) != 8 {
		return fmt.Errorf("invalid %s %q: expected YYYYMMDD", field, s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return fmt.Errorf("invalid %s %q: expected YYYYMMDD", field, s)
		}
	}
	return nil
}
