package models

// RangeStats holds the provider's summary over the queried range.
// Each field is an optional decimal string: when the source summary
// array does not reach a position, the field stays empty. Reading
// code never has to bounds-check positions itself.
type RangeStats struct {
	Period        string
	ChangeAmount  string
	ChangePercent string
	Lowest        string
	Highest       string
	TotalVolume   string
	TotalAmount   string
	TurnoverRate  string
}

// StatsFromArray builds RangeStats from the provider's positional
// summary array. Index 0 is a label and unused; indices 1..8 map to
// the fields in declaration order. Short or nil arrays are fine:
// absent positions yield empty strings. This never fails.
func StatsFromArray(stat []string) RangeStats {
	at := func(i int) string {
		if i < len(stat) {
			return stat[i]
		}
		return ""
	}
	return RangeStats{
		Period:        at(1),
		ChangeAmount:  at(2),
		ChangePercent: at(3),
		Lowest:        at(4),
		Highest:       at(5),
		TotalVolume:   at(6),
		TotalAmount:   at(7),
		TurnoverRate:  at(8),
	}
}

// Snapshot is one consistent view of a session: the last attempted
// request plus the quotes and stats committed by the most recent
// successful fetch. Quotes and Stats always originate from the same
// fetch; readers never see them mixed across fetches.
type Snapshot struct {
	Request QuoteRequest
	Quotes  *QuoteSeries
	Stats   RangeStats
}
