package models

// rowFieldCount is the number of per-date fields the provider sends
// after the date itself.
const rowFieldCount = 9

// QuoteRow holds the per-date fields of one history row, in provider
// order. Values are kept as decimal strings exactly as received; they
// may be empty, and numeric parsing is left to consumers.
type QuoteRow struct {
	Open          string
	Close         string
	ChangeAmount  string
	ChangePercent string
	Low           string
	High          string
	Volume        string
	Amount        string
	TurnoverRate  string
}

// RowFromFields builds a QuoteRow from the positional field list of a
// provider row (date already stripped). Missing trailing fields
// become empty strings; extra fields are ignored.
func RowFromFields(fields []string) QuoteRow {
	at := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	return QuoteRow{
		Open:          at(0),
		Close:         at(1),
		ChangeAmount:  at(2),
		ChangePercent: at(3),
		Low:           at(4),
		High:          at(5),
		Volume:        at(6),
		Amount:        at(7),
		TurnoverRate:  at(8),
	}
}

// Fields returns the row back in provider order. The result always
// has rowFieldCount entries so CSV rows stay rectangular.
func (r QuoteRow) Fields() []string {
	return []string{
		r.Open,
		r.Close,
		r.ChangeAmount,
		r.ChangePercent,
		r.Low,
		r.High,
		r.Volume,
		r.Amount,
		r.TurnoverRate,
	}
}

// QuoteSeries is an ordered date→row mapping. Insertion order is
// significant (the provider sends rows in display order, typically
// descending date) and is preserved for charting and export.
type QuoteSeries struct {
	dates []string
	rows  map[string]QuoteRow
}

// NewQuoteSeries returns an empty series.
func NewQuoteSeries() *QuoteSeries {
	return &QuoteSeries{rows: make(map[string]QuoteRow)}
}

// Put inserts or replaces the row for date. On a duplicate date the
// last write wins and the key keeps its original position.
func (s *QuoteSeries) Put(date string, row QuoteRow) {
	if _, ok := s.rows[date]; !ok {
		s.dates = append(s.dates, date)
	}
	s.rows[date] = row
}

// Get returns the row for date and whether it exists.
func (s *QuoteSeries) Get(date string) (QuoteRow, bool) {
	r, ok := s.rows[date]
	return r, ok
}

// Len returns the number of dates in the series.
func (s *QuoteSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dates)
}

// Dates returns the date keys in insertion order. The slice is a
// copy; callers may mutate it.
func (s *QuoteSeries) Dates() []string {
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// At returns the i-th date and its row in insertion order.
func (s *QuoteSeries) At(i int) (string, QuoteRow) {
	d := s.dates[i]
	return d, s.rows[d]
}
