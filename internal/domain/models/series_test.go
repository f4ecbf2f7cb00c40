package models

import (
	"reflect"
	"testing"
)

func TestQuoteSeries_OrderAndLastWriteWins(t *testing.T) {
	s := NewQuoteSeries()
	s.Put("20250103", QuoteRow{Open: "10.50"})
	s.Put("20250102", QuoteRow{Open: "10.00"})
	s.Put("20250103", QuoteRow{Open: "10.55"}) // duplicate: replaces value, keeps position

	if s.Len() != 2 {
		t.Fatalf("len=%d, want 2", s.Len())
	}
	if got := s.Dates(); !reflect.DeepEqual(got, []string{"20250103", "20250102"}) {
		t.Fatalf("dates=%v, want insertion order with original duplicate position", got)
	}
	if r, ok := s.Get("20250103"); !ok || r.Open != "10.55" {
		t.Fatalf("duplicate did not replace row: %+v ok=%v", r, ok)
	}
	if d, r := s.At(1); d != "20250102" || r.Open != "10.00" {
		t.Fatalf("At(1)=%q %+v", d, r)
	}
}

func TestRowFromFields_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
		want   QuoteRow
	}{
		{
			name:   "full row",
			fields: []string{"10.00", "10.50", "0.50", "5.00%", "9.90", "10.60", "12345", "67890", "1.2%"},
			want: QuoteRow{
				Open: "10.00", Close: "10.50", ChangeAmount: "0.50", ChangePercent: "5.00%",
				Low: "9.90", High: "10.60", Volume: "12345", Amount: "67890", TurnoverRate: "1.2%",
			},
		},
		{
			name:   "short row defaults trailing fields",
			fields: []string{"10.00", "10.50"},
			want:   QuoteRow{Open: "10.00", Close: "10.50"},
		},
		{
			name:   "empty row",
			fields: nil,
			want:   QuoteRow{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RowFromFields(tc.fields); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestQuoteRow_FieldsRoundTrip(t *testing.T) {
	in := []string{"10.00", "10.50", "0.50", "5.00%", "9.90", "10.60", "12345", "67890", "1.2%"}
	out := RowFromFields(in).Fields()
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch: %v != %v", out, in)
	}

	// Short input always comes back with nine entries.
	short := RowFromFields([]string{"10.00"}).Fields()
	if len(short) != 9 || short[0] != "10.00" || short[1] != "" {
		t.Fatalf("short round trip: %v", short)
	}
}

func TestStatsFromArray_ShortInput(t *testing.T) {
	// Length 3: positions 1 and 2 populated, everything after empty.
	got := StatsFromArray([]string{"累计:", "2025-01-02至2025-01-03", "0.80"})
	if got.Period != "2025-01-02至2025-01-03" || got.ChangeAmount != "0.80" {
		t.Fatalf("populated fields wrong: %+v", got)
	}
	if got.ChangePercent != "" || got.Lowest != "" || got.Highest != "" ||
		got.TotalVolume != "" || got.TotalAmount != "" || got.TurnoverRate != "" {
		t.Fatalf("expected empty trailing fields: %+v", got)
	}

	// Nil input never panics, yields all-empty stats.
	if got := StatsFromArray(nil); got != (RangeStats{}) {
		t.Fatalf("nil input: %+v", got)
	}
}

func TestParseInterval_TableDriven(t *testing.T) {
	cases := []struct {
		in      string
		want    Interval
		wantErr bool
	}{
		{"daily", IntervalDaily, false},
		{"weekly", IntervalWeekly, false},
		{"monthly", IntervalMonthly, false},
		{"d", IntervalDaily, false},
		{"w", IntervalWeekly, false},
		{"m", IntervalMonthly, false},
		{"", IntervalDaily, false},
		{"yearly", "", true},
	}
	for _, tc := range cases {
		got, err := ParseInterval(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseInterval(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseInterval(%q)=%v err=%v, want %v", tc.in, got, err, tc.want)
		}
	}
}

func TestInterval_Code(t *testing.T) {
	if IntervalDaily.Code() != "d" || IntervalWeekly.Code() != "w" || IntervalMonthly.Code() != "m" {
		t.Fatalf("interval codes wrong: %s %s %s", IntervalDaily.Code(), IntervalWeekly.Code(), IntervalMonthly.Code())
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		req     QuoteRequest
		wantErr bool
	}{
		{"valid", QuoteRequest{Code: "cn_600919", Start: "20250101", End: "20250105", Interval: IntervalDaily}, false},
		{"missing code", QuoteRequest{Start: "20250101", End: "20250105"}, true},
		{"short start", QuoteRequest{Code: "cn_600919", Start: "2025", End: "20250105"}, true},
		{"non-numeric end", QuoteRequest{Code: "cn_600919", Start: "20250101", End: "2025-1-5"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate()=%v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}
