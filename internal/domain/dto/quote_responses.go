package dto

// FetchRequest is the body of POST /api/v1/fetch. Empty fields fall
// back to the configured defaults, matching the dashboard form.
type FetchRequest struct {
	StockCode string `json:"stock_code" example:"cn_600919"`
	StartDate string `json:"start_date" example:"20250101"`
	EndDate   string `json:"end_date" example:"20250105"`
	Interval  string `json:"interval" example:"daily"` // daily|weekly|monthly (or d|w|m)
}

// RangeStatsResponse is the range summary section of a fetch
// response. Fields are decimal strings and empty when the provider's
// summary did not include that position.
type RangeStatsResponse struct {
	Period        string `json:"period" example:"2025-01-02至2025-01-03"`
	ChangeAmount  string `json:"change_amount" example:"0.80"`
	ChangePercent string `json:"change_percent" example:"8.00%"`
	Lowest        string `json:"lowest" example:"9.90"`
	Highest       string `json:"highest" example:"10.90"`
	TotalVolume   string `json:"total_volume" example:"123456"`
	TotalAmount   string `json:"total_amount" example:"7890123"`
	TurnoverRate  string `json:"turnover_rate" example:"1.23%"`
}

// FetchResponse is the success body of POST /api/v1/fetch.
//
// Data maps each date to its nine positional fields; Dates carries
// the provider ordering, since JSON objects do not preserve it.
// Columns documents the positional layout for table rendering.
type FetchResponse struct {
	Success        bool                `json:"success" example:"true"`
	Code           string              `json:"code" example:"cn_600919"`
	Dates          []string            `json:"dates"`
	Data           map[string][]string `json:"data"`
	CumulativeData RangeStatsResponse  `json:"cumulative_data"`
	Columns        []string            `json:"columns"`
}

// QuoteColumns is the positional layout of each Data row, date first.
var QuoteColumns = []string{
	"date", "open", "close", "change_amount", "change_percent",
	"low", "high", "volume", "amount", "turnover_rate",
}

// ChartResponse is the body of GET /api/v1/chart: parallel arrays for
// candlestick rendering, in series order. Empty or unparseable price
// fields become 0.
type ChartResponse struct {
	Dates  []string  `json:"dates"`
	Opens  []float64 `json:"opens"`
	Closes []float64 `json:"closes"`
	Highs  []float64 `json:"highs"`
	Lows   []float64 `json:"lows"`
}
