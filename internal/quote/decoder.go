// Package quote decodes the provider's padding-qualified (JSONP)
// history responses into ordered quote series and range summaries.
package quote

import (
	"encoding/json"
	"strings"

	"quotedash/internal/domain/models"
)

// statusOK is the provider's success status code. Status is compared
// as a string because the provider is inconsistent about emitting it
// as a JSON string or number.
const statusOK = "0"

// body is the first element of the provider's response array.
// hq rows are positional string arrays: date first, then the nine
// per-date fields. stat is a mixed positional array (labels as
// strings, totals sometimes as numbers), so it is decoded loosely
// and stringified afterwards.
type body struct {
	Status  any        `json:"status"`
	Message string     `json:"message"`
	HQ      [][]string `json:"hq"`
	Stat    []any      `json:"stat"`
}

// Decode strips the callback wrapper from raw, parses the JSON body,
// validates the provider status and builds the ordered date→row
// series plus the range summary.
//
// Failure modes:
//   - *DecodeError: no parenthesis pair, unparseable JSON, or a
//     structurally broken payload.
//   - *ProviderError: well-formed payload with a non-success status.
//
// An empty hq array is not an error: it yields an empty series and
// whatever summary the payload carried (usually none).
func Decode(raw string) (*models.QuoteSeries, models.RangeStats, error) {
	var stats models.RangeStats

	start := strings.Index(raw, "(")
	end := strings.LastIndex(raw, ")")
	if start < 0 || end < 0 || end < start {
		return nil, stats, &DecodeError{Reason: "malformed envelope: missing callback parentheses"}
	}

	dec := json.NewDecoder(strings.NewReader(raw[start+1 : end]))
	dec.UseNumber()

	var envelope []body
	if err := dec.Decode(&envelope); err != nil {
		return nil, stats, &DecodeError{Reason: "invalid JSON body", Err: err}
	}
	if len(envelope) == 0 {
		return nil, stats, &DecodeError{Reason: "empty response array"}
	}
	payload := envelope[0]

	if status := stringify(payload.Status); status != statusOK {
		return nil, stats, &ProviderError{Status: status, Message: payload.Message}
	}

	series := models.NewQuoteSeries()
	for _, row := range payload.HQ {
		if len(row) == 0 {
			return nil, stats, &DecodeError{Reason: "empty hq row"}
		}
		// First entry is the date key; duplicates replace the earlier
		// row but keep its position.
		series.Put(row[0], models.RowFromFields(row[1:]))
	}

	return series, ExtractStats(payload.Stat), nil
}

// ExtractStats converts the provider's positional summary array into
// RangeStats. Any index beyond the array length yields an empty
// field; an absent array yields all-empty stats. Never fails.
func ExtractStats(stat []any) models.RangeStats {
	fields := make([]string, len(stat))
	for i, v := range stat {
		fields[i] = stringify(v)
	}
	return models.StatsFromArray(fields)
}

// stringify renders a loosely decoded JSON scalar as the string the
// positional contract expects. Numbers keep their exact source form
// thanks to json.Number.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
