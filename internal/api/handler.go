package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotedash/config"
	"quotedash/internal/domain/dto"
	"quotedash/internal/domain/models"
	"quotedash/internal/i18n"
	"quotedash/internal/middleware"
	"quotedash/internal/quote"
	"quotedash/internal/service"
)

// Handler provides HTTP handlers for the quote dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming request parameters and apply form defaults
//   - Run the fetch pipeline through the service layer
//   - Translate session state and errors into response DTOs
//   - Return structured JSON (or CSV) with appropriate status codes
type Handler struct {
	svc      service.QuoteService
	defaults config.DefaultsConfig
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.QuoteService): the fetch/projection service.
//   - defaults (config.DefaultsConfig): fallback query parameters used
//     when a fetch request leaves fields empty.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.QuoteService, defaults config.DefaultsConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

// FetchData handles POST /api/v1/fetch requests.
//
// FetchData godoc
// @Summary      Fetch historical quotes
// @Description  Queries the upstream provider for the requested ticker and range, commits the result to the session and returns it
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FetchRequest  true  "Query parameters; empty fields fall back to configured defaults"
// @Success      200      {object}  dto.FetchResponse      "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse      "Provider failure"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/fetch [post]
func (h *Handler) FetchData(c *gin.Context) {
	var body dto.FetchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	// Empty fields fall back to the dashboard form defaults.
	if body.StockCode == "" {
		body.StockCode = h.defaults.StockCode
	}
	if body.StartDate == "" {
		body.StartDate = h.defaults.StartDate
	}
	if body.EndDate == "" {
		body.EndDate = h.defaults.EndDate
	}

	interval, err := models.ParseInterval(body.Interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid interval", err))
		return
	}

	req := models.QuoteRequest{
		Code:     body.StockCode,
		Start:    body.StartDate,
		End:      body.EndDate,
		Interval: interval,
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request", err))
		return
	}

	series, stats, err := h.svc.Fetch(c.Request.Context(), middleware.SessionIDFrom(c), req)
	if err != nil {
		status, msg := classifyFetchError(err)
		c.JSON(status, dto.NewErrorResponse(msg, err))
		return
	}

	resp := dto.FetchResponse{
		Success: true,
		Code:    req.Code,
		Dates:   series.Dates(),
		Data:    make(map[string][]string, series.Len()),
		CumulativeData: dto.RangeStatsResponse{
			Period:        stats.Period,
			ChangeAmount:  stats.ChangeAmount,
			ChangePercent: stats.ChangePercent,
			Lowest:        stats.Lowest,
			Highest:       stats.Highest,
			TotalVolume:   stats.TotalVolume,
			TotalAmount:   stats.TotalAmount,
			TurnoverRate:  stats.TurnoverRate,
		},
		Columns: dto.QuoteColumns,
	}
	for i := 0; i < series.Len(); i++ {
		date, row := series.At(i)
		resp.Data[date] = row.Fields()
	}

	c.JSON(http.StatusOK, resp)
}

// classifyFetchError maps pipeline errors onto HTTP status codes.
// Upstream trouble (transport or provider status) is a bad gateway;
// anything else is internal.
func classifyFetchError(err error) (int, string) {
	var netErr *quote.NetworkError
	var provErr *quote.ProviderError
	switch {
	case errors.As(err, &netErr):
		return http.StatusBadGateway, "quote provider unreachable"
	case errors.As(err, &provErr):
		return http.StatusBadGateway, "quote provider rejected the query"
	default:
		return http.StatusInternalServerError, "failed to decode quote data"
	}
}

// ChartData handles GET /api/v1/chart requests.
//
// ChartData godoc
// @Summary      Get chart series
// @Description  Returns parallel date/open/close/high/low arrays derived from the session's current quotes
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  dto.ChartResponse   "Success"
// @Failure      404  {object}  dto.ErrorResponse   "No data available"
// @Router       /api/v1/chart [get]
func (h *Handler) ChartData(c *gin.Context) {
	cs, ok := h.svc.ChartSeries(middleware.SessionIDFrom(c))
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data available", nil))
		return
	}

	c.JSON(http.StatusOK, dto.ChartResponse{
		Dates:  cs.Dates,
		Opens:  cs.Opens,
		Closes: cs.Closes,
		Highs:  cs.Highs,
		Lows:   cs.Lows,
	})
}

// ExportCSV handles GET /api/v1/export requests.
//
// ExportCSV godoc
// @Summary      Export quotes as CSV
// @Description  Streams the session's current quotes as a CSV attachment, one row per date in provider order
// @Tags         quotes
// @Produce      text/csv
// @Success      200  {string}  string              "CSV payload"
// @Failure      404  {object}  dto.ErrorResponse   "No data available"
// @Router       /api/v1/export [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	rows, req, ok := h.svc.ExportRows(middleware.SessionIDFrom(c))
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data available", nil))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=stock_data_%s.csv", req.Code))

	w := csv.NewWriter(c.Writer)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			// Headers are already out; nothing sane left to send.
			_ = c.Error(err)
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = c.Error(err)
	}
}

// Texts handles GET /api/v1/texts requests.
//
// Texts godoc
// @Summary      Get UI label table
// @Description  Returns the localized label table for the requested language (zh default)
// @Tags         i18n
// @Produce      json
// @Param        lang  query     string  false  "Language code"  Enums(en, zh)
// @Success      200   {object}  map[string]string  "Label table"
// @Router       /api/v1/texts [get]
func (h *Handler) Texts(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Texts(c.Query("lang")))
}
