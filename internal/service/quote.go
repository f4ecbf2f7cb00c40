package service

import (
	"context"
	"strconv"

	"quotedash/internal/domain/models"
	"quotedash/internal/logger"
	"quotedash/internal/provider/sohu"
	"quotedash/internal/quote"
	"quotedash/internal/store"
)

// ExportHeader is the fixed first row of every CSV export.
var ExportHeader = []string{
	"Date", "Open", "Close", "Change_Amount", "Change_Percent",
	"Low", "High", "Volume", "Amount", "Turnover_Rate",
}

// ChartSeries holds parallel arrays derived from a session's quotes
// for candlestick rendering, in series order.
type ChartSeries struct {
	Dates  []string
	Opens  []float64
	Closes []float64
	Highs  []float64
	Lows   []float64
}

// QuoteService sequences the fetch pipeline and projects session
// state for the presentation layer.
type QuoteService interface {
	// Fetch runs client → decoder → stats → session commit for one
	// request. The attempted query is recorded on the session before
	// the network call; on any stage failure the originating error is
	// returned unchanged and no result is committed.
	Fetch(ctx context.Context, sessionID string, req models.QuoteRequest) (*models.QuoteSeries, models.RangeStats, error)

	// ChartSeries derives chart arrays from the session's current
	// quotes. ok is false before the first successful fetch.
	ChartSeries(sessionID string) (ChartSeries, bool)

	// ExportRows returns the CSV header plus one row per quote in
	// series order, and the request the data belongs to. ok is false
	// before the first successful fetch.
	ExportRows(sessionID string) (rows [][]string, req models.QuoteRequest, ok bool)

	// Snapshot exposes the raw session view.
	Snapshot(sessionID string) models.Snapshot
}

type quoteService struct {
	client   sohu.Client
	sessions *store.Store
}

// NewQuoteService wires the provider client and the session store.
func NewQuoteService(client sohu.Client, sessions *store.Store) QuoteService {
	return &quoteService{client: client, sessions: sessions}
}

func (s *quoteService) Fetch(ctx context.Context, sessionID string, req models.QuoteRequest) (*models.QuoteSeries, models.RangeStats, error) {
	sess := s.sessions.Session(sessionID)

	// Recorded unconditionally so the UI can echo the attempted query
	// even when the fetch fails.
	sess.RecordQuery(req)

	raw, err := s.client.FetchRaw(ctx, req)
	if err != nil {
		logger.L().Warn().Str("code", req.Code).Err(err).Msg("quote fetch failed")
		return nil, models.RangeStats{}, err
	}

	series, stats, err := quote.Decode(raw)
	if err != nil {
		logger.L().Warn().Str("code", req.Code).Err(err).Msg("quote decode failed")
		return nil, models.RangeStats{}, err
	}

	sess.ApplyResult(series, stats)
	logger.L().Info().
		Str("code", req.Code).
		Str("start", req.Start).
		Str("end", req.End).
		Str("period", req.Interval.Code()).
		Int("rows", series.Len()).
		Msg("quote fetch committed")

	return series, stats, nil
}

func (s *quoteService) ChartSeries(sessionID string) (ChartSeries, bool) {
	sess := s.sessions.Session(sessionID)
	if !sess.Populated() {
		return ChartSeries{}, false
	}
	snap := sess.Snapshot()

	n := snap.Quotes.Len()
	cs := ChartSeries{
		Dates:  make([]string, 0, n),
		Opens:  make([]float64, 0, n),
		Closes: make([]float64, 0, n),
		Highs:  make([]float64, 0, n),
		Lows:   make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		date, row := snap.Quotes.At(i)
		cs.Dates = append(cs.Dates, date)
		cs.Opens = append(cs.Opens, toFloat(row.Open))
		cs.Closes = append(cs.Closes, toFloat(row.Close))
		cs.Highs = append(cs.Highs, toFloat(row.High))
		cs.Lows = append(cs.Lows, toFloat(row.Low))
	}
	return cs, true
}

func (s *quoteService) ExportRows(sessionID string) ([][]string, models.QuoteRequest, bool) {
	sess := s.sessions.Session(sessionID)
	snap := sess.Snapshot()
	if !sess.Populated() {
		return nil, snap.Request, false
	}

	rows := make([][]string, 0, snap.Quotes.Len()+1)
	rows = append(rows, ExportHeader)
	for i := 0; i < snap.Quotes.Len(); i++ {
		date, row := snap.Quotes.At(i)
		rows = append(rows, append([]string{date}, row.Fields()...))
	}
	return rows, snap.Request, true
}

func (s *quoteService) Snapshot(sessionID string) models.Snapshot {
	return s.sessions.Session(sessionID).Snapshot()
}

// toFloat parses a decimal price string, substituting 0 for empty or
// unparseable values so chart arrays stay aligned.
func toFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
