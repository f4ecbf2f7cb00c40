package sohu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"quotedash/internal/domain/models"
	"quotedash/internal/quote"
)

var testReq = models.QuoteRequest{
	Code:     "cn_600919",
	Start:    "20250101",
	End:      "20250105",
	Interval: models.IntervalDaily,
}

func TestFetchRaw_WireFormat(t *testing.T) {
	var gotQuery url.Values
	var gotHeader http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Clone()
		_, _ = w.Write([]byte(`historySearchHandler([{"status":"0","hq":[]}])`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL, 5*time.Second)
	raw, err := c.FetchRaw(context.Background(), testReq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(raw, "historySearchHandler(") {
		t.Fatalf("raw body not passed through: %q", raw)
	}

	// Fixed parameters the provider requires for wire compatibility.
	fixed := map[string]string{
		"code":     "cn_600919",
		"start":    "20250101",
		"end":      "20250105",
		"stat":     "1",
		"order":    "D",
		"period":   "d",
		"callback": "historySearchHandler",
		"rt":       "jsonp",
	}
	for k, want := range fixed {
		if got := gotQuery.Get(k); got != want {
			t.Fatalf("param %s=%q, want %q", k, got, want)
		}
	}

	// Cache-defeating tokens: a value under "r" and a parameter whose
	// name is itself a random decimal fraction.
	if gotQuery.Get("r") == "" {
		t.Fatalf("missing cache-buster r")
	}
	foundFraction := false
	for k := range gotQuery {
		if strings.HasPrefix(k, "0.") {
			foundFraction = true
		}
	}
	if !foundFraction {
		t.Fatalf("missing random-fraction cache-buster param: %v", gotQuery)
	}

	// Browser-like headers, referer scoped to the ticker's page.
	if ref := gotHeader.Get("Referer"); !strings.HasSuffix(ref, "/cn/600919/lshq.shtml") {
		t.Fatalf("referer=%q", ref)
	}
	if ua := gotHeader.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
		t.Fatalf("user-agent=%q", ua)
	}
}

func TestFetchRaw_PeriodCodes(t *testing.T) {
	cases := []struct {
		interval models.Interval
		want     string
	}{
		{models.IntervalDaily, "d"},
		{models.IntervalWeekly, "w"},
		{models.IntervalMonthly, "m"},
	}

	var period string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		period = r.URL.Query().Get("period")
		_, _ = w.Write([]byte(`historySearchHandler([{"status":"0","hq":[]}])`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, srv.URL, 5*time.Second)
	for _, tc := range cases {
		req := testReq
		req.Interval = tc.interval
		if _, err := c.FetchRaw(context.Background(), req); err != nil {
			t.Fatalf("%s: %v", tc.interval, err)
		}
		if period != tc.want {
			t.Fatalf("%s: period=%q, want %q", tc.interval, period, tc.want)
		}
	}
}

func TestFetchRaw_Failures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewHTTPClient(srv.URL, srv.URL, 5*time.Second)
		_, err := c.FetchRaw(context.Background(), testReq)
		var netErr *quote.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("want NetworkError, got %T: %v", err, err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		c := NewHTTPClient(srv.URL, srv.URL, 20*time.Millisecond)
		_, err := c.FetchRaw(context.Background(), testReq)
		var netErr *quote.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("want NetworkError on timeout, got %T: %v", err, err)
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewHTTPClient(srv.URL, srv.URL, 5*time.Second)
		_, err := c.FetchRaw(ctx, testReq)
		var netErr *quote.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("want NetworkError on cancellation, got %T: %v", err, err)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		c := NewHTTPClient("http://127.0.0.1:1/hisHq", "http://127.0.0.1:1", 200*time.Millisecond)
		_, err := c.FetchRaw(context.Background(), testReq)
		var netErr *quote.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("want NetworkError, got %T: %v", err, err)
		}
	})
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/hisHq", srv.URL, time.Second)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping against live server: %v", err)
	}
	srv.Close()
	if err := c.Ping(context.Background()); err == nil {
		t.Fatalf("ping against closed server should fail")
	}
}

func TestRefererForMarketlessCode(t *testing.T) {
	var ref string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ref = r.Header.Get("Referer")
		_, _ = w.Write([]byte(`historySearchHandler([{"status":"0","hq":[]}])`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "https://q.stock.sohu.com", 5*time.Second)
	req := testReq
	req.Code = "600919" // no market prefix
	if _, err := c.FetchRaw(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref != "https://q.stock.sohu.com/cn/600919/lshq.shtml" {
		t.Fatalf("referer=%q", ref)
	}
}
