// Package sohu implements the outbound client for the Sohu historical
// quote endpoint (hisHq). The endpoint serves JSONP meant for a
// browser, so requests carry a browser-like header set and the
// cache-defeating tokens the quote page itself sends.
package sohu

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"quotedash/internal/domain/models"
	"quotedash/internal/quote"
)

// callbackName is the JSONP callback the provider wraps responses in.
// The decoder strips it by position, but the parameter must be sent.
const callbackName = "historySearchHandler"

// Client fetches the raw textual response for one history query.
// One network call per invocation, single best-effort attempt: no
// retry, no backoff. Cancellation and deadlines come from ctx.
type Client interface {
	FetchRaw(ctx context.Context, req models.QuoteRequest) (string, error)
}

// HTTPClient is the http.Client-backed Client implementation.
type HTTPClient struct {
	baseURL     string
	refererBase string
	client      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for baseURL (the hisHq endpoint) with
// the given bounded timeout. refererBase is the quote site root used
// to derive the per-ticker referer.
func NewHTTPClient(baseURL, refererBase string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:     baseURL,
		refererBase: refererBase,
		client:      &http.Client{Timeout: timeout},
	}
}

// FetchRaw issues the GET request for req and returns the raw JSONP
// body. Transport failures, timeouts and non-2xx responses surface as
// *quote.NetworkError.
func (c *HTTPClient) FetchRaw(ctx context.Context, req models.QuoteRequest) (string, error) {
	q := url.Values{}
	q.Set("code", req.Code)
	q.Set("start", req.Start)
	q.Set("end", req.End)
	q.Set("stat", "1")
	q.Set("order", "D")
	q.Set("period", req.Interval.Code())
	q.Set("callback", callbackName)
	q.Set("rt", "jsonp")
	// Two cache-defeating tokens: one under "r", one whose name is
	// itself a random decimal fraction with an empty value. The
	// provider checks presence only, never the values.
	q.Set("r", uuid.NewString())
	q.Set(fmt.Sprintf("0.%d", rand.Int63()), "")

	u := fmt.Sprintf("%s?%s", c.baseURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &quote.NetworkError{URL: c.baseURL, Err: err}
	}
	c.setBrowserHeaders(httpReq, req.Code)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return "", &quote.NetworkError{URL: c.baseURL, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &quote.NetworkError{URL: c.baseURL, Err: fmt.Errorf("unexpected http status %d", res.StatusCode)}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &quote.NetworkError{URL: c.baseURL, Err: err}
	}
	return string(body), nil
}

// setBrowserHeaders makes the request look like the quote page's own
// script tag. The provider does not validate exact values but rejects
// obviously non-browser traffic.
func (c *HTTPClient) setBrowserHeaders(r *http.Request, code string) {
	// cn_600919 -> referer .../cn/600919/lshq.shtml
	bare := code
	market := "cn"
	if i := strings.Index(code, "_"); i > 0 {
		market = code[:i]
		bare = code[i+1:]
	}

	r.Header.Set("accept", "*/*")
	r.Header.Set("accept-language", "zh-CN,zh;q=0.9")
	r.Header.Set("cache-control", "no-cache")
	r.Header.Set("pragma", "no-cache")
	r.Header.Set("referer", fmt.Sprintf("%s/%s/%s/lshq.shtml", c.refererBase, market, bare))
	r.Header.Set("sec-fetch-dest", "script")
	r.Header.Set("sec-fetch-mode", "no-cors")
	r.Header.Set("sec-fetch-site", "same-origin")
	r.Header.Set("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36")
}

// Ping checks provider reachability for the readiness probe. It only
// cares whether the host answers, not what it answers.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.refererBase, nil)
	if err != nil {
		return err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	return nil
}
