// Package pagespeed wraps the PageSpeed Insights v5 API behind the
// domain.PageSpeedRunner port.
package pagespeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/aeoscan/aeoscan/internal/domain"
)

const defaultBaseURL = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Client is a single-attempt PSI client. Retry policy, if any, belongs to
// the caller; the client only enforces its per-call timeout.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	timeout    time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a PSI client with the given API key and per-call timeout.
func New(apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		timeout:    timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunBoth fetches mobile and desktop reports concurrently. Each strategy
// resolves independently; failures are values, never panics or errors.
func (c *Client) RunBoth(ctx context.Context, target string) (mobile, desktop domain.Result[domain.PSIReport]) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		mobile = c.run(ctx, target, "mobile")
	}()
	go func() {
		defer wg.Done()
		desktop = c.run(ctx, target, "desktop")
	}()
	wg.Wait()
	return mobile, desktop
}

// psiResponse is the subset of the v5 payload the scorers need.
type psiResponse struct {
	LighthouseResult struct {
		Categories struct {
			Performance   psiCategory `json:"performance"`
			SEO           psiCategory `json:"seo"`
			Accessibility psiCategory `json:"accessibility"`
			BestPractices psiCategory `json:"best-practices"`
		} `json:"categories"`
	} `json:"lighthouseResult"`
}

type psiCategory struct {
	Score float64 `json:"score"` // 0-1
}

func (c *Client) run(ctx context.Context, target, strategy string) domain.Result[domain.PSIReport] {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("url", target)
	query.Set("strategy", strategy)
	for _, cat := range []string{"performance", "seo", "accessibility", "best-practices"} {
		query.Add("category", cat)
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Fail[domain.PSIReport](fmt.Sprintf("bad request: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Fail[domain.PSIReport](failureReason(ctx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Fail[domain.PSIReport](fmt.Sprintf("http %d", resp.StatusCode))
	}

	var payload psiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Fail[domain.PSIReport](fmt.Sprintf("decode: %v", err))
	}

	cats := payload.LighthouseResult.Categories
	return domain.Ok(domain.PSIReport{
		Strategy:      strategy,
		Performance:   scaleScore(cats.Performance.Score),
		SEO:           scaleScore(cats.SEO.Score),
		Accessibility: scaleScore(cats.Accessibility.Score),
		BestPractices: scaleScore(cats.BestPractices.Score),
	})
}

func scaleScore(score float64) int {
	return domain.ClampScore(int(math.Round(score * 100)))
}

// failureReason maps transport errors to the shared failure tokens.
func failureReason(ctx context.Context, err error) string {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.ReasonTimeout
	case errors.Is(ctx.Err(), context.Canceled):
		return domain.ReasonCancelled
	default:
		return fmt.Sprintf("request failed: %v", err)
	}
}
