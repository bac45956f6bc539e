// Package openpagerank wraps the OpenPageRank API behind the
// domain.AuthorityProvider port.
package openpagerank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/aeoscan/aeoscan/internal/domain"
)

const defaultBaseURL = "https://openpagerank.com/api/v1.0/getPageRank"

// Client is a single-attempt OpenPageRank client with a per-call timeout.
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

// New creates an OpenPageRank client.
func New(apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
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

// Lookup fetches the authority rank for one domain.
func (c *Client) Lookup(ctx context.Context, target string) domain.Result[domain.AuthorityRank] {
	many := c.LookupMany(ctx, []string{target})
	if !many.OK() {
		return domain.Fail[domain.AuthorityRank](many.Reason())
	}
	ranks := many.Data()
	if len(ranks) == 0 {
		return domain.Fail[domain.AuthorityRank]("no rank returned")
	}
	return domain.Ok(ranks[0])
}

// oprResponse is the provider's payload shape.
type oprResponse struct {
	Response []struct {
		StatusCode      int     `json:"status_code"`
		Domain          string  `json:"domain"`
		PageRankDecimal float64 `json:"page_rank_decimal"`
	} `json:"response"`
}

// LookupMany fetches authority ranks for up to one batch of domains.
func (c *Client) LookupMany(ctx context.Context, targets []string) domain.Result[[]domain.AuthorityRank] {
	if len(targets) == 0 {
		return domain.Ok([]domain.AuthorityRank{})
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{}
	for _, t := range targets {
		query.Add("domains[]", t)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return domain.Fail[[]domain.AuthorityRank](fmt.Sprintf("bad request: %v", err))
	}
	req.Header.Set("API-OPR", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Fail[[]domain.AuthorityRank](failureReason(ctx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Fail[[]domain.AuthorityRank](fmt.Sprintf("http %d", resp.StatusCode))
	}

	var payload oprResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Fail[[]domain.AuthorityRank](fmt.Sprintf("decode: %v", err))
	}

	ranks := make([]domain.AuthorityRank, 0, len(payload.Response))
	for _, entry := range payload.Response {
		if entry.StatusCode != http.StatusOK {
			continue // unknown domains come back with an error status per entry
		}
		ranks = append(ranks, domain.AuthorityRank{
			Domain:   entry.Domain,
			Rank0to1: entry.PageRankDecimal / 10,
			Rank100:  domain.ClampScore(int(math.Round(entry.PageRankDecimal * 10))),
		})
	}
	return domain.Ok(ranks)
}

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
