// Package crawler fetches and parses one page into a domain.PageSnapshot.
// A single crawl feeds the schema, seo, and aeo scorers.
package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/aeoscan/aeoscan/internal/domain"
)

const (
	defaultUserAgent = "aeoscan/1.0 (+https://github.com/aeoscan/aeoscan)"
	maxBodyBytes     = 5 << 20 // 5 MiB
)

// Crawler implements domain.PageFetcher with a per-call timeout and an
// optional read-through cache keyed by normalized URL.
type Crawler struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	cache      domain.CacheStore
	cacheTTL   time.Duration
}

// Option customizes a Crawler.
type Option func(*Crawler)

// WithCache enables response caching with the given TTL.
func WithCache(store domain.CacheStore, ttl time.Duration) Option {
	return func(c *Crawler) {
		c.cache = store
		c.cacheTTL = ttl
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Crawler) { c.httpClient = hc }
}

// WithUserAgent overrides the crawl user agent.
func WithUserAgent(ua string) Option {
	return func(c *Crawler) { c.userAgent = ua }
}

// New creates a Crawler with the given per-call timeout.
func New(timeout time.Duration, opts ...Option) *Crawler {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Crawler{
		httpClient: &http.Client{},
		timeout:    timeout,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads and parses the target page. Failures are values; the
// crawler never panics past its boundary.
func (c *Crawler) Fetch(ctx context.Context, target string) domain.Result[domain.PageSnapshot] {
	key := domain.NormalizeURL(target)
	if c.cache != nil {
		if v, ok := c.cache.Get(key); ok {
			if snapshot, ok := v.(domain.PageSnapshot); ok {
				return domain.Ok(snapshot)
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.Fail[domain.PageSnapshot](fmt.Sprintf("bad request: %v", err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Fail[domain.PageSnapshot](failureReason(ctx, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Fail[domain.PageSnapshot](fmt.Sprintf("http %d", resp.StatusCode))
	}

	root, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Fail[domain.PageSnapshot](fmt.Sprintf("parse: %v", err))
	}

	snapshot := Parse(root, target)
	if c.cache != nil {
		c.cache.Set(key, snapshot, c.cacheTTL)
	}
	return domain.Ok(snapshot)
}

// Parse walks a parsed document and extracts the snapshot fields. Exported
// so tests can parse static HTML without a server.
func Parse(root *html.Node, target string) domain.PageSnapshot {
	base, _ := url.Parse(target)
	snapshot := domain.PageSnapshot{
		URL:       target,
		Headings:  make(map[string][]string),
		OpenGraph: make(map[string]string),
	}
	var text strings.Builder
	walk(root, base, &snapshot, &text)
	snapshot.Text = strings.Join(strings.Fields(text.String()), " ")
	snapshot.WordCount = len(strings.Fields(snapshot.Text))
	return snapshot
}

func walk(n *html.Node, base *url.URL, snapshot *domain.PageSnapshot, text *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script":
			if attr(n, "type") == "application/ld+json" {
				collectJSONLD(nodeText(n), snapshot)
			}
			return // script bodies are never visible text
		case "style", "noscript":
			return
		case "title":
			if snapshot.Title == "" {
				snapshot.Title = strings.TrimSpace(nodeText(n))
			}
			return
		case "meta":
			collectMeta(n, snapshot)
		case "link":
			if strings.EqualFold(attr(n, "rel"), "canonical") && snapshot.Canonical == "" {
				snapshot.Canonical = attr(n, "href")
			}
		case "h1", "h2", "h3", "h4", "h5", "h6":
			heading := strings.TrimSpace(nodeText(n))
			if heading != "" {
				snapshot.Headings[n.Data] = append(snapshot.Headings[n.Data], heading)
			}
		case "a":
			countLink(attr(n, "href"), base, snapshot)
		}
	}
	if n.Type == html.TextNode {
		text.WriteString(n.Data)
		text.WriteString(" ")
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, base, snapshot, text)
	}
}

func collectMeta(n *html.Node, snapshot *domain.PageSnapshot) {
	content := attr(n, "content")
	if name := attr(n, "name"); strings.EqualFold(name, "description") && snapshot.MetaDescription == "" {
		snapshot.MetaDescription = strings.TrimSpace(content)
	}
	if prop := attr(n, "property"); strings.HasPrefix(strings.ToLower(prop), "og:") {
		snapshot.OpenGraph[strings.ToLower(prop)] = content
	}
}

// collectJSONLD tolerates single objects, arrays, and malformed blocks;
// a block that fails to decode is skipped, not fatal.
func collectJSONLD(raw string, snapshot *domain.PageSnapshot) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return
	}
	switch v := decoded.(type) {
	case map[string]any:
		snapshot.JSONLD = append(snapshot.JSONLD, v)
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				snapshot.JSONLD = append(snapshot.JSONLD, m)
			}
		}
	}
}

func countLink(href string, base *url.URL, snapshot *domain.PageSnapshot) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return
	}
	resolved, err := url.Parse(href)
	if err != nil {
		return
	}
	if base != nil {
		resolved = base.ResolveReference(resolved)
	}
	if base != nil && strings.EqualFold(resolved.Hostname(), base.Hostname()) {
		snapshot.InternalLinks++
	} else {
		snapshot.ExternalLinks++
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return b.String()
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
