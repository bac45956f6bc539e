package domain

import (
	"context"
	"time"
)

// PSIReport holds the Lighthouse category scores for one strategy, already
// scaled to 0-100.
type PSIReport struct {
	Strategy      string `json:"strategy"`
	Performance   int    `json:"performance"`
	SEO           int    `json:"seo"`
	Accessibility int    `json:"accessibility"`
	BestPractices int    `json:"bestPractices"`
}

// PageSpeedRunner runs PageSpeed Insights for both strategies concurrently.
// Each strategy resolves independently; one failing never fails the other.
type PageSpeedRunner interface {
	RunBoth(ctx context.Context, url string) (mobile, desktop Result[PSIReport])
}

// AuthorityRank is a domain-reputation lookup result.
type AuthorityRank struct {
	Domain   string  `json:"domain"`
	Rank0to1 float64 `json:"rank0to1"`
	Rank100  int     `json:"rank100"`
}

// AuthorityProvider wraps a backlink-ranking provider.
type AuthorityProvider interface {
	Lookup(ctx context.Context, domain string) Result[AuthorityRank]
	LookupMany(ctx context.Context, domains []string) Result[[]AuthorityRank]
}

// PageFetcher fetches and parses one page. A single snapshot feeds the
// schema, seo and aeo scorers.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) Result[PageSnapshot]
}

// ConfigLoader reads validator configuration from disk.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// HistoryStore persists per-URL score history.
type HistoryStore interface {
	Save(entry ScoreEntry) error
	Load(url string) ([]ScoreEntry, error)
}

// CacheStore is a TTL read-through cache keyed by normalized URL. Adapters
// use it to memoize responses; it is safe for concurrent use.
type CacheStore interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}
