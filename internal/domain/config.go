package domain

import (
	"fmt"
	"time"
)

// Config is the validator configuration read from .aeoscan.yaml, with
// environment fallbacks for the API keys.
type Config struct {
	PageSpeedAPIKey    string          `yaml:"pagespeed_api_key"`
	OpenPageRankAPIKey string          `yaml:"openpagerank_api_key"`
	Timeouts           TimeoutConfig   `yaml:"timeouts"`
	CacheTTLMinutes    int             `yaml:"cache_ttl_minutes"`
	Authority          AuthorityConfig `yaml:"authority"`
	Business           BusinessContext `yaml:"business"`
	Log                LogConfig       `yaml:"log"`
}

// TimeoutConfig bounds each external call. The overall timeout bounds the
// whole aggregation so one validation can never hang indefinitely.
type TimeoutConfig struct {
	PageSpeedSeconds int `yaml:"pagespeed_seconds"`
	CrawlerSeconds   int `yaml:"crawler_seconds"`
	AuthoritySeconds int `yaml:"authority_seconds"`
	OverallSeconds   int `yaml:"overall_seconds"`
}

// AuthorityConfig enables authority scoring and names the competitor domains
// the target is ranked against.
type AuthorityConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Competitors []string `yaml:"competitors"`
}

// LogConfig selects log verbosity and handler format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no .aeoscan.yaml exists.
func DefaultConfig() Config {
	return Config{
		Timeouts: TimeoutConfig{
			PageSpeedSeconds: 30,
			CrawlerSeconds:   15,
			AuthoritySeconds: 10,
			OverallSeconds:   60,
		},
		CacheTTLMinutes: 15,
		Log:             LogConfig{Level: "info", Format: "console"},
	}
}

// Validate rejects configurations that would break the aggregation contract.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"timeouts.pagespeed_seconds": c.Timeouts.PageSpeedSeconds,
		"timeouts.crawler_seconds":   c.Timeouts.CrawlerSeconds,
		"timeouts.authority_seconds": c.Timeouts.AuthoritySeconds,
		"timeouts.overall_seconds":   c.Timeouts.OverallSeconds,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("cache_ttl_minutes must not be negative, got %d", c.CacheTTLMinutes)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// PageSpeedTimeout returns the configured PSI timeout as a duration.
func (c Config) PageSpeedTimeout() time.Duration {
	return time.Duration(c.Timeouts.PageSpeedSeconds) * time.Second
}

// CrawlerTimeout returns the configured crawl timeout as a duration.
func (c Config) CrawlerTimeout() time.Duration {
	return time.Duration(c.Timeouts.CrawlerSeconds) * time.Second
}

// AuthorityTimeout returns the configured authority lookup timeout.
func (c Config) AuthorityTimeout() time.Duration {
	return time.Duration(c.Timeouts.AuthoritySeconds) * time.Second
}

// OverallTimeout returns the aggregator-level deadline.
func (c Config) OverallTimeout() time.Duration {
	return time.Duration(c.Timeouts.OverallSeconds) * time.Second
}

// CacheTTL returns the adapter response cache TTL.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
