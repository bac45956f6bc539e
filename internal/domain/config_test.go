package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aeoscan/aeoscan/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.PageSpeedTimeout())
	assert.Equal(t, 15*time.Second, cfg.CrawlerTimeout())
	assert.Equal(t, 10*time.Second, cfg.AuthorityTimeout())
	assert.Equal(t, 60*time.Second, cfg.OverallTimeout())
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *domain.Config) {}, false},
		{"zero pagespeed timeout", func(c *domain.Config) { c.Timeouts.PageSpeedSeconds = 0 }, true},
		{"negative overall timeout", func(c *domain.Config) { c.Timeouts.OverallSeconds = -1 }, true},
		{"negative cache ttl", func(c *domain.Config) { c.CacheTTLMinutes = -1 }, true},
		{"zero cache ttl disables caching", func(c *domain.Config) { c.CacheTTLMinutes = 0 }, false},
		{"json log format", func(c *domain.Config) { c.Log.Format = "json" }, false},
		{"unknown log format", func(c *domain.Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
