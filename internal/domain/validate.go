package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Request-level validation errors. They are surfaced to the caller before
// aggregation begins and never appear inside a UnifiedReport.
var (
	ErrInvalidURL        = errors.New("invalid url")
	ErrMissingBusiness   = errors.New("missing business context")
	ErrInvalidCompetitor = errors.New("invalid competitor domain")
)

// BusinessContext carries the caller-supplied business profile that the seo
// and aeo scorers use to judge relevance.
type BusinessContext struct {
	Name       string   `json:"name" yaml:"name"`
	Location   string   `json:"location,omitempty" yaml:"location"`
	Industry   string   `json:"industry,omitempty" yaml:"industry"`
	BrandTerms []string `json:"brandTerms,omitempty" yaml:"brand_terms"`
}

// ValidationRequest is one validation job as submitted by the caller.
type ValidationRequest struct {
	URL              string
	Business         BusinessContext
	AuthorityEnabled bool
	Competitors      []string
	// ClientID identifies the inbound surface ("cli", "mcp") for log
	// attribution.
	ClientID string
}

// Validate rejects malformed requests before any adapter is called.
func (r ValidationRequest) Validate() error {
	parsed, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	if strings.TrimSpace(r.Business.Name) == "" {
		return fmt.Errorf("%w: business name is required", ErrMissingBusiness)
	}
	if r.AuthorityEnabled {
		for _, c := range r.Competitors {
			if strings.TrimSpace(c) == "" || strings.ContainsAny(c, " /") {
				return fmt.Errorf("%w: %q", ErrInvalidCompetitor, c)
			}
		}
	}
	return nil
}

// Domain returns the host part of the request URL, without port.
func (r ValidationRequest) Domain() string {
	parsed, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// NormalizeURL canonicalizes a URL for use as a cache and history key:
// lowercased scheme/host, default scheme, no fragment, no trailing slash.
func NormalizeURL(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return strings.TrimRight(strings.ToLower(raw), "/")
	}
	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""
	parsed.Path = strings.TrimRight(parsed.Path, "/")
	return parsed.String()
}
