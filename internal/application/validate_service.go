package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/domain/scoring"
)

// ValidateService orchestrates the validation pipeline:
// fan out to source adapters → score each category → weighted combine → report.
//
// The pipeline is failure-tolerant by construction: every adapter outcome is
// a Result value and every scorer handles the failure arm, so one bad source
// never prevents the other categories from scoring. Only a programming error
// inside the aggregation itself produces the degraded error report, and even
// that is returned as a well-formed report rather than an error.
type ValidateService struct {
	pagespeed domain.PageSpeedRunner
	fetcher   domain.PageFetcher
	authority domain.AuthorityProvider
	history   domain.HistoryStore
	logger    *slog.Logger
	timeout   time.Duration
}

// NewValidateService wires the aggregator with its source adapters. The
// authority provider and history store may be nil when those features are
// disabled.
func NewValidateService(
	pagespeed domain.PageSpeedRunner,
	fetcher domain.PageFetcher,
	authority domain.AuthorityProvider,
	history domain.HistoryStore,
	logger *slog.Logger,
	timeout time.Duration,
) *ValidateService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ValidateService{
		pagespeed: pagespeed,
		fetcher:   fetcher,
		authority: authority,
		history:   history,
		logger:    logger,
		timeout:   timeout,
	}
}

// Validate runs one validation request end to end. Request-level validation
// failures return an error before aggregation begins; everything after that
// point yields a well-formed report.
func (s *ValidateService) Validate(ctx context.Context, req domain.ValidationRequest) (report *domain.UnifiedReport, err error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("validation panicked", "url", req.URL, "panic", r)
			report = domain.NewErrorReport(req.URL, fmt.Sprintf("internal error: %v", r), req.AuthorityEnabled)
			err = nil
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	s.logger.Info("validation started",
		"url", req.URL,
		"authority", req.AuthorityEnabled,
		"client", req.ClientID,
	)

	sources := s.fanOut(ctx, req)

	categories := map[domain.Category]domain.CategoryResult{
		domain.CategoryPerformance:   scoring.ScorePerformance(sources.mobile, sources.desktop),
		domain.CategorySEO:           scoring.ScoreSEO(sources.page),
		domain.CategorySchema:        scoring.ScoreSchema(sources.page),
		domain.CategoryAccessibility: scoring.ScoreAccessibility(sources.mobile, sources.desktop),
		domain.CategoryAEO:           scoring.ScoreAEO(sources.page, req.Business),
	}
	if req.AuthorityEnabled {
		categories[domain.CategoryAuthority] = scoring.ScoreAuthority(sources.target, sources.competitors)
	}

	overall := domain.ComputeOverallScore(categories, req.AuthorityEnabled)
	report = BuildReport(req, overall, categories, sources.page)

	s.saveHistory(req.URL, report)
	s.logger.Info("validation finished",
		"url", req.URL,
		"overall", report.OverallScore,
		"elapsed", time.Since(start),
	)
	return report, nil
}

// sourceResults collects the adapter outcomes for one request.
type sourceResults struct {
	mobile      domain.Result[domain.PSIReport]
	desktop     domain.Result[domain.PSIReport]
	page        domain.Result[domain.PageSnapshot]
	target      domain.Result[domain.AuthorityRank]
	competitors domain.Result[[]domain.AuthorityRank]
}

// fanOut invokes every enabled source adapter concurrently. Adapters enforce
// their own timeouts and report failures as values; goroutines always return
// nil so one source can never cancel the others. A panic inside an adapter is
// recovered on its own goroutine — errgroup does not carry panics back to
// Wait — and degrades that source to a failure like any other. Caller
// cancellation still propagates through ctx into each adapter's network call.
func (s *ValidateService) fanOut(ctx context.Context, req domain.ValidationRequest) sourceResults {
	results := sourceResults{
		mobile:      domain.Fail[domain.PSIReport]("pagespeed adapter not configured"),
		desktop:     domain.Fail[domain.PSIReport]("pagespeed adapter not configured"),
		page:        domain.Fail[domain.PageSnapshot]("crawler adapter not configured"),
		target:      domain.Fail[domain.AuthorityRank]("authority adapter not configured"),
		competitors: domain.Fail[[]domain.AuthorityRank]("authority adapter not configured"),
	}

	g, gctx := errgroup.WithContext(ctx)

	if s.pagespeed != nil {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("source panicked", "source", "pagespeed", "url", req.URL, "panic", r)
					reason := fmt.Sprintf("adapter panic: %v", r)
					results.mobile = domain.Fail[domain.PSIReport](reason)
					results.desktop = domain.Fail[domain.PSIReport](reason)
				}
			}()
			results.mobile, results.desktop = s.pagespeed.RunBoth(gctx, req.URL)
			return nil
		})
	}
	if s.fetcher != nil {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("source panicked", "source", "crawler", "url", req.URL, "panic", r)
					results.page = domain.Fail[domain.PageSnapshot](fmt.Sprintf("adapter panic: %v", r))
				}
			}()
			results.page = s.fetcher.Fetch(gctx, req.URL)
			return nil
		})
	}
	if req.AuthorityEnabled && s.authority != nil {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("source panicked", "source", "authority", "url", req.URL, "panic", r)
					results.target = domain.Fail[domain.AuthorityRank](fmt.Sprintf("adapter panic: %v", r))
				}
			}()
			results.target = s.authority.Lookup(gctx, req.Domain())
			return nil
		})
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("source panicked", "source", "authority", "url", req.URL, "panic", r)
					results.competitors = domain.Fail[[]domain.AuthorityRank](fmt.Sprintf("adapter panic: %v", r))
				}
			}()
			results.competitors = s.authority.LookupMany(gctx, req.Competitors)
			return nil
		})
	}

	_ = g.Wait() // goroutines never return errors; failures are values

	for cat, reason := range map[string]string{
		"pagespeed": results.mobile.Reason(),
		"crawler":   results.page.Reason(),
	} {
		if reason != "" {
			s.logger.Warn("source failed", "source", cat, "url", req.URL, "reason", reason)
		}
	}
	return results
}

func (s *ValidateService) saveHistory(url string, report *domain.UnifiedReport) {
	if s.history == nil {
		return
	}
	entry := domain.ScoreEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		URL:       domain.NormalizeURL(url),
		Overall:   report.OverallScore,
		Status:    domain.StatusFor(report.OverallScore),
	}
	if err := s.history.Save(entry); err != nil {
		s.logger.Warn("history save failed", "url", url, "error", err)
	}
}
