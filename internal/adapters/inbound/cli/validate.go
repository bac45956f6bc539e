package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aeoscan/aeoscan/internal/adapters/outbound/cache"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/config"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/crawler"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/history"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/openpagerank"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/pagespeed"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/tui"
	"github.com/aeoscan/aeoscan/internal/application"
	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/logging"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput   bool
		ciMode       bool
		minScore     int
		authority    bool
		competitors  []string
		businessName string
		location     string
		industry     string
		brandTerms   []string
		showHistory  bool
		configDir    string
	)

	cmd := &cobra.Command{
		Use:   "validate <url>",
		Short: "Validate a website's answer-engine optimization",
		Long:  "Fan out to PageSpeed Insights, a page crawl, and (optionally) OpenPageRank, score every category, and combine them into one report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
			})
			if err != nil {
				return err
			}
			logger = logging.WithComponent(logger, "cli")

			hist, histErr := history.New()
			if histErr != nil {
				logger.Warn("history disabled", "error", histErr)
				hist = nil
			}

			if showHistory {
				if hist == nil {
					return fmt.Errorf("history unavailable: %w", histErr)
				}
				entries, err := hist.Load(target)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			authorityEnabled := authority || cfg.Authority.Enabled
			if len(competitors) == 0 {
				competitors = cfg.Authority.Competitors
			}

			store := cache.New()
			var provider domain.AuthorityProvider
			if authorityEnabled {
				provider = openpagerank.New(cfg.OpenPageRankAPIKey, cfg.AuthorityTimeout())
			}

			var histStore domain.HistoryStore
			if hist != nil {
				histStore = hist
			}
			svc := application.NewValidateService(
				pagespeed.New(cfg.PageSpeedAPIKey, cfg.PageSpeedTimeout()),
				crawler.New(cfg.CrawlerTimeout(), crawler.WithCache(store, cfg.CacheTTL())),
				provider,
				histStore,
				logger,
				cfg.OverallTimeout(),
			)

			business := cfg.Business
			if businessName != "" {
				business.Name = businessName
			}
			if location != "" {
				business.Location = location
			}
			if industry != "" {
				business.Industry = industry
			}
			if len(brandTerms) > 0 {
				business.BrandTerms = brandTerms
			}

			report, err := svc.Validate(cmd.Context(), domain.ValidationRequest{
				URL:              target,
				Business:         business,
				AuthorityEnabled: authorityEnabled,
				Competitors:      competitors,
				ClientID:         "cli",
			})
			if err != nil {
				return fmt.Errorf("invalid request: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && report.OverallScore < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.OverallScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&authority, "authority", false, "Enable authority scoring")
	cmd.Flags().StringSliceVar(&competitors, "competitors", nil, "Competitor domains for authority comparison")
	cmd.Flags().StringVar(&businessName, "business-name", "", "Business name for relevance scoring")
	cmd.Flags().StringVar(&location, "location", "", "Business location")
	cmd.Flags().StringVar(&industry, "industry", "", "Business industry")
	cmd.Flags().StringSliceVar(&brandTerms, "brand-terms", nil, "Extra brand terms to track in page text")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show score history for the URL")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .aeoscan.yaml")

	return cmd
}
