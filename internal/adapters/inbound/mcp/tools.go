package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aeoscan/aeoscan/internal/adapters/outbound/crawler"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/history"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/openpagerank"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/pagespeed"
	"github.com/aeoscan/aeoscan/internal/application"
	"github.com/aeoscan/aeoscan/internal/domain"
)

// registerTools registers all aeoscan MCP tools on the given server.
func registerTools(s *server.MCPServer, deps toolDeps) {
	// 1. aeoscan_validate
	s.AddTool(
		mcplib.NewTool("aeoscan_validate",
			mcplib.WithDescription("Validate a website's answer-engine optimization and return the full unified report as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to validate"),
			),
			mcplib.WithString("business_name",
				mcplib.Description("Business name for relevance scoring (defaults to the configured business)"),
			),
			mcplib.WithBoolean("authority",
				mcplib.Description("Enable authority scoring against the configured competitors"),
			),
			mcplib.WithString("competitors",
				mcplib.Description("Comma-separated competitor domains for authority comparison"),
			),
		),
		handleValidate(deps),
	)

	// 2. aeoscan_categories
	s.AddTool(
		mcplib.NewTool("aeoscan_categories",
			mcplib.WithDescription("Validate a website and return only the per-category scores"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to validate"),
			),
		),
		handleCategories(deps),
	)

	// 3. aeoscan_history
	s.AddTool(
		mcplib.NewTool("aeoscan_history",
			mcplib.WithDescription("Return past validation scores for a URL"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL to look up"),
			),
		),
		handleHistory(),
	)

	// 4. aeoscan_job
	s.AddTool(
		mcplib.NewTool("aeoscan_job",
			mcplib.WithDescription("Return the status of a validation job started by aeoscan_validate"),
			mcplib.WithString("id",
				mcplib.Required(),
				mcplib.Description("Job ID returned by aeoscan_validate"),
			),
		),
		handleJob(deps),
	)

	// 5. aeoscan_jobs
	s.AddTool(
		mcplib.NewTool("aeoscan_jobs",
			mcplib.WithDescription("List the validation jobs tracked in this session, newest first"),
		),
		handleJobs(deps),
	)
}

// newService wires the standard set of outbound adapters into a validator.
// The page cache comes from deps so snapshots survive across invocations.
func newService(deps toolDeps, authorityEnabled bool) *application.ValidateService {
	cfg := deps.cfg
	var provider domain.AuthorityProvider
	if authorityEnabled {
		provider = openpagerank.New(cfg.OpenPageRankAPIKey, cfg.AuthorityTimeout())
	}
	var hist domain.HistoryStore
	if h, err := history.New(); err == nil {
		hist = h
	}
	return application.NewValidateService(
		pagespeed.New(cfg.PageSpeedAPIKey, cfg.PageSpeedTimeout()),
		crawler.New(cfg.CrawlerTimeout(), crawler.WithCache(deps.store, cfg.CacheTTL())),
		provider,
		hist,
		deps.logger,
		cfg.OverallTimeout(),
	)
}

// validateResponse wraps the report with the registry ID of the run so the
// job can be looked up later via aeoscan_job.
type validateResponse struct {
	JobID  string                `json:"jobId"`
	Report *domain.UnifiedReport `json:"report"`
}

func handleValidate(deps toolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		business := deps.cfg.Business
		if name, _ := args["business_name"].(string); name != "" {
			business.Name = name
		}
		authorityEnabled := deps.cfg.Authority.Enabled
		if enabled, ok := args["authority"].(bool); ok {
			authorityEnabled = enabled
		}
		competitors := deps.cfg.Authority.Competitors
		if raw, _ := args["competitors"].(string); raw != "" {
			competitors = splitList(raw)
		}

		deps.jobs.SweepExpired()
		job := deps.jobs.Register(url)

		svc := newService(deps, authorityEnabled)
		report, err := svc.Validate(ctx, domain.ValidationRequest{
			URL:              url,
			Business:         business,
			AuthorityEnabled: authorityEnabled,
			Competitors:      competitors,
			ClientID:         "mcp",
		})
		if err != nil {
			_ = deps.jobs.MarkFailed(job.ID, err.Error())
			return errorResult(fmt.Sprintf("invalid request: %v", err)), nil
		}
		_ = deps.jobs.MarkComplete(job.ID)
		return jsonResult(validateResponse{JobID: job.ID, Report: report})
	}
}

func handleCategories(deps toolDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService(deps, deps.cfg.Authority.Enabled)
		report, err := svc.Validate(ctx, domain.ValidationRequest{
			URL:              url,
			Business:         deps.cfg.Business,
			AuthorityEnabled: deps.cfg.Authority.Enabled,
			Competitors:      deps.cfg.Authority.Competitors,
			ClientID:         "mcp",
		})
		if err != nil {
			return errorResult(fmt.Sprintf("invalid request: %v", err)), nil
		}
		return jsonResult(reportCategories(report))
	}
}

func handleHistory() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		hist, err := history.New()
		if err != nil {
			return errorResult(fmt.Sprintf("history unavailable: %v", err)), nil
		}
		entries, err := hist.Load(url)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

func handleJob(deps toolDeps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		job, err := deps.jobs.Get(id)
		if err != nil {
			return errorResult(fmt.Sprintf("looking up job: %v", err)), nil
		}
		return jsonResult(job)
	}
}

func handleJobs(deps toolDeps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		deps.jobs.SweepExpired()
		return jsonResult(deps.jobs.List())
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
