package mcp

import (
	"io"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/aeoscan/aeoscan/internal/adapters/outbound/cache"
	"github.com/aeoscan/aeoscan/internal/adapters/outbound/config"
	"github.com/aeoscan/aeoscan/internal/application"
	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/logging"
)

// toolDeps carries the server-scoped state shared by every tool invocation:
// one page cache so repeat validations within the TTL reuse crawl snapshots,
// and one job registry tracking validation runs across the session.
type toolDeps struct {
	cfg    domain.Config
	logger *slog.Logger
	store  *cache.Store
	jobs   *application.JobRegistry
}

// NewAEOScanMCPServer creates an MCP server with the aeoscan tools
// registered. configDir is the directory holding .aeoscan.yaml.
func NewAEOScanMCPServer(configDir string) (*server.MCPServer, error) {
	cfg, err := config.New().Load(configDir)
	if err != nil {
		return nil, err
	}

	// stdio transport owns stdout; logs would corrupt the protocol stream.
	logger, err := logging.New(io.Discard, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		"aeoscan",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, toolDeps{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "mcp"),
		store:  cache.New(),
		jobs:   application.NewJobRegistry(time.Hour),
	})
	return s, nil
}

// reportCategories summarizes the scored categories for the listing tool.
func reportCategories(report *domain.UnifiedReport) []map[string]any {
	var out []map[string]any
	for _, cat := range domain.CategoryOrder {
		result, ok := report.Categories[cat]
		if !ok {
			continue
		}
		out = append(out, map[string]any{
			"category": cat,
			"score":    result.Score,
			"status":   result.Status,
			"badge":    result.Badge,
		})
	}
	return out
}
