package cli

import (
	mcpadapter "github.com/aeoscan/aeoscan/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the aeoscan MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start aeoscan MCP server (stdio)",
		Long:  "Start the aeoscan MCP server using stdio transport. This allows AI assistants to validate websites and read score history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configDir == "" {
				configDir = "."
			}
			s, err := mcpadapter.NewAEOScanMCPServer(configDir)
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", "", "Directory containing .aeoscan.yaml (defaults to current working directory)")

	return cmd
}
