package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"admin-setor/core/config"
	"admin-setor/core/logger"
	"admin-setor/mcp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Starts the Model Context Protocol server that exposes the REST API as
tools for AI agents. The transport is selected by MCP_TRANSPORT: "http"
(streamable HTTP, default) or "stdio".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := mcp.New(cfg.MCP, logg)

		switch cfg.MCP.Transport {
		case mcp.TransportStdio:
			return srv.ServeStdio(ctx)
		case mcp.TransportHTTP:
			return srv.ServeHTTP(ctx)
		default:
			return fmt.Errorf("unknown mcp transport: %q", cfg.MCP.Transport)
		}
	},
}

func init() {
	RootCmd.AddCommand(mcpCmd)
}
