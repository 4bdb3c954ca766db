package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	json "github.com/goccy/go-json"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName    = "admin-setor-mcp"
	serverVersion = "1.0.0"
)

// Transports supported by the server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Server exposes the back-office REST API as MCP tools.
type Server struct {
	mcp    *mcpsrv.MCPServer
	api    *APIClient
	cfg    Config
	logger *zap.Logger
}

// New creates an MCP server wired to the configured REST API. The server is
// populated with all tools but does not start listening until one of the
// Serve* methods is called.
func New(cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		api:    NewAPIClient(cfg),
		cfg:    cfg,
		logger: logger,
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions()),
	)
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions describe the back office to the connecting agent.
func instructions() string {
	return `You are connected to the Admin Setor back-office MCP server.

The tools operate on a small finance back office with departments, employees,
suppliers, purchase orders, invoices and payments. Monetary values are always
integers in cents (e.g. R$ 1.500,00 = 150000). Dates use the YYYY-MM-DD format.

Listing tools are paginated with limit (default 50, max 200) and offset.
Creation tools return the created record. When the API rejects a request the
tool returns {"ok": false, "status": <http status>, "body": <api response>}
instead of failing, so inspect the body to see what was wrong.

Registering a payment that covers the invoice amount flips the invoice to PAID
automatically.`
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.Info("MCP server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server over streamable HTTP until ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context) error {
	addr := s.cfg.Addr()
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithEndpointPath(s.cfg.Path),
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.Info("MCP server listening on http",
		zap.String("addr", addr),
		zap.String("path", s.cfg.Path))

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolListDepartments(),
		s.toolCreateDepartment(),
		s.toolListEmployees(),
		s.toolCreateEmployee(),
		s.toolListSuppliers(),
		s.toolCreateSupplier(),
		s.toolListPurchaseOrders(),
		s.toolCreatePurchaseOrder(),
		s.toolListInvoices(),
		s.toolCreateInvoice(),
		s.toolCreatePayment(),
	}
}

// resultRaw wraps a raw JSON API response in a successful CallToolResult.
func resultRaw(raw json.RawMessage) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(string(raw))
}

// resultErr wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request. The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}
