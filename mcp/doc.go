// Package mcp implements a Model Context Protocol (MCP) server for the back
// office. It exposes the REST API as tools an AI agent can call to list and
// create departments, employees, suppliers, purchase orders, invoices and
// payments.
//
// The tools are a thin proxy: every call is translated into an HTTP request
// against the configured API base URL, and the API's JSON response is passed
// back verbatim. Rejected requests (HTTP 4xx/5xx) are reported as
// {"ok": false, "status": ..., "body": ...} rather than protocol errors so
// the agent can read the validation message and retry.
//
// Transport: the server supports two transports selectable at runtime:
//   - http   – Streamable HTTP transport (default), listening on the
//     configured port and path.
//   - stdio  – standard MCP stdio transport; suitable for local agent
//     integration (e.g. Claude Desktop).
package mcp
