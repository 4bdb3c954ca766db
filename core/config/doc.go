// Package config provides configuration management for the admin-setor service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP API server settings (port, API key, body limit)
//   - Database: Postgres connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - MCP: MCP server settings (transport, port, API base URL)
//
// Environment variables map to nested keys by joining section and key with an
// underscore, e.g. DATABASE_HOST -> database.host, MCP_API_BASE_URL -> mcp.api_base_url.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
