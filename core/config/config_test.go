package config_test

import (
	"testing"

	"admin-setor/core/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "admin_setor", cfg.Database.Name)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "attachments", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http://localhost:8000", cfg.MCP.ApiBaseURL)
	assert.Equal(t, "8001", cfg.MCP.Port)
	assert.Equal(t, "/mcp", cfg.MCP.Path)
	assert.Equal(t, "http", cfg.MCP.Transport)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("MCP_API_BASE_URL", "http://api:8000")
	t.Setenv("STORAGE_ENABLED", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "http://api:8000", cfg.MCP.ApiBaseURL)
	assert.False(t, cfg.Storage.Enabled)
}
