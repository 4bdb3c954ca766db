package mcp

// Config holds the configuration for the MCP server and its API client.
type Config struct {
	// ApiBaseURL is the base URL of the REST API the tools call.
	ApiBaseURL string `mapstructure:"api_base_url" default:"http://localhost:8000"`
	// ApiKey is sent as X-API-Key on every API request when set.
	ApiKey string `mapstructure:"api_key" default:""`
	// Port is the port the HTTP transport listens on.
	Port string `mapstructure:"port" default:"8001"`
	// Path is the endpoint path of the streamable HTTP transport.
	Path string `mapstructure:"path" default:"/mcp"`
	// Transport selects "http" (streamable HTTP) or "stdio".
	Transport string `mapstructure:"transport" default:"http"`
	// TimeoutSeconds bounds every API request made by a tool.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
}

// Addr returns the listen address for the HTTP transport.
func (c Config) Addr() string {
	return ":" + c.Port
}
