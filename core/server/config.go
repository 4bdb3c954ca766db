package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// ApiKey is the secret key required to access the API.
	// Leave empty to disable API key authentication (workshop default).
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB is the maximum request body size in megabytes.
	// Invoice attachment uploads are bounded by this limit.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// AuthEnabled reports whether API key authentication is configured.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
