// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New returns a Config populated with defaults.
// - Load layers a YAML file and environment variables on top of New.
// - Validation errors wrap ErrInvalidConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFile optionally points at a YAML dataset replacing the sample data.
	DataFile string `koanf:"data_file"`

	// ClientCookie names the cookie that identifies a browser for preferences.
	ClientCookie string `koanf:"client_cookie"`

	// PreferenceTTLMinutes bounds how long an untouched theme preference is kept.
	PreferenceTTLMinutes int `koanf:"preference_ttl_minutes"`

	// ChartWidth and ChartHeight size the rendered area chart in pixels.
	ChartWidth  int `koanf:"chart_width"`
	ChartHeight int `koanf:"chart_height"`

	// ToggleRatePerSecond and ToggleBurst throttle theme toggles per client.
	ToggleRatePerSecond float64 `koanf:"toggle_rate_per_second"`
	ToggleBurst         int     `koanf:"toggle_burst"`

	// MetricsEnabled turns view and preference counters on or off.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsNamespace and MetricsSubsystem prefix every exported metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		ClientCookie:         "salesboard_client",
		PreferenceTTLMinutes: 30 * 24 * 60,
		ChartWidth:           960,
		ChartHeight:          288,
		ToggleRatePerSecond:  3,
		ToggleBurst:          5,
		MetricsEnabled:       true,
		MetricsNamespace:     "salesboard",
		MetricsSubsystem:     "dashboard",
	}
}
