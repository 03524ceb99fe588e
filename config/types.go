package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Filter  FilterConfig  `mapstructure:"filter"`
}

// ServerConfig holds Dim server connection details
type ServerConfig struct {
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// StrictErrors makes API failures surface as errors instead of
	// empty results.
	StrictErrors bool `mapstructure:"strict_errors"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
