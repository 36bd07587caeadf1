package config

// Config represents the complete configuration structure
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GitHubConfig holds API connection details. The token is optional;
// without one the API applies its unauthenticated rate limit.
type GitHubConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Token   string `mapstructure:"token"`
}

// SearchConfig contains defaults applied to query commands
type SearchConfig struct {
	PerPage int    `mapstructure:"per_page"`
	Order   string `mapstructure:"order"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
