// ABOUTME: Configuration loading and parsing for the portfolio server
// ABOUTME: Optional YAML file with env var expansion, plus env var overrides

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Insecure built-in fallbacks. Every one of these MUST be overridden in
// production via the environment or a config file; they exist so a fresh
// checkout runs out of the box.
const (
	DefaultSecretKey     = "fallback_secret_key_change_me"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// Config represents the complete portfolio server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
}

// ServerConfig holds server address and session signing configuration
type ServerConfig struct {
	HTTPAddr  string `yaml:"http_addr"`
	SecretKey string `yaml:"secret_key"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AdminConfig holds the expected admin login name and the password used to
// seed the credential record on first run
type AdminConfig struct {
	Username        string `yaml:"username"`
	DefaultPassword string `yaml:"default_password"`
}

// Load returns the server configuration. When path is non-empty the YAML
// file is read with ${VAR_NAME} environment expansion; otherwise defaults
// apply. Environment variables (PORTFOLIO_HTTP_ADDR, PORTFOLIO_DB_PATH,
// PORTFOLIO_SECRET_KEY, PORTFOLIO_ADMIN_USERNAME, PORTFOLIO_ADMIN_PASSWORD)
// override the file in both cases.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPAddr:  "127.0.0.1:8080",
			SecretKey: DefaultSecretKey,
		},
		Database: DatabaseConfig{
			Path: "portfolio.db",
		},
		Admin: AdminConfig{
			Username:        DefaultAdminUsername,
			DefaultPassword: DefaultAdminPassword,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the raw YAML content
		expandedData := expandEnvVars(string(data))

		if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORTFOLIO_HTTP_ADDR"); v != "" {
		cfg.Server.HTTPAddr = v
	}
	if v := os.Getenv("PORTFOLIO_SECRET_KEY"); v != "" {
		cfg.Server.SecretKey = v
	}
	if v := os.Getenv("PORTFOLIO_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("PORTFOLIO_ADMIN_USERNAME"); v != "" {
		cfg.Admin.Username = v
	}
	if v := os.Getenv("PORTFOLIO_ADMIN_PASSWORD"); v != "" {
		cfg.Admin.DefaultPassword = v
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	if c.Server.SecretKey == "" {
		return fmt.Errorf("server.secret_key is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("admin.username is required")
	}
	return nil
}

// UsingFallbackSecret reports whether the session signing key is still the
// built-in constant. The server logs a warning when this is true.
func (c *Config) UsingFallbackSecret() bool {
	return c.Server.SecretKey == DefaultSecretKey
}
