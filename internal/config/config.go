package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the kiroscore configuration.
type Config struct {
	Root    string       `mapstructure:"root"`
	Format  string       `mapstructure:"format"`
	Output  string       `mapstructure:"output"`
	Quiet   bool         `mapstructure:"quiet"`
	Verbose bool         `mapstructure:"verbose"`
	AI      AIConfig     `mapstructure:"ai"`
	Server  ServerConfig `mapstructure:"server"`
	DB      DBConfig     `mapstructure:"db"`
}

// AIConfig controls the model-based analysis pathway. When disabled (the
// default) scoring is purely rule-based.
type AIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"apiKey"`
}

// ServerConfig configures the scoring API server.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	JWTSecret      string   `mapstructure:"jwtSecret"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DBConfig configures analysis persistence.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig loads configuration from defaults, config file, and environment.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("ai.enabled", false)
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.allowedOrigins", []string{"*"})
	viper.SetDefault("db.path", "kiroscore.db")

	configPaths := []string{".kiroscorerc.json", ".kiroscorerc.yaml", ".kiroscorerc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("KIROSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.AI.Enabled && config.AI.Model == "" {
		return fmt.Errorf("ai.model is required when the AI pathway is enabled")
	}

	if config.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}

	return nil
}
