// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigDir is the default configuration directory
	DefaultConfigDir = ".neurodock/configs"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.json"
)

// Load reads configuration from ~/.neurodock/configs/config.json
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, DefaultConfigDir)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(configPath)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults
			return loadFromDefaults(v)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.tls.enabled", false)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	homeDir, _ := os.UserHomeDir()
	v.SetDefault("database.sqlite_path", filepath.Join(homeDir, ".neurodock/db/neurodock.db"))

	// Ranking defaults
	v.SetDefault("ranking.lexical_weight", 10.0)
	v.SetDefault("ranking.recency_weight", 1.0)
	v.SetDefault("ranking.editor_weight", 5.0)
	v.SetDefault("ranking.type_weights", DefaultTypeWeights())

	// Limit defaults
	v.SetDefault("limits.default_max_memories", 10)
	v.SetDefault("limits.max_task_priority", 4)
}

// loadFromDefaults creates a config from default values
func loadFromDefaults(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %w", err)
	}
	return &cfg, nil
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	// Validate database type
	if cfg.Database.Type != "sqlite" && cfg.Database.Type != "postgres" {
		return fmt.Errorf("database.type must be 'sqlite' or 'postgres', got '%s'", cfg.Database.Type)
	}

	// Validate database connection info
	if cfg.Database.Type == "sqlite" && cfg.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required when type is 'sqlite'")
	}
	if cfg.Database.Type == "postgres" && cfg.Database.PostgresDSN == "" {
		return fmt.Errorf("database.postgres_dsn is required when type is 'postgres'")
	}

	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate ranking weights
	if cfg.Ranking.LexicalWeight < 0 {
		return fmt.Errorf("ranking.lexical_weight must be non-negative, got %f", cfg.Ranking.LexicalWeight)
	}
	if cfg.Ranking.RecencyWeight < 0 {
		return fmt.Errorf("ranking.recency_weight must be non-negative, got %f", cfg.Ranking.RecencyWeight)
	}
	if cfg.Ranking.EditorWeight < 0 {
		return fmt.Errorf("ranking.editor_weight must be non-negative, got %f", cfg.Ranking.EditorWeight)
	}
	for memType, w := range cfg.Ranking.TypeWeights {
		if w < 0 {
			return fmt.Errorf("ranking.type_weights.%s must be non-negative, got %f", memType, w)
		}
	}

	// Validate limits
	if cfg.Limits.DefaultMaxMemories < 1 {
		return fmt.Errorf("limits.default_max_memories must be at least 1, got %d", cfg.Limits.DefaultMaxMemories)
	}
	if cfg.Limits.MaxTaskPriority < 0 {
		return fmt.Errorf("limits.max_task_priority must be non-negative, got %d", cfg.Limits.MaxTaskPriority)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, DefaultConfigDir)
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Type:       "sqlite",
			SQLitePath: filepath.Join(homeDir, ".neurodock/db/neurodock.db"),
		},
		Ranking: RankingConfig{
			LexicalWeight: 10.0,
			RecencyWeight: 1.0,
			EditorWeight:  5.0,
			TypeWeights:   DefaultTypeWeights(),
		},
		Limits: LimitsConfig{
			DefaultMaxMemories: 10,
			MaxTaskPriority:    4,
		},
	}
}
