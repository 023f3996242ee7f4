// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Ranking  RankingConfig  `mapstructure:"ranking" yaml:"ranking"`
	Limits   LimitsConfig   `mapstructure:"limits" yaml:"limits"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
	TLS  struct {
		Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
		CertFile string `mapstructure:"cert_file" yaml:"cert_file"`
		KeyFile  string `mapstructure:"key_file" yaml:"key_file"`
	} `mapstructure:"tls" yaml:"tls"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Type        string `mapstructure:"type" yaml:"type"` // "sqlite" or "postgres"
	SQLitePath  string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn" yaml:"postgres_dsn,omitempty"`
}

// RankingConfig holds the context engine scoring coefficients.
// Keeping these external to the scoring function lets tests pin them
// and assert exact orderings.
type RankingConfig struct {
	LexicalWeight float64            `mapstructure:"lexical_weight" yaml:"lexical_weight"`
	RecencyWeight float64            `mapstructure:"recency_weight" yaml:"recency_weight"`
	EditorWeight  float64            `mapstructure:"editor_weight" yaml:"editor_weight"`
	TypeWeights   map[string]float64 `mapstructure:"type_weights" yaml:"type_weights"`
}

// LimitsConfig holds request-level bounds
type LimitsConfig struct {
	DefaultMaxMemories int `mapstructure:"default_max_memories" yaml:"default_max_memories"`
	MaxTaskPriority    int `mapstructure:"max_task_priority" yaml:"max_task_priority"`
}

// DefaultTypeWeights returns the built-in memory type weight table.
// Decisions and insights outrank plain notes when lexical scores tie.
func DefaultTypeWeights() map[string]float64 {
	return map[string]float64{
		"decision": 3.0,
		"insight":  2.0,
		"normal":   1.0,
		"context":  1.0,
	}
}

// TypeWeight returns the configured weight for a memory type, falling
// back to 1.0 for types without an entry.
func (r RankingConfig) TypeWeight(memType string) float64 {
	if w, ok := r.TypeWeights[memType]; ok {
		return w
	}
	return 1.0
}
