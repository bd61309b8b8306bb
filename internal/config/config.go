// Package config handles loading and validating the application
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Favorites FavoritesConfig `yaml:"favorites"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings for the saved
// properties store. The database is optional: with Enabled false the
// server keeps saved properties in memory only.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ScoringConfig defines scoring weights and response behavior.
type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights"`

	// AnalysisDelay artificially delays analyze responses so the UI can
	// show a progress state. Default is off.
	AnalysisDelay time.Duration `yaml:"analysis_delay"`
}

// ScoringWeights defines the relative weight of each scoring factor.
type ScoringWeights struct {
	Price     float64 `yaml:"price"`
	Location  float64 `yaml:"location"`
	Building  float64 `yaml:"building"`
	Size      float64 `yaml:"size"`
	Amenities float64 `yaml:"amenities"`
}

// Sum returns the total of all weights.
func (w ScoringWeights) Sum() float64 {
	return w.Price + w.Location + w.Building + w.Size + w.Amenities
}

// FavoritesConfig defines saved-property limits and pruning.
type FavoritesConfig struct {
	MaxSaved      int           `yaml:"max_saved"`
	PruneInterval time.Duration `yaml:"prune_interval"`
	TTL           time.Duration `yaml:"ttl"`
}

// RateLimitConfig defines the per-client request rate limit.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment
// variable substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScoringDefaults(&cfg.Scoring)
	applyFavoritesDefaults(&cfg.Favorites)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.Weights.Sum() == 0 {
		s.Weights = ScoringWeights{
			Price:     0.45,
			Location:  0.30,
			Building:  0.15,
			Size:      0.08,
			Amenities: 0.02,
		}
	}
}

func applyFavoritesDefaults(f *FavoritesConfig) {
	if f.MaxSaved == 0 {
		f.MaxSaved = 10
	}
	if f.PruneInterval == 0 {
		f.PruneInterval = 24 * time.Hour
	}
	if f.TTL == 0 {
		f.TTL = 30 * 24 * time.Hour
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 20.0
	}
	if r.Burst == 0 {
		r.Burst = 40
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when database.enabled"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when database.enabled"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when database.enabled"))
		}
	}

	if sum := cfg.Scoring.Weights.Sum(); sum < 0.99 || sum > 1.01 {
		errs = append(errs, fmt.Errorf("scoring.weights must sum to 1.0 (got %.3f)", sum))
	}

	if cfg.Scoring.AnalysisDelay < 0 {
		errs = append(errs, fmt.Errorf("scoring.analysis_delay must not be negative"))
	}

	if cfg.Favorites.MaxSaved < 1 {
		errs = append(errs, fmt.Errorf("favorites.max_saved must be at least 1"))
	}

	return errors.Join(errs...)
}
