// Package config handles configuration loading for supplywatch.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingCredential is returned when a provider credential required
// for an operation is absent. It is raised before any network I/O.
var ErrMissingCredential = errors.New("provider credential is missing")

// Config represents the complete application configuration.
type Config struct {
	Providers ProvidersConfig `mapstructure:"providers" yaml:"providers"`
	Monitor   MonitorConfig   `mapstructure:"monitor"   yaml:"monitor"`
	Forecast  ForecastConfig  `mapstructure:"forecast"  yaml:"forecast"`
	Inventory InventoryConfig `mapstructure:"inventory" yaml:"inventory"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// ProvidersConfig holds external text-provider credentials and settings.
type ProvidersConfig struct {
	NewsAPI  NewsAPIConfig `mapstructure:"newsapi"   yaml:"newsapi"`
	RSSFeeds []string      `mapstructure:"rss_feeds" yaml:"rss_feeds"`
}

// NewsAPIConfig holds NewsAPI credentials and endpoint settings.
type NewsAPIConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// MonitorConfig holds market-monitoring pipeline settings.
type MonitorConfig struct {
	DaysBack    int    `mapstructure:"days_back"    yaml:"days_back"`
	PageSize    int    `mapstructure:"page_size"    yaml:"page_size"`
	Language    string `mapstructure:"language"     yaml:"language"`
	SortBy      string `mapstructure:"sort_by"      yaml:"sort_by"`
	Topics      int    `mapstructure:"topics"       yaml:"topics"`
	TopicTerms  int    `mapstructure:"topic_terms"  yaml:"topic_terms"`
	MaxFeatures int    `mapstructure:"max_features" yaml:"max_features"`
	OutputDir   string `mapstructure:"output_dir"   yaml:"output_dir"`
}

// ForecastConfig holds demand-forecasting settings.
type ForecastConfig struct {
	TestFraction float64 `mapstructure:"test_fraction" yaml:"test_fraction"`
	Seed         int64   `mapstructure:"seed"          yaml:"seed"`
	ModelPath    string  `mapstructure:"model_path"    yaml:"model_path"`
}

// InventoryConfig holds inventory-report settings.
type InventoryConfig struct {
	TurnoverDays int   `mapstructure:"turnover_days" yaml:"turnover_days"`
	Seed         int64 `mapstructure:"seed"          yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
	File   string `mapstructure:"file"   yaml:"file"`   // persistent log file path
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.supplywatch/config.yaml (home directory)
//  3. /etc/supplywatch/config.yaml (system)
//
// Environment variables override config file values.
// Format: SUPPLYWATCH_<SECTION>_<KEY>, e.g. SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".supplywatch"))
	v.AddConfigPath("/etc/supplywatch")

	v.SetEnvPrefix("SUPPLYWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("SUPPLYWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Provider defaults
	v.SetDefault("providers.newsapi.base_url", "https://newsapi.org/v2")
	v.SetDefault("providers.rss_feeds", []string{})

	// Monitor defaults
	v.SetDefault("monitor.days_back", 7)
	v.SetDefault("monitor.page_size", 100)
	v.SetDefault("monitor.language", "en")
	v.SetDefault("monitor.sort_by", "relevancy")
	v.SetDefault("monitor.topics", 5)
	v.SetDefault("monitor.topic_terms", 10)
	v.SetDefault("monitor.max_features", 5000)
	v.SetDefault("monitor.output_dir", ".")

	// Forecast defaults
	v.SetDefault("forecast.test_fraction", 0.2)
	v.SetDefault("forecast.seed", 42)
	v.SetDefault("forecast.model_path", "demand_forecasting_model.json")

	// Inventory defaults
	v.SetDefault("inventory.turnover_days", 30)
	v.SetDefault("inventory.seed", 42)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "supply_chain_monitor.log")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY"); key != "" {
		cfg.Providers.NewsAPI.APIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
