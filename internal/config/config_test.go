package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Provider defaults
	if cfg.Providers.NewsAPI.BaseURL != "https://newsapi.org/v2" {
		t.Errorf("Providers.NewsAPI.BaseURL: got %q", cfg.Providers.NewsAPI.BaseURL)
	}

	// Monitor defaults
	if cfg.Monitor.DaysBack != 7 {
		t.Errorf("Monitor.DaysBack: got %d, want 7", cfg.Monitor.DaysBack)
	}
	if cfg.Monitor.PageSize != 100 {
		t.Errorf("Monitor.PageSize: got %d, want 100", cfg.Monitor.PageSize)
	}
	if cfg.Monitor.Language != "en" {
		t.Errorf("Monitor.Language: got %q, want %q", cfg.Monitor.Language, "en")
	}
	if cfg.Monitor.SortBy != "relevancy" {
		t.Errorf("Monitor.SortBy: got %q, want %q", cfg.Monitor.SortBy, "relevancy")
	}
	if cfg.Monitor.Topics != 5 {
		t.Errorf("Monitor.Topics: got %d, want 5", cfg.Monitor.Topics)
	}
	if cfg.Monitor.TopicTerms != 10 {
		t.Errorf("Monitor.TopicTerms: got %d, want 10", cfg.Monitor.TopicTerms)
	}
	if cfg.Monitor.MaxFeatures != 5000 {
		t.Errorf("Monitor.MaxFeatures: got %d, want 5000", cfg.Monitor.MaxFeatures)
	}
	if cfg.Monitor.OutputDir != "." {
		t.Errorf("Monitor.OutputDir: got %q, want %q", cfg.Monitor.OutputDir, ".")
	}

	// Forecast defaults
	if cfg.Forecast.TestFraction != 0.2 {
		t.Errorf("Forecast.TestFraction: got %f, want 0.2", cfg.Forecast.TestFraction)
	}
	if cfg.Forecast.Seed != 42 {
		t.Errorf("Forecast.Seed: got %d, want 42", cfg.Forecast.Seed)
	}

	// Inventory defaults
	if cfg.Inventory.TurnoverDays != 30 {
		t.Errorf("Inventory.TurnoverDays: got %d, want 30", cfg.Inventory.TurnoverDays)
	}
	if cfg.Inventory.Seed != 42 {
		t.Errorf("Inventory.Seed: got %d, want 42", cfg.Inventory.Seed)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
	if cfg.Logging.File != "supply_chain_monitor.log" {
		t.Errorf("Logging.File: got %q", cfg.Logging.File)
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test_config.yaml")
	content := []byte(`
providers:
  newsapi:
    api_key: "file-key-1234567890abcdef"
monitor:
  days_back: 14
  topics: 3
  output_dir: "/tmp/out"
logging:
  level: "debug"
  format: "json"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Providers.NewsAPI.APIKey != "file-key-1234567890abcdef" {
		t.Errorf("Providers.NewsAPI.APIKey: got %q", cfg.Providers.NewsAPI.APIKey)
	}
	if cfg.Monitor.DaysBack != 14 {
		t.Errorf("Monitor.DaysBack: got %d, want 14", cfg.Monitor.DaysBack)
	}
	if cfg.Monitor.Topics != 3 {
		t.Errorf("Monitor.Topics: got %d, want 3", cfg.Monitor.Topics)
	}
	if cfg.Monitor.OutputDir != "/tmp/out" {
		t.Errorf("Monitor.OutputDir: got %q", cfg.Monitor.OutputDir)
	}
	// Unset values fall back to defaults
	if cfg.Monitor.PageSize != 100 {
		t.Errorf("Monitor.PageSize: got %d, want default 100", cfg.Monitor.PageSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

// ── overrideFromEnv ──

func TestOverrideFromEnv(t *testing.T) {
	cfg := &Config{}

	os.Setenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY", "env-key-abcdef123456")
	defer os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	overrideFromEnv(cfg)

	if cfg.Providers.NewsAPI.APIKey != "env-key-abcdef123456" {
		t.Errorf("NewsAPI.APIKey: got %q", cfg.Providers.NewsAPI.APIKey)
	}
}

func TestOverrideFromEnvNoEnvSet(t *testing.T) {
	os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg := &Config{
		Providers: ProvidersConfig{NewsAPI: NewsAPIConfig{APIKey: "from-config"}},
	}
	overrideFromEnv(cfg)

	// Should retain the original value when env is not set
	if cfg.Providers.NewsAPI.APIKey != "from-config" {
		t.Errorf("APIKey should stay as 'from-config' when env is unset, got %q", cfg.Providers.NewsAPI.APIKey)
	}
}

// ── maskKey ──

func TestMaskKeyShort(t *testing.T) {
	// Keys with 8 or fewer characters should be fully masked
	tests := []struct {
		input string
		want  string
	}{
		{"", "***"},
		{"a", "***"},
		{"abcd", "***"},
		{"12345678", "***"},
	}
	for _, tc := range tests {
		got := maskKey(tc.input)
		if got != tc.want {
			t.Errorf("maskKey(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMaskKeyLong(t *testing.T) {
	// Keys with more than 8 characters show first 3 + ... + last 3
	tests := []struct {
		input string
		want  string
	}{
		{"123456789", "123...789"},
		{"909999c59129445ab2c3904a9d7786b5", "909...6b5"},
	}
	for _, tc := range tests {
		got := maskKey(tc.input)
		if got != tc.want {
			t.Errorf("maskKey(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

// ── CheckAPIKeys / checkKey ──

func TestCheckAPIKeysAllEmpty(t *testing.T) {
	os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg := &Config{}
	statuses := CheckAPIKeys(cfg)

	if len(statuses) != 1 {
		t.Fatalf("CheckAPIKeys: got %d statuses, want 1", len(statuses))
	}
	for _, s := range statuses {
		if s.IsSet {
			t.Errorf("Key %q should not be set", s.Name)
		}
		if s.Source != KeySourceNone {
			t.Errorf("Key %q source: got %q, want %q", s.Name, s.Source, KeySourceNone)
		}
	}
}

func TestCheckAPIKeysFromConfig(t *testing.T) {
	os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg := &Config{
		Providers: ProvidersConfig{
			NewsAPI: NewsAPIConfig{APIKey: "config-key-long-value"},
		},
	}
	statuses := CheckAPIKeys(cfg)

	found := false
	for _, s := range statuses {
		if s.Name == "NewsAPI Key" {
			found = true
			if !s.IsSet {
				t.Error("NewsAPI key should be set")
			}
			if s.Source != KeySourceConfig {
				t.Errorf("Source: got %q, want %q", s.Source, KeySourceConfig)
			}
			if s.Masked != "con...lue" {
				t.Errorf("Masked: got %q, want %q", s.Masked, "con...lue")
			}
		}
	}
	if !found {
		t.Error("NewsAPI Key status not found")
	}
}

func TestCheckAPIKeysFromEnv(t *testing.T) {
	os.Setenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY", "env-key-for-testing")
	defer os.Unsetenv("SUPPLYWATCH_PROVIDERS_NEWSAPI_API_KEY")

	cfg := &Config{
		Providers: ProvidersConfig{
			NewsAPI: NewsAPIConfig{APIKey: "env-key-for-testing"},
		},
	}
	statuses := CheckAPIKeys(cfg)

	for _, s := range statuses {
		if s.Name == "NewsAPI Key" {
			if s.Source != KeySourceEnv {
				t.Errorf("Source: got %q, want %q", s.Source, KeySourceEnv)
			}
		}
	}
}

func TestCheckKeySourceDetection(t *testing.T) {
	// No env, no value
	os.Unsetenv("TEST_VAR")
	s := checkKey("Test", "", "TEST_VAR")
	if s.Source != KeySourceNone {
		t.Errorf("empty value: got source %q, want %q", s.Source, KeySourceNone)
	}
	if s.IsSet {
		t.Error("empty value should not be set")
	}

	// Value from config (no env)
	s = checkKey("Test", "config-value-long-enough", "TEST_VAR")
	if s.Source != KeySourceConfig {
		t.Errorf("config value: got source %q, want %q", s.Source, KeySourceConfig)
	}
	if !s.IsSet {
		t.Error("config value should be set")
	}

	// Value from env
	os.Setenv("TEST_VAR", "env-value-long-enough")
	defer os.Unsetenv("TEST_VAR")
	s = checkKey("Test", "env-value-long-enough", "TEST_VAR")
	if s.Source != KeySourceEnv {
		t.Errorf("env value: got source %q, want %q", s.Source, KeySourceEnv)
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	h := homeDir()
	if h == "" {
		t.Error("homeDir() should not return empty string")
	}
}
