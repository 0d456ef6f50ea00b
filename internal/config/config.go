package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables holding API keys.
const (
	EnvCurrencyAPIKey = "CURRENCY_API_KEY"
	EnvStockAPIKey    = "STOCKMARKET_API_KEY"
)

// Config represents the top-level cashview.yaml configuration.
type Config struct {
	DataPath     string    `yaml:"data_path"`
	SettingsPath string    `yaml:"settings_path"`
	ReportDir    string    `yaml:"report_dir"`
	BaseCurrency string    `yaml:"base_currency"`
	CurrencyAPI  APIConfig `yaml:"currency_api"`
	StockAPI     APIConfig `yaml:"stock_api"`
	HTTPTimeout  int       `yaml:"http_timeout"` // seconds, 0 = no client timeout
}

// APIConfig locates a quote service. The key is never stored in the file.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"-"`
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// Load reads a cashview.yaml file from disk. Unset keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LoadKeys fills the API keys from the environment, after loading envFile
// when it exists. Variables already set in the environment win.
func (c *Config) LoadKeys(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	c.CurrencyAPI.APIKey = os.Getenv(EnvCurrencyAPIKey)
	c.StockAPI.APIKey = os.Getenv(EnvStockAPIKey)
	return nil
}

// Default returns a Config with the standard file layout and public APIs.
func Default() *Config {
	return &Config{
		DataPath:     "data/operations.xlsx",
		SettingsPath: "user_settings.json",
		ReportDir:    ".",
		BaseCurrency: "RUB",
		CurrencyAPI: APIConfig{
			BaseURL: "https://api.apilayer.com/exchangerates_data",
		},
		StockAPI: APIConfig{
			BaseURL: "https://www.alphavantage.co/query",
		},
	}
}
