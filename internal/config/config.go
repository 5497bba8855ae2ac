package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider          string `yaml:"provider"` // "polygon" or "yahoo"
		BaseURL           string `yaml:"base_url"`
		APIKey            string `yaml:"api_key"`
		RequestsPerMinute int    `yaml:"requests_per_minute"`
	} `yaml:"data_source"`
	Fundamentals struct {
		BaseURL           string `yaml:"base_url"`
		APIKey            string `yaml:"api_key"`
		RequestsPerMinute int    `yaml:"requests_per_minute"`
	} `yaml:"fundamentals"`
	Batch struct {
		TickersFile string `yaml:"tickers_file"`
		OutputCSV   string `yaml:"output_csv"`
		StateFile   string `yaml:"state_file"`
	} `yaml:"batch"`
	Schedule struct {
		BatchCron string `yaml:"batch_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken   string `yaml:"bot_token"`
		ChatID     string `yaml:"chat_id"`
		MaxRetries int    `yaml:"max_retries"` // send retries, 0 means the default
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("FUNDAMENTALS_BASE_URL"); v != "" {
		cfg.Fundamentals.BaseURL = v
	}
	if v := os.Getenv("FUNDAMENTALS_API_KEY"); v != "" {
		cfg.Fundamentals.APIKey = v
	}
	if v := os.Getenv("TICKERS_FILE"); v != "" {
		cfg.Batch.TickersFile = v
	}
	if v := os.Getenv("OUTPUT_CSV"); v != "" {
		cfg.Batch.OutputCSV = v
	}
	if v := os.Getenv("CRON_BATCH"); v != "" {
		cfg.Schedule.BatchCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "polygon"
	}
	if cfg.Batch.TickersFile == "" {
		cfg.Batch.TickersFile = "tickers.txt"
	}
	if cfg.Batch.OutputCSV == "" {
		cfg.Batch.OutputCSV = "results.csv"
	}
	if cfg.Batch.StateFile == "" {
		cfg.Batch.StateFile = "data/run_state.json"
	}
	if cfg.Schedule.BatchCron == "" {
		// Weekdays at 17:30, after US market close
		cfg.Schedule.BatchCron = "0 30 17 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "polygon":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for the polygon provider")
		}
	case "yahoo":
		// no key needed
	default:
		return fmt.Errorf("data_source.provider must be polygon or yahoo, got %q", c.DataSource.Provider)
	}
	if c.Batch.TickersFile == "" {
		return fmt.Errorf("batch.tickers_file is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
