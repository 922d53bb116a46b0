package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"TrendSpotter/internal/analysis"
)

// Config holds all application configuration.
type Config struct {
	Gemini struct {
		APIKey            string        `yaml:"api_key" validate:"required"`
		Model             string        `yaml:"model" validate:"required"`
		Days              int           `yaml:"days" validate:"min=1,max=365"`
		Timeout           time.Duration `yaml:"timeout" validate:"min=0"`
		MaxRetries        int           `yaml:"max_retries" validate:"min=0,max=10"`
		RequestsPerMinute int           `yaml:"requests_per_minute" validate:"min=0"`
	} `yaml:"gemini"`
	Analysis struct {
		SMAPeriod   int  `yaml:"sma_period" validate:"min=1"`
		MinOverlap  int  `yaml:"min_overlap" validate:"min=2"`
		MaxSources  int  `yaml:"max_sources" validate:"min=0"`
		StrictDates bool `yaml:"strict_dates"`
	} `yaml:"analysis"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		WatchCron string     `yaml:"watch_cron"`
		Watchlist []string   `yaml:"watchlist"`
		Pairs     [][]string `yaml:"pairs" validate:"dive,len=2"`
	} `yaml:"schedule"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Proxy    string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Defaults are set before the file is read so explicit zeros in it survive.
func Load(path string) (*Config, error) {
	cfg := defaults()

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
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
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
	if v := os.Getenv("CRON_WATCH"); v != "" {
		cfg.Schedule.WatchCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("SMA_PERIOD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SMA_PERIOD %q: %w", v, err)
		}
		cfg.Analysis.SMAPeriod = n
	}

	return cfg, nil
}

func defaults() *Config {
	def := analysis.DefaultParams()
	cfg := &Config{}
	cfg.Gemini.Model = "gemini-2.5-flash"
	cfg.Gemini.Days = def.Days
	cfg.Gemini.Timeout = 2 * time.Minute
	cfg.Gemini.MaxRetries = 2
	cfg.Gemini.RequestsPerMinute = 10
	cfg.Analysis.SMAPeriod = def.SMAPeriod
	cfg.Analysis.MinOverlap = def.MinOverlap
	cfg.Analysis.MaxSources = def.MaxSources
	cfg.Schedule.WatchCron = "0 30 22 * * 1-5"
	cfg.LogLevel = "info"
	return cfg
}

// Validate checks field ranges and that the Gemini credentials are set.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("config field %s failed %q check", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// ValidateBot additionally requires Telegram credentials.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}

// Params returns the analysis parameters derived from the config.
func (c *Config) Params() analysis.Params {
	return analysis.Params{
		Days:        c.Gemini.Days,
		SMAPeriod:   c.Analysis.SMAPeriod,
		MinOverlap:  c.Analysis.MinOverlap,
		MaxSources:  c.Analysis.MaxSources,
		StrictDates: c.Analysis.StrictDates,
	}
}
