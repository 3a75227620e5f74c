package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled       bool          `yaml:"enabled"`
		SlowThreshold time.Duration `yaml:"slow_threshold"`
	} `yaml:"metrics"`
	Provider struct {
		BaseURL   string        `yaml:"base_url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"provider"`
	Market struct {
		Benchmarks     []string      `yaml:"benchmarks"`
		PrimarySymbol  string        `yaml:"primary_symbol"`
		HistoryPeriod  string        `yaml:"history_period"`
		StatsPeriod    string        `yaml:"stats_period"`
		Interval       string        `yaml:"interval"`
		CacheTTL       time.Duration `yaml:"cache_ttl"`
		MinCorrelation float64       `yaml:"min_correlation"`
	} `yaml:"market"`
	Cache struct {
		ResponseTTL time.Duration `yaml:"response_ttl"`
		Redis       struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("PROVIDER_USER_AGENT"); v != "" {
		c.Provider.UserAgent = v
	}
	if v := os.Getenv("BENCHMARKS"); v != "" {
		c.Market.Benchmarks = strings.Split(v, ",")
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Provider.Timeout <= 0 {
		c.Provider.Timeout = 10 * time.Second
	}
	if c.Market.HistoryPeriod == "" {
		c.Market.HistoryPeriod = "1y"
	}
	if c.Market.StatsPeriod == "" {
		c.Market.StatsPeriod = "5d"
	}
	if c.Market.Interval == "" {
		c.Market.Interval = "1d"
	}
	if c.Market.CacheTTL <= 0 {
		c.Market.CacheTTL = time.Hour
	}
	if c.Market.MinCorrelation == 0 {
		c.Market.MinCorrelation = 0.25
	}
	if c.Market.PrimarySymbol == "" && len(c.Market.Benchmarks) > 0 {
		c.Market.PrimarySymbol = c.Market.Benchmarks[0]
	}
	if c.Cache.ResponseTTL <= 0 {
		c.Cache.ResponseTTL = 60 * time.Second
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if len(c.Market.Benchmarks) == 0 {
		return fmt.Errorf("market.benchmarks cannot be empty")
	}
	if c.Market.PrimarySymbol == "" {
		return fmt.Errorf("market.primary_symbol is required")
	}
	found := false
	for _, b := range c.Market.Benchmarks {
		if b == c.Market.PrimarySymbol {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("market.primary_symbol '%s' must be one of market.benchmarks", c.Market.PrimarySymbol)
	}
	if c.Market.MinCorrelation < 0 || c.Market.MinCorrelation >= 1 {
		return fmt.Errorf("market.min_correlation must be in [0, 1), got %v", c.Market.MinCorrelation)
	}
	return nil
}
