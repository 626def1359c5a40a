package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type Config struct {
	BaseURL       string
	OutputPath    string
	Format        string
	MaxPages      int // 0 means unbounded, stop at the site's natural end
	Delay         time.Duration
	Timeout       time.Duration
	RetryCount    int
	CacheDuration time.Duration
	UseBrowser    bool
	Debug         bool
	DebugDir      string
	LogLevel      string
}

func Load() (*Config, error) {
	delay := 1500 * time.Millisecond
	if d := os.Getenv("PAGE_DELAY_MS"); d != "" {
		if ms, err := strconv.Atoi(d); err == nil {
			delay = time.Duration(ms) * time.Millisecond
		}
	}

	maxPages := 0
	if m := os.Getenv("MAX_PAGES"); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			maxPages = n
		}
	}

	cacheDuration := 30 * time.Minute
	if d := os.Getenv("CACHE_DURATION_MINUTES"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil {
			cacheDuration = time.Duration(minutes) * time.Minute
		}
	}

	return &Config{
		BaseURL:       getEnvOrDefault("PUCKPEDIA_BASE_URL", "https://puckpedia.com"),
		OutputPath:    getEnvOrDefault("OUTPUT_PATH", "puckpedia_trades.csv"),
		Format:        getEnvOrDefault("OUTPUT_FORMAT", FormatCSV),
		MaxPages:      maxPages,
		Delay:         delay,
		Timeout:       30 * time.Second,
		RetryCount:    3,
		CacheDuration: cacheDuration,
		DebugDir:      getEnvOrDefault("DEBUG_DIR", "debug_html"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

// Validate rejects unusable configuration before any page is fetched.
func (c *Config) Validate() error {
	if c.Format != FormatCSV && c.Format != FormatJSON {
		return fmt.Errorf("unsupported output format %q (want csv or json)", c.Format)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("max pages must be >= 0, got %d", c.MaxPages)
	}
	if c.Delay < 0 {
		return fmt.Errorf("page delay must not be negative")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
