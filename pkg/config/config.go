package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// feed providers
const (
	ProviderFinnhub = "finnhub"
	ProviderRSS     = "rss"
)

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=News feed configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article classification"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Ingestion and classification loops configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	WebDir  string        `yaml:"web_dir" json:"web_dir" jsonschema:"description=Directory with static dashboard files served at /"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newspulse.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// FeedConfig defines the external news source
type FeedConfig struct {
	Provider   string            `yaml:"provider" json:"provider" jsonschema:"default=finnhub,enum=finnhub,enum=rss,description=News provider"`
	BaseURL    string            `yaml:"base_url" json:"base_url" jsonschema:"default=https://finnhub.io/api/v1,description=Finnhub API base URL"`
	APIKey     string            `yaml:"api_key" json:"api_key" jsonschema:"description=Finnhub API key (can use environment variable)"`
	Categories []string          `yaml:"categories" json:"categories" jsonschema:"description=News categories to poll, e.g. general or forex"`
	RSS        map[string]string `yaml:"rss" json:"rss" jsonschema:"description=Category to RSS/Atom feed URL map, used with rss provider"`
	Timeout    time.Duration     `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
	MaxWorkers int               `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent category fetches"`
}

// LLMConfig holds LLM configuration for article classification
type LLMConfig struct {
	Endpoint            string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.openai.com/v1,description=OpenAI-compatible API endpoint"`
	APIKey              string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model               string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-2024-05-13,description=Model name"`
	Temperature         float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,minimum=0,maximum=2,description=Temperature for response generation"`
	MaxTokens           int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout             time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	UseJSONMode         bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
	RouterQualityWeight *float64      `yaml:"router_quality_weight" json:"router_quality_weight" jsonschema:"description=Routing hint sent as X-Router-Quality-Weight header"`
	RequestsPerMinute   int           `yaml:"requests_per_minute" json:"requests_per_minute" jsonschema:"default=0,minimum=0,description=Model call rate limit, 0 means unlimited"`
}

// ScheduleConfig holds loop intervals and autostart flags
type ScheduleConfig struct {
	IngestInterval          time.Duration `yaml:"ingest_interval" json:"ingest_interval" jsonschema:"default=30s,description=Pause between ingestion iterations"`
	ClassifyInterval        time.Duration `yaml:"classify_interval" json:"classify_interval" jsonschema:"default=30s,description=Pause between classification batches"`
	BatchSize               int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=100,minimum=1,description=Articles per classification batch"`
	AutostartIngestion      bool          `yaml:"autostart_ingestion" json:"autostart_ingestion" jsonschema:"default=false,description=Start ingestion loop on startup"`
	AutostartClassification bool          `yaml:"autostart_classification" json:"autostart_classification" jsonschema:"default=false,description=Start classification loop on startup"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, mismatch is reported but not fatal
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newspulse.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// feed
	if c.Feed.Provider == "" {
		c.Feed.Provider = ProviderFinnhub
	}
	if c.Feed.BaseURL == "" && c.Feed.Provider == ProviderFinnhub {
		c.Feed.BaseURL = "https://finnhub.io/api/v1"
	}
	if len(c.Feed.Categories) == 0 {
		switch c.Feed.Provider {
		case ProviderRSS:
			for category := range c.Feed.RSS {
				c.Feed.Categories = append(c.Feed.Categories, category)
			}
			sort.Strings(c.Feed.Categories)
		default:
			c.Feed.Categories = []string{"general"}
		}
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 30 * time.Second
	}
	if c.Feed.MaxWorkers == 0 {
		c.Feed.MaxWorkers = 5
	}

	// llm
	if c.LLM.Endpoint == "" {
		c.LLM.Endpoint = "https://api.openai.com/v1"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-2024-05-13"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 500
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	// schedule
	if c.Schedule.IngestInterval == 0 {
		c.Schedule.IngestInterval = 30 * time.Second
	}
	if c.Schedule.ClassifyInterval == 0 {
		c.Schedule.ClassifyInterval = 30 * time.Second
	}
	if c.Schedule.BatchSize == 0 {
		c.Schedule.BatchSize = 100
	}
}

// validate checks configuration for correctness. Missing api keys are allowed, they can be
// set at runtime and a call without a key fails for that call only.
func validate(cfg *Config) error {
	// validate feed config
	switch cfg.Feed.Provider {
	case ProviderFinnhub:
	case ProviderRSS:
		if len(cfg.Feed.RSS) == 0 {
			return fmt.Errorf("feed.rss is required for rss provider")
		}
		for _, category := range cfg.Feed.Categories {
			if _, ok := cfg.Feed.RSS[category]; !ok {
				return fmt.Errorf("feed.rss has no url for category %q", category)
			}
		}
	default:
		return fmt.Errorf("feed.provider must be %s or %s, got %q", ProviderFinnhub, ProviderRSS, cfg.Feed.Provider)
	}
	if cfg.Feed.MaxWorkers < 1 {
		return fmt.Errorf("feed.max_workers must be at least 1")
	}

	// validate LLM config
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.RequestsPerMinute < 0 {
		return fmt.Errorf("llm.requests_per_minute must be non-negative")
	}

	// validate schedule config
	if cfg.Schedule.IngestInterval < 0 || cfg.Schedule.ClassifyInterval < 0 {
		return fmt.Errorf("schedule intervals must be positive")
	}
	if cfg.Schedule.BatchSize < 1 {
		return fmt.Errorf("schedule.batch_size must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}
