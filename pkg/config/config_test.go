package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("TEST_FINNHUB_KEY", "fh-secret")
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  web_dir: ./web

feed:
  provider: finnhub
  api_key: ${TEST_FINNHUB_KEY}
  categories: [general, forex]
  max_workers: 2

llm:
  endpoint: http://localhost:11434/v1
  model: llama3
  use_json_mode: true
  router_quality_weight: 0.8
  requests_per_minute: 60

schedule:
  ingest_interval: 1m
  classify_interval: 10s
  batch_size: 20
  autostart_classification: true
`)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "./web", cfg.Server.WebDir)

		assert.Equal(t, ProviderFinnhub, cfg.Feed.Provider)
		assert.Equal(t, "fh-secret", cfg.Feed.APIKey)
		assert.Equal(t, []string{"general", "forex"}, cfg.Feed.Categories)
		assert.Equal(t, 2, cfg.Feed.MaxWorkers)
		assert.Equal(t, "https://finnhub.io/api/v1", cfg.Feed.BaseURL)

		assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.True(t, cfg.LLM.UseJSONMode)
		require.NotNil(t, cfg.LLM.RouterQualityWeight)
		assert.InDelta(t, 0.8, *cfg.LLM.RouterQualityWeight, 0.0001)
		assert.Equal(t, 60, cfg.LLM.RequestsPerMinute)

		assert.Equal(t, time.Minute, cfg.Schedule.IngestInterval)
		assert.Equal(t, 10*time.Second, cfg.Schedule.ClassifyInterval)
		assert.Equal(t, 20, cfg.Schedule.BatchSize)
		assert.False(t, cfg.Schedule.AutostartIngestion)
		assert.True(t, cfg.Schedule.AutostartClassification)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8080\"\n"))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		// check server defaults
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Empty(t, cfg.Server.WebDir)

		// check database defaults
		assert.Equal(t, "file:newspulse.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)

		// check feed defaults
		assert.Equal(t, ProviderFinnhub, cfg.Feed.Provider)
		assert.Equal(t, []string{"general"}, cfg.Feed.Categories)
		assert.Equal(t, 30*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, 5, cfg.Feed.MaxWorkers)
		assert.Empty(t, cfg.Feed.APIKey)

		// check llm defaults, missing api key is allowed
		assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "gpt-4o-2024-05-13", cfg.LLM.Model)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.0001)
		assert.Equal(t, 500, cfg.LLM.MaxTokens)
		assert.Nil(t, cfg.LLM.RouterQualityWeight)
		assert.Empty(t, cfg.LLM.APIKey)

		// check schedule defaults
		assert.Equal(t, 30*time.Second, cfg.Schedule.IngestInterval)
		assert.Equal(t, 30*time.Second, cfg.Schedule.ClassifyInterval)
		assert.Equal(t, 100, cfg.Schedule.BatchSize)
	})

	t.Run("rss provider", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
feed:
  provider: rss
  rss:
    tech: https://example.com/tech.xml
    markets: https://example.com/markets.xml
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"markets", "tech"}, cfg.Feed.Categories)
		assert.Empty(t, cfg.Feed.BaseURL)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "feed:\n  provider: kafka\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "validate config")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.setDefaults()
		return cfg
	}

	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{name: "defaults are valid", modify: func(c *Config) {}},
		{name: "unknown provider", modify: func(c *Config) { c.Feed.Provider = "kafka" }, errMsg: "feed.provider"},
		{name: "rss without feeds", modify: func(c *Config) { c.Feed.Provider = ProviderRSS }, errMsg: "feed.rss is required"},
		{name: "rss category without url", modify: func(c *Config) {
			c.Feed.Provider = ProviderRSS
			c.Feed.RSS = map[string]string{"tech": "https://example.com/tech.xml"}
			c.Feed.Categories = []string{"tech", "sports"}
		}, errMsg: `no url for category "sports"`},
		{name: "zero workers", modify: func(c *Config) { c.Feed.MaxWorkers = -1 }, errMsg: "feed.max_workers"},
		{name: "temperature too high", modify: func(c *Config) { c.LLM.Temperature = 2.5 }, errMsg: "llm.temperature"},
		{name: "negative rate", modify: func(c *Config) { c.LLM.RequestsPerMinute = -1 }, errMsg: "requests_per_minute"},
		{name: "negative interval", modify: func(c *Config) { c.Schedule.IngestInterval = -time.Second }, errMsg: "intervals"},
		{name: "zero batch", modify: func(c *Config) { c.Schedule.BatchSize = 0 }, errMsg: "batch_size"},
		{name: "short server timeout", modify: func(c *Config) { c.Server.Timeout = time.Millisecond }, errMsg: "server timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validate(cfg)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
