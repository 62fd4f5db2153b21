package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newspulse/pkg/config"
	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/pkg/feed"
	"github.com/umputun/newspulse/pkg/llm"
	"github.com/umputun/newspulse/pkg/repository"
	"github.com/umputun/newspulse/pkg/scheduler"
	"github.com/umputun/newspulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	WebDir string `long:"web-dir" env:"WEB_DIR" description:"dashboard static files directory, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	lgr.Printf("[INFO] starting newspulse version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run wires storage, feed, model and controller, then serves http until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.WebDir != "" {
		cfg.Server.WebDir = opts.WebDir
	}

	// re-setup logger with secrets from config, so they never appear in logs
	SetupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	ctrl := scheduler.NewController(scheduler.Params{
		Articles: repos.Article,
		Settings: repos.Setting,
		Fetcher:  makeFetcher(cfg.Feed),
		Model: llm.NewClient(llm.Options{
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.LLM.Timeout,
			UseJSONMode: cfg.LLM.UseJSONMode,
		}),
		Categories:              cfg.Feed.Categories,
		MaxWorkers:              cfg.Feed.MaxWorkers,
		IngestInterval:          cfg.Schedule.IngestInterval,
		ClassifyInterval:        cfg.Schedule.ClassifyInterval,
		BatchSize:               cfg.Schedule.BatchSize,
		RequestsPerMinute:       cfg.LLM.RequestsPerMinute,
		AutostartIngestion:      cfg.Schedule.AutostartIngestion,
		AutostartClassification: cfg.Schedule.AutostartClassification,
		Defaults: domain.Settings{
			LLMURL:              cfg.LLM.Endpoint,
			LLMAPIKey:           cfg.LLM.APIKey,
			LLMModel:            cfg.LLM.Model,
			FinnhubAPIKey:       cfg.Feed.APIKey,
			RouterQualityWeight: cfg.LLM.RouterQualityWeight,
		},
	})
	if err := ctrl.Start(ctx); err != nil {
		return fmt.Errorf("failed to start controller: %w", err)
	}
	defer ctrl.Shutdown()

	srv := server.New(server.Config{
		Listen:  cfg.Server.Listen,
		Timeout: cfg.Server.Timeout,
		WebDir:  cfg.Server.WebDir,
		Version: revision,
		Debug:   opts.Debug,
	}, ctrl)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func makeFetcher(cfg config.FeedConfig) scheduler.Fetcher {
	if cfg.Provider == config.ProviderRSS {
		lgr.Printf("[INFO] using rss feeds for %d categories", len(cfg.RSS))
		return feed.NewRSSFetcher(cfg.RSS, cfg.Timeout)
	}
	lgr.Printf("[INFO] using finnhub news api at %s", cfg.BaseURL)
	return feed.NewFinnhubFetcher(cfg.BaseURL, cfg.Timeout)
}

func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Feed.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// SetupLog configures lgr and std logger, secrets are masked in output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
