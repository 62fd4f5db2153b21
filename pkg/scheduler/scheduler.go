package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/pkg/llm"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/model.go -pkg mocks -skip-ensure -fmt goimports . Model

// ArticleStore persists articles and their classification
type ArticleStore interface {
	UpsertArticle(ctx context.Context, article *domain.Article) error
	FetchUnclassified(ctx context.Context, limit int) ([]domain.Article, error)
	CommitClassification(ctx context.Context, articleID int64, c domain.Classification) error
	ResetAllClassifications(ctx context.Context) (int64, error)
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error)
	ListClassified(ctx context.Context) ([]domain.Article, error)
	Counts(ctx context.Context) (domain.ArticleCounts, error)
}

// SettingStore persists runtime settings
type SettingStore interface {
	LoadJSON(ctx context.Context, key string, v any) (bool, error)
	SaveJSON(ctx context.Context, key string, v any) error
}

// Fetcher retrieves latest articles from the external feed
type Fetcher interface {
	Fetch(ctx context.Context, req domain.FetchRequest) ([]domain.RawArticle, error)
}

// Model is an external chat model
type Model interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (llm.Completion, error)
}

// Params defines controller dependencies and configuration
type Params struct {
	Articles ArticleStore
	Settings SettingStore
	Fetcher  Fetcher
	Model    Model

	Categories        []string
	MaxWorkers        int
	IngestInterval    time.Duration
	ClassifyInterval  time.Duration
	BatchSize         int
	RequestsPerMinute int

	AutostartIngestion      bool
	AutostartClassification bool

	Defaults domain.Settings // initial settings from config, persisted overrides are applied on Start
}

// Controller owns run-state of the ingestion and classification loops and exposes
// the operations used by the HTTP layer.
type Controller struct {
	articles     ArticleStore
	settingStore SettingStore
	ingester     *Ingester
	pipeline     *Pipeline
	batchSize    int

	ingestion      *loop
	classification *loop
	batchMu        sync.Mutex // one classification batch at a time, loop or manual

	autostartIngestion      bool
	autostartClassification bool

	ctx    context.Context // lifetime context for loops and external calls
	cancel context.CancelFunc

	settingsMu sync.RWMutex
	defaults   domain.Settings
	overrides  domain.SettingsUpdate
}

// NewController makes controller with both loops stopped
func NewController(p Params) *Controller {
	if p.IngestInterval <= 0 {
		p.IngestInterval = 30 * time.Second
	}
	if p.ClassifyInterval <= 0 {
		p.ClassifyInterval = 30 * time.Second
	}
	if p.BatchSize <= 0 {
		p.BatchSize = DefaultBatchSize
	}

	res := &Controller{
		articles:                p.Articles,
		settingStore:            p.Settings,
		pipeline:                NewPipeline(p.Articles, p.Model, p.RequestsPerMinute),
		batchSize:               p.BatchSize,
		autostartIngestion:      p.AutostartIngestion,
		autostartClassification: p.AutostartClassification,
		defaults:                p.Defaults,
	}
	res.ctx, res.cancel = context.WithCancel(context.Background())
	res.ingester = NewIngester(p.Articles, p.Fetcher, p.Categories, p.MaxWorkers,
		func() string { return res.Settings().FinnhubAPIKey })
	res.ingestion = newLoop("ingestion", p.IngestInterval, res.ingestIteration)
	res.classification = newLoop("classification", p.ClassifyInterval, res.classifyIteration)
	return res
}

// Start loads persisted settings overrides, binds controller lifetime to ctx and starts
// loops enabled for autostart
func (c *Controller) Start(ctx context.Context) error {
	if c.settingStore != nil {
		var upd domain.SettingsUpdate
		found, err := c.settingStore.LoadJSON(ctx, domain.SettingRuntimeOverrides, &upd)
		if err != nil {
			return fmt.Errorf("load runtime settings: %w", err)
		}
		if found {
			c.settingsMu.Lock()
			c.overrides = upd
			c.settingsMu.Unlock()
			lgr.Printf("[INFO] runtime settings overrides loaded")
		}
	}

	context.AfterFunc(ctx, c.cancel)

	if c.autostartIngestion {
		c.StartIngestion()
	}
	if c.autostartClassification {
		c.StartClassification()
	}
	return nil
}

// Shutdown cancels in-flight external calls and waits for loop goroutines to exit
func (c *Controller) Shutdown() {
	c.ingestion.halt()
	c.classification.halt()
	c.cancel()
	c.ingestion.wait()
	c.classification.wait()
	lgr.Printf("[INFO] controller stopped")
}

// StartIngestion starts ingestion loop, started is false if it was already running
func (c *Controller) StartIngestion() (started bool, status domain.RunStatus) {
	started = c.ingestion.start(c.ctx)
	if !started {
		lgr.Printf("[DEBUG] ingestion already running")
	}
	return started, c.Status()
}

// StopIngestion requests ingestion loop to stop, in-flight fetch completes
func (c *Controller) StopIngestion() domain.RunStatus {
	if c.ingestion.halt() {
		lgr.Printf("[INFO] ingestion stop requested")
	}
	return c.Status()
}

// StartClassification starts classification loop, started is false if it was already running
func (c *Controller) StartClassification() (started bool, status domain.RunStatus) {
	started = c.classification.start(c.ctx)
	if !started {
		lgr.Printf("[DEBUG] classification already running")
	}
	return started, c.Status()
}

// StopClassification requests classification loop to stop. The article being classified
// is committed, remaining articles of the batch stay unclassified.
func (c *Controller) StopClassification() domain.RunStatus {
	if c.classification.halt() {
		lgr.Printf("[INFO] classification stop requested")
	}
	return c.Status()
}

// Status returns current run-state of both loops
func (c *Controller) Status() domain.RunStatus {
	return domain.RunStatus{
		IngestionActive:      c.ingestion.active(),
		ClassificationActive: c.classification.active(),
	}
}

// RunClassificationBatch runs a single batch synchronously with current settings.
// Shutdown ends the batch between articles, the article in progress is committed.
func (c *Controller) RunClassificationBatch(ctx context.Context, batchSize int) (domain.BatchResult, error) {
	if batchSize <= 0 {
		batchSize = c.batchSize
	}
	c.batchMu.Lock()
	defer c.batchMu.Unlock()
	return c.pipeline.RunBatch(ctx, BatchRequest{
		Limit:    batchSize,
		Model:    c.modelParams(),
		Continue: func() bool { return c.ctx.Err() == nil },
	})
}

// ListArticles returns presentation records for the filter
func (c *Controller) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
	return c.articles.ListArticles(ctx, filter)
}

// ListClassified returns classified articles
func (c *Controller) ListClassified(ctx context.Context) ([]domain.Article, error) {
	return c.articles.ListClassified(ctx)
}

// Counts returns classified and unclassified totals
func (c *Controller) Counts(ctx context.Context) (domain.ArticleCounts, error) {
	return c.articles.Counts(ctx)
}

// ResetAllClassifications marks every article unclassified
func (c *Controller) ResetAllClassifications(ctx context.Context) (int64, error) {
	n, err := c.articles.ResetAllClassifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset classifications: %w", err)
	}
	lgr.Printf("[INFO] classifications reset for %d articles", n)
	return n, nil
}

// Settings returns effective runtime settings
func (c *Controller) Settings() domain.Settings {
	c.settingsMu.RLock()
	defer c.settingsMu.RUnlock()
	return c.defaults.Apply(c.overrides)
}

// UpdateSettings persists the partial update and applies it to subsequent loop iterations
func (c *Controller) UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	merged := c.overrides.Merge(upd)
	if c.settingStore != nil {
		if err := c.settingStore.SaveJSON(ctx, domain.SettingRuntimeOverrides, merged); err != nil {
			return domain.Settings{}, fmt.Errorf("save runtime settings: %w", err)
		}
	}
	c.overrides = merged
	lgr.Printf("[INFO] runtime settings updated")
	return c.defaults.Apply(c.overrides), nil
}

func (c *Controller) modelParams() ModelParams {
	s := c.Settings()
	return ModelParams{
		Endpoint:      s.LLMURL,
		APIKey:        s.LLMAPIKey,
		Name:          s.LLMModel,
		QualityWeight: s.RouterQualityWeight,
	}
}

func (c *Controller) ingestIteration(ctx context.Context, _ <-chan struct{}) {
	n, err := c.ingester.Ingest(ctx)
	if err != nil {
		lgr.Printf("[WARN] ingestion finished with errors: %v", err)
	}
	lgr.Printf("[INFO] ingestion stored %d articles", n)
}

func (c *Controller) classifyIteration(ctx context.Context, stop <-chan struct{}) {
	c.batchMu.Lock()
	defer c.batchMu.Unlock()
	req := BatchRequest{
		Limit:    c.batchSize,
		Model:    c.modelParams(),
		Continue: func() bool { return !stopped(stop) },
	}
	if _, err := c.pipeline.RunBatch(ctx, req); err != nil {
		lgr.Printf("[ERROR] classification batch failed: %v", err)
	}
}
