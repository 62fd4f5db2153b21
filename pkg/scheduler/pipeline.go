package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/time/rate"

	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/pkg/llm"
)

// DefaultBatchSize is the number of unclassified articles taken per batch
const DefaultBatchSize = 100

// Pipeline classifies unclassified articles one by one with the model
type Pipeline struct {
	store   ArticleStore
	model   Model
	limiter *rate.Limiter // nil means unlimited
}

// ModelParams select the model endpoint and credentials for a batch
type ModelParams struct {
	Endpoint      string
	APIKey        string
	Name          string
	QualityWeight *float64
}

// BatchRequest defines one classification batch
type BatchRequest struct {
	Limit    int
	Model    ModelParams
	Continue func() bool // checked before each article, nil runs the whole batch
}

// NewPipeline makes classification pipeline. requestsPerMinute > 0 limits the model call rate.
func NewPipeline(store ArticleStore, model Model, requestsPerMinute int) *Pipeline {
	res := &Pipeline{store: store, model: model}
	if requestsPerMinute > 0 {
		res.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
	}
	return res
}

// RunBatch classifies up to req.Limit unclassified articles. Per-article failures are logged
// and counted, the returned error is set only if unclassified articles can't be loaded.
func (p *Pipeline) RunBatch(ctx context.Context, req BatchRequest) (domain.BatchResult, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	articles, err := p.store.FetchUnclassified(ctx, limit)
	if err != nil {
		return domain.BatchResult{}, fmt.Errorf("fetch unclassified articles: %w", err)
	}
	if len(articles) == 0 {
		lgr.Printf("[DEBUG] no unclassified articles found")
		return domain.BatchResult{}, nil
	}

	res := domain.BatchResult{Fetched: len(articles)}
	for _, article := range articles {
		if ctx.Err() != nil || (req.Continue != nil && !req.Continue()) {
			res.Aborted = true
			break
		}
		if err := p.classify(ctx, article, req.Model); err != nil {
			lgr.Printf("[WARN] %v", err)
			res.Failed++
			continue
		}
		res.Classified++
	}

	lgr.Printf("[INFO] classification batch done, fetched %d, classified %d, failed %d, aborted %v",
		res.Fetched, res.Classified, res.Failed, res.Aborted)
	return res, nil
}

// classify runs prompt, model call, parsing and commit for a single article
func (p *Pipeline) classify(ctx context.Context, article domain.Article, m ModelParams) error {
	prompt, err := llm.BuildPrompt(article)
	if err != nil {
		return &domain.ClassificationError{ArticleID: article.ID, Err: err}
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return &domain.ClassificationError{ArticleID: article.ID, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	resp, err := p.model.Complete(ctx, llm.CompletionRequest{
		Prompt:        prompt,
		Model:         m.Name,
		Endpoint:      m.Endpoint,
		APIKey:        m.APIKey,
		QualityWeight: m.QualityWeight,
	})
	if err != nil {
		return &domain.ClassificationError{ArticleID: article.ID, Err: err}
	}
	lgr.Printf("[DEBUG] classification response for article %d: %s", article.ID, resp.Content)

	classification, err := llm.ParseResponse(resp.Content)
	if err != nil {
		return &domain.ClassificationError{ArticleID: article.ID, Err: err}
	}
	classification.Model = resp.Model

	if err := p.store.CommitClassification(ctx, article.ID, classification); err != nil {
		var perr *domain.PersistenceError
		if errors.As(err, &perr) {
			return err
		}
		return &domain.PersistenceError{ArticleID: article.ID, Err: err}
	}

	category := "<none>"
	if classification.IndustryCategory != nil {
		category = *classification.IndustryCategory
	}
	lgr.Printf("[INFO] article %d classified, sentiment %d, category %s, model %s",
		article.ID, classification.Sentiment, category, classification.Model)
	return nil
}
