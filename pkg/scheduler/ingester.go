package scheduler

import (
	"context"
	"errors"
	"sync"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newspulse/pkg/domain"
)

// Ingester pulls the latest articles from the feed for every configured category and
// stores them. Re-ingested articles update content only, classification is kept.
type Ingester struct {
	store      ArticleStore
	fetcher    Fetcher
	categories []string
	maxWorkers int
	apiKey     func() string
}

// NewIngester makes ingester. apiKey is called on every iteration so runtime settings apply
// without restart.
func NewIngester(store ArticleStore, fetcher Fetcher, categories []string, maxWorkers int, apiKey func() string) *Ingester {
	if len(categories) == 0 {
		categories = []string{"general"}
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if apiKey == nil {
		apiKey = func() string { return "" }
	}
	return &Ingester{store: store, fetcher: fetcher, categories: categories, maxWorkers: maxWorkers, apiKey: apiKey}
}

// Ingest performs one ingestion iteration and returns the number of stored articles.
// A failed category doesn't prevent others from being stored, the returned error joins
// all fetch failures.
func (i *Ingester) Ingest(ctx context.Context) (int, error) {
	key := i.apiKey()
	results := make([][]domain.RawArticle, len(i.categories))

	var mu sync.Mutex
	var fetchErrs []error

	g := errgroup.Group{}
	g.SetLimit(i.maxWorkers)
	for idx, category := range i.categories {
		g.Go(func() error {
			articles, err := i.fetcher.Fetch(ctx, domain.FetchRequest{Category: category, APIKey: key})
			if err != nil {
				fetchErr := &domain.FetchError{Category: category, Err: err}
				lgr.Printf("[WARN] %v", fetchErr)
				mu.Lock()
				fetchErrs = append(fetchErrs, fetchErr)
				mu.Unlock()
				return nil
			}
			lgr.Printf("[DEBUG] fetched %d articles for category %q", len(articles), category)
			results[idx] = articles
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors, failures are collected in fetchErrs

	stored := 0
	for _, articles := range results {
		for _, raw := range articles {
			article := raw.ToArticle()
			if err := i.store.UpsertArticle(ctx, &article); err != nil {
				lgr.Printf("[WARN] failed to store article %s: %v", raw.ExternalID, err)
				continue
			}
			stored++
		}
	}

	return stored, errors.Join(fetchErrs...)
}
