package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newspulse/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID         int64      `db:"id"`
	ExternalID string     `db:"external_id"`
	Headline   string     `db:"headline"`
	Summary    string     `db:"summary"`
	Category   string     `db:"category"`
	URL        string     `db:"url"`
	Image      string     `db:"image"`
	Provider   string     `db:"provider"`
	Related    relatedSQL `db:"related"`
	Published  int64      `db:"published"`

	// classification outputs
	MarketSentiment     sql.NullInt64  `db:"market_sentiment"`
	IndustryCategory    sql.NullString `db:"industry_category"`
	ClassificationModel sql.NullString `db:"classification_model"`
	IsClassified        bool           `db:"is_classified"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// relatedSQL is a JSON array of related symbols for SQL operations
type relatedSQL []string

// Value implements driver.Valuer for database storage
func (r relatedSQL) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(r))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (r *relatedSQL) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*r = relatedSQL{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected type %T for related symbols", value)
	}
	if len(data) == 0 {
		*r = relatedSQL{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(r))
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// UpsertArticle inserts a new article or updates content fields of the existing one with
// the same external id. Classification columns are never touched. Sets article.ID.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (
			external_id, headline, summary, category, url, image, provider, related, published
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			headline = excluded.headline,
			summary = excluded.summary,
			category = excluded.category,
			url = excluded.url,
			image = excluded.image,
			provider = excluded.provider,
			related = excluded.related,
			published = excluded.published,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`
	var id int64
	err := withLockRetry(ctx, func() error {
		return r.db.GetContext(ctx, &id, query, article.ExternalID, article.Headline, article.Summary,
			article.Category, article.URL, article.Image, article.Provider, relatedSQL(article.Related), article.Published)
	})
	if err != nil {
		return fmt.Errorf("upsert article %s: %w", article.ExternalID, err)
	}
	article.ID = id
	return nil
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var rec articleSQL
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %d: %w", id, domain.ErrArticleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	article := rec.toDomain()
	return &article, nil
}

// FetchUnclassified returns up to limit articles not classified yet, in store order
func (r *ArticleRepository) FetchUnclassified(ctx context.Context, limit int) ([]domain.Article, error) {
	var recs []articleSQL
	err := r.db.SelectContext(ctx, &recs, "SELECT * FROM articles WHERE is_classified = 0 ORDER BY id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("fetch unclassified articles: %w", err)
	}

	res := make([]domain.Article, 0, len(recs))
	for _, rec := range recs {
		res = append(res, rec.toDomain())
	}
	return res, nil
}

// CommitClassification marks article as classified and stores the outputs in one statement.
// Returns *domain.PersistenceError if the article is gone or the write failed.
func (r *ArticleRepository) CommitClassification(ctx context.Context, articleID int64, c domain.Classification) error {
	query := `
		UPDATE articles
		SET is_classified = 1,
		    market_sentiment = ?,
		    industry_category = ?,
		    classification_model = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	var category sql.NullString
	if c.IndustryCategory != nil {
		category = sql.NullString{String: *c.IndustryCategory, Valid: true}
	}

	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, c.Sentiment, category, c.Model, articleID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return &domain.PersistenceError{ArticleID: articleID, Err: fmt.Errorf("update classification: %w", err)}
	}
	if affected == 0 {
		return &domain.PersistenceError{ArticleID: articleID, Err: domain.ErrArticleNotFound}
	}
	return nil
}

// ResetAllClassifications clears classification flag and outputs on every article
func (r *ArticleRepository) ResetAllClassifications(ctx context.Context) (int64, error) {
	query := `
		UPDATE articles
		SET is_classified = 0,
		    market_sentiment = NULL,
		    industry_category = NULL,
		    classification_model = NULL,
		    updated_at = CURRENT_TIMESTAMP
	`
	var affected int64
	err := withLockRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("reset classifications: %w", err)
	}
	return affected, nil
}

// ListArticles returns presentation records matching filter, newest first
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
	articles, err := r.listArticles(ctx, filter)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ArticleView, 0, len(articles))
	for _, a := range articles {
		res = append(res, a.View())
	}
	return res, nil
}

// ListClassified returns all classified articles with full content, newest first
func (r *ArticleRepository) ListClassified(ctx context.Context) ([]domain.Article, error) {
	return r.listArticles(ctx, domain.FilterClassified)
}

// Counts returns number of classified and unclassified articles
func (r *ArticleRepository) Counts(ctx context.Context) (domain.ArticleCounts, error) {
	var res struct {
		Classified   sql.NullInt64 `db:"classified"`
		Unclassified sql.NullInt64 `db:"unclassified"`
	}
	query := `
		SELECT
			SUM(CASE WHEN is_classified = 1 THEN 1 ELSE 0 END) AS classified,
			SUM(CASE WHEN is_classified = 0 THEN 1 ELSE 0 END) AS unclassified
		FROM articles
	`
	if err := r.db.GetContext(ctx, &res, query); err != nil {
		return domain.ArticleCounts{}, fmt.Errorf("count articles: %w", err)
	}
	return domain.ArticleCounts{Classified: res.Classified.Int64, Unclassified: res.Unclassified.Int64}, nil
}

func (r *ArticleRepository) listArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	query := "SELECT * FROM articles"
	switch filter {
	case domain.FilterClassified:
		query += " WHERE is_classified = 1"
	case domain.FilterUnclassified:
		query += " WHERE is_classified = 0"
	case domain.FilterAll, "":
	default:
		return nil, fmt.Errorf("unsupported article filter %q", filter)
	}
	query += " ORDER BY published DESC, id DESC"

	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	res := make([]domain.Article, 0, len(recs))
	for _, rec := range recs {
		res = append(res, rec.toDomain())
	}
	return res, nil
}

// toDomain converts articleSQL to domain.Article, classification outputs of an
// unclassified row are dropped even if stale values are present
func (a *articleSQL) toDomain() domain.Article {
	res := domain.Article{
		ID:         a.ID,
		ExternalID: a.ExternalID,
		Headline:   a.Headline,
		Summary:    a.Summary,
		Category:   a.Category,
		URL:        a.URL,
		Image:      a.Image,
		Provider:   a.Provider,
		Related:    []string(a.Related),
		Published:  a.Published,
		Classified: a.IsClassified,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if !a.IsClassified {
		return res
	}
	if a.MarketSentiment.Valid {
		v := int(a.MarketSentiment.Int64)
		res.Sentiment = &v
	}
	if a.IndustryCategory.Valid {
		v := a.IndustryCategory.String
		res.IndustryCategory = &v
	}
	if a.ClassificationModel.Valid {
		v := a.ClassificationModel.String
		res.ClassificationModel = &v
	}
	return res
}
