package domain

import (
	"fmt"
	"time"
)

// NoCategory is stored when the model response has no company_category key at all
const NoCategory = "None"

// Article represents a stored news article with its classification state
type Article struct {
	ID         int64
	ExternalID string
	Headline   string
	Summary    string
	Category   string
	URL        string
	Image      string
	Provider   string
	Related    []string
	Published  int64 // unix seconds

	// classification outputs, nil until classified
	Sentiment           *int
	IndustryCategory    *string
	ClassificationModel *string
	Classified          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RawArticle is an article as returned by an external feed, before it is stored
type RawArticle struct {
	ExternalID string
	Headline   string
	Summary    string
	Category   string
	URL        string
	Image      string
	Provider   string
	Related    []string
	Published  int64
}

// ToArticle converts raw feed record to an unclassified article
func (r RawArticle) ToArticle() Article {
	return Article{
		ExternalID: r.ExternalID,
		Headline:   r.Headline,
		Summary:    r.Summary,
		Category:   r.Category,
		URL:        r.URL,
		Image:      r.Image,
		Provider:   r.Provider,
		Related:    r.Related,
		Published:  r.Published,
	}
}

// Classification is the result of one successful model call for an article
type Classification struct {
	Sentiment        int
	IndustryCategory *string // nil if the model declined to name one
	Ticker           *string // reported by the model, not persisted
	Reasoning        string  // reported by the model, not persisted
	Model            string  // identifier reported by the model call
}

// ArticleView is the presentation projection of an article
type ArticleView struct {
	ID                  int64   `json:"id"`
	ExternalID          string  `json:"finnhub_id"`
	Date                string  `json:"date"`
	Title               string  `json:"title"`
	Sentiment           *int    `json:"sentiment"`
	IndustryCategory    *string `json:"industry_category"`
	ClassificationModel *string `json:"classification_model"`
	Provider            *string `json:"provider"`
}

// ArticleCounts holds totals of classified and unclassified articles
type ArticleCounts struct {
	Classified   int64 `json:"classified"`
	Unclassified int64 `json:"unclassified"`
}

// ArticleFilter selects which articles to list
type ArticleFilter string

// enum of article filters
const (
	FilterAll          ArticleFilter = "all"
	FilterClassified   ArticleFilter = "classified"
	FilterUnclassified ArticleFilter = "unclassified"
)

// ParseArticleFilter converts query values true|false|all (and the filter names) to ArticleFilter
func ParseArticleFilter(s string) (ArticleFilter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "true", "classified":
		return FilterClassified, nil
	case "false", "unclassified":
		return FilterUnclassified, nil
	}
	return "", fmt.Errorf("invalid article filter %q", s)
}

// View builds presentation record, classification fields are dropped for unclassified articles
func (a Article) View() ArticleView {
	v := ArticleView{
		ID:         a.ID,
		ExternalID: a.ExternalID,
		Date:       time.Unix(a.Published, 0).Format(time.DateTime),
		Title:      a.Headline,
	}
	if a.Classified {
		provider := a.Provider
		v.Sentiment = a.Sentiment
		v.IndustryCategory = a.IndustryCategory
		v.ClassificationModel = a.ClassificationModel
		v.Provider = &provider
	}
	return v
}

// FetchRequest describes one call to an external feed
type FetchRequest struct {
	Category string
	APIKey   string
}

// BatchResult summarizes one classification batch
type BatchResult struct {
	Fetched    int  `json:"fetched"`
	Classified int  `json:"classified"`
	Failed     int  `json:"failed"`
	Aborted    bool `json:"aborted"`
}

// RunStatus reports whether ingestion and classification loops are active
type RunStatus struct {
	IngestionActive      bool `json:"is_polling"`
	ClassificationActive bool `json:"is_classifying"`
}
