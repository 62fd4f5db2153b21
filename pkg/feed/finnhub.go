package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/newspulse/pkg/domain"
)

// DefaultFinnhubURL is the base URL of Finnhub REST API
const DefaultFinnhubURL = "https://finnhub.io/api/v1"

// FinnhubTokenHeader carries the api key
const FinnhubTokenHeader = "X-Finnhub-Token"

// FinnhubFetcher fetches market news from Finnhub
type FinnhubFetcher struct {
	baseURL string
	client  *http.Client
}

// finnhubNews is a single record of the /news response
type finnhubNews struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// NewFinnhubFetcher creates a new Finnhub fetcher, empty baseURL means DefaultFinnhubURL
func NewFinnhubFetcher(baseURL string, timeout time.Duration) *FinnhubFetcher {
	if baseURL == "" {
		baseURL = DefaultFinnhubURL
	}
	return &FinnhubFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the latest page of news for the requested category
func (f *FinnhubFetcher) Fetch(ctx context.Context, req domain.FetchRequest) ([]domain.RawArticle, error) {
	if req.APIKey == "" {
		return nil, fmt.Errorf("finnhub api key is not set")
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	params := url.Values{}
	params.Set("category", category)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/news?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	// token goes in a header, url is part of transport errors and those get logged
	httpReq.Header.Set(FinnhubTokenHeader, req.APIKey)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var news []finnhubNews
	if err := json.NewDecoder(resp.Body).Decode(&news); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}

	res := make([]domain.RawArticle, 0, len(news))
	for _, n := range news {
		if n.ID == 0 {
			continue // no identity to dedup on
		}
		res = append(res, domain.RawArticle{
			ExternalID: strconv.FormatInt(n.ID, 10),
			Headline:   n.Headline,
			Summary:    n.Summary,
			Category:   n.Category,
			URL:        n.URL,
			Image:      n.Image,
			Provider:   n.Source,
			Related:    splitSymbols(n.Related),
			Published:  n.Datetime,
		})
	}
	return res, nil
}

// splitSymbols converts comma-separated related symbols to a list
func splitSymbols(s string) []string {
	res := []string{}
	for _, sym := range strings.Split(s, ",") {
		if sym = strings.TrimSpace(sym); sym != "" {
			res = append(res, sym)
		}
	}
	return res
}
