package feed

import (
	"context"
	"crypto/sha1" //nolint:gosec // used for identity only
	"encoding/hex"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newspulse/pkg/domain"
)

// UserAgent is sent with every feed request
const UserAgent = "Mozilla/5.0 (compatible; newspulse/1.0)"

// RSSFetcher fetches RSS/Atom feeds. Each configured category maps to a feed URL.
type RSSFetcher struct {
	client    *http.Client
	sanitizer *bluemonday.Policy
	feeds     map[string]string
}

// NewRSSFetcher creates a new feed fetcher for category -> url map
func NewRSSFetcher(feeds map[string]string, timeout time.Duration) *RSSFetcher {
	return &RSSFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sanitizer: bluemonday.StrictPolicy(),
		feeds:     feeds,
	}
}

// Fetch retrieves and parses the feed configured for the requested category
func (f *RSSFetcher) Fetch(ctx context.Context, req domain.FetchRequest) ([]domain.RawArticle, error) {
	feedURL, ok := f.feeds[req.Category]
	if !ok {
		return nil, fmt.Errorf("no feed configured for category %q", req.Category)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", UserAgent)
	addBrowserHeaders(httpReq)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %s: unexpected status code %d", feedURL, resp.StatusCode)
	}

	// parser keeps state while parsing, categories are fetched concurrently
	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	res := make([]domain.RawArticle, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		article := domain.RawArticle{
			ExternalID: itemID(item),
			Headline:   strings.TrimSpace(item.Title),
			Summary:    f.cleanText(item.Description),
			Category:   req.Category,
			URL:        item.Link,
			Provider:   parsed.Title,
			Related:    []string{},
		}
		if article.Summary == "" {
			article.Summary = f.cleanText(item.Content)
		}
		if item.Image != nil {
			article.Image = item.Image.URL
		}
		switch {
		case item.PublishedParsed != nil:
			article.Published = item.PublishedParsed.Unix()
		case item.UpdatedParsed != nil:
			article.Published = item.UpdatedParsed.Unix()
		default:
			article.Published = time.Now().Unix()
		}
		res = append(res, article)
	}
	return res, nil
}

// cleanText strips markup from feed html
func (f *RSSFetcher) cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(f.sanitizer.Sanitize(s)))
}

// itemID returns GUID of an item, or a stable hash of link and title if the feed has no GUIDs
func itemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	h := sha1.Sum([]byte(item.Link + "|" + item.Title)) //nolint:gosec // not a security context
	return hex.EncodeToString(h[:])
}
