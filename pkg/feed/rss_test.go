package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspulse/pkg/domain"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Market Wire</title>
  <link>https://example.com</link>
  <description>test feed</description>
  <item>
    <title>Chipmaker beats estimates</title>
    <link>https://example.com/a1</link>
    <guid>guid-a1</guid>
    <description>&lt;p&gt;Revenue &lt;b&gt;up&lt;/b&gt; 20%&lt;/p&gt;</description>
    <pubDate>Tue, 14 Nov 2023 22:13:20 GMT</pubDate>
  </item>
  <item>
    <title>Oil slides</title>
    <link>https://example.com/a2</link>
    <description>plain text</description>
  </item>
</channel>
</rss>`

func TestRSSFetcher_Fetch(t *testing.T) {
	var userAgent, accept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent, accept = r.Header.Get("User-Agent"), r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	defer ts.Close()

	f := NewRSSFetcher(map[string]string{"markets": ts.URL}, 5*time.Second)
	res, err := f.Fetch(context.Background(), domain.FetchRequest{Category: "markets"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, UserAgent, userAgent)
	assert.Contains(t, accept, "application/rss+xml")

	assert.Equal(t, "guid-a1", res[0].ExternalID)
	assert.Equal(t, "Chipmaker beats estimates", res[0].Headline)
	assert.Equal(t, "Revenue up 20%", res[0].Summary)
	assert.Equal(t, "markets", res[0].Category)
	assert.Equal(t, "Market Wire", res[0].Provider)
	assert.Equal(t, "https://example.com/a1", res[0].URL)
	assert.Equal(t, int64(1700000000), res[0].Published)

	// no guid, identity derived from link and title
	assert.Len(t, res[1].ExternalID, 40)
	assert.Equal(t, "plain text", res[1].Summary)

	again, err := f.Fetch(context.Background(), domain.FetchRequest{Category: "markets"})
	require.NoError(t, err)
	assert.Equal(t, res[1].ExternalID, again[1].ExternalID)
}

func TestRSSFetcher_Errors(t *testing.T) {
	f := NewRSSFetcher(map[string]string{"markets": "http://127.0.0.1:1/feed"}, time.Second)

	_, err := f.Fetch(context.Background(), domain.FetchRequest{Category: "unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no feed configured")

	_, err = f.Fetch(context.Background(), domain.FetchRequest{Category: "markets"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch feed")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer ts.Close()

	f = NewRSSFetcher(map[string]string{"markets": ts.URL + "/feed", "forex": ts.URL + "/missing"}, time.Second)
	_, err = f.Fetch(context.Background(), domain.FetchRequest{Category: "markets"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")

	_, err = f.Fetch(context.Background(), domain.FetchRequest{Category: "forex"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 404")
}
