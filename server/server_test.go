package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newspulse/pkg/domain"
	"github.com/umputun/newspulse/server/mocks"
)

func doRequest(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader = http.NoBody
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reqBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_RunStateRoutes(t *testing.T) {
	status := domain.RunStatus{}
	ctrl := &mocks.ControllerMock{
		StatusFunc: func() domain.RunStatus { return status },
		StartIngestionFunc: func() (bool, domain.RunStatus) {
			started := !status.IngestionActive
			status.IngestionActive = true
			return started, status
		},
		StopIngestionFunc: func() domain.RunStatus {
			status.IngestionActive = false
			return status
		},
		StartClassificationFunc: func() (bool, domain.RunStatus) {
			started := !status.ClassificationActive
			status.ClassificationActive = true
			return started, status
		},
		StopClassificationFunc: func() domain.RunStatus {
			status.ClassificationActive = false
			return status
		},
	}
	srv := New(Config{Version: "1.0.0"}, ctrl)

	w := doRequest(t, srv, "GET", "/polling_status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"is_polling": false, "is_classifying": false}, decodeBody(t, w))

	w = doRequest(t, srv, "GET", "/start_polling", "")
	assert.Equal(t, map[string]any{"is_polling": true, "is_classifying": false}, decodeBody(t, w))

	w = doRequest(t, srv, "GET", "/start_classifying", "")
	assert.Equal(t, map[string]any{"status": "Classification started in the background"}, decodeBody(t, w))

	w = doRequest(t, srv, "GET", "/start_classifying", "")
	assert.Equal(t, map[string]any{"status": "Classification already in progress"}, decodeBody(t, w))
	assert.Len(t, ctrl.StartClassificationCalls(), 2)

	w = doRequest(t, srv, "GET", "/stop_classifying", "")
	assert.Equal(t, map[string]any{"is_polling": true, "is_classifying": false}, decodeBody(t, w))

	w = doRequest(t, srv, "GET", "/stop_polling", "")
	assert.Equal(t, map[string]any{"is_polling": false, "is_classifying": false}, decodeBody(t, w))

	// wrong method is not routed, router with global middleware answers 404
	w = doRequest(t, srv, "POST", "/start_polling", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, ctrl.StartIngestionCalls(), 1)
}

func TestServer_ListArticles(t *testing.T) {
	sentiment, category, model, provider := 4, "Tech", "gpt-4o", "Reuters"
	ctrl := &mocks.ControllerMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
			if filter == domain.FilterUnclassified {
				return nil, nil
			}
			return []domain.ArticleView{
				{ID: 1, ExternalID: "7001", Date: "2023-11-14 22:13:20", Title: "Chipmaker beats estimates",
					Sentiment: &sentiment, IndustryCategory: &category, ClassificationModel: &model, Provider: &provider},
				{ID: 2, ExternalID: "7002", Date: "2023-11-14 22:10:00", Title: "Oil slides"},
			}, nil
		},
	}
	srv := New(Config{}, ctrl)

	w := doRequest(t, srv, "GET", "/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Articles []map[string]any `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, map[string]any{
		"id": float64(1), "finnhub_id": "7001", "date": "2023-11-14 22:13:20", "title": "Chipmaker beats estimates",
		"sentiment": float64(4), "industry_category": "Tech", "classification_model": "gpt-4o", "provider": "Reuters",
	}, resp.Articles[0])
	assert.Nil(t, resp.Articles[1]["sentiment"])
	assert.Contains(t, resp.Articles[1], "industry_category")
	assert.Nil(t, resp.Articles[1]["provider"])
	assert.Equal(t, domain.FilterAll, ctrl.ListArticlesCalls()[0].Filter)

	w = doRequest(t, srv, "GET", "/articles?classified=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.FilterClassified, ctrl.ListArticlesCalls()[1].Filter)

	w = doRequest(t, srv, "GET", "/articles?classified=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"articles":[]}`, w.Body.String())

	w = doRequest(t, srv, "GET", "/articles?classified=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, ctrl.ListArticlesCalls(), 3)

	ctrl.ListArticlesFunc = func(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleView, error) {
		return nil, errors.New("db closed")
	}
	w = doRequest(t, srv, "GET", "/articles", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "db closed", decodeBody(t, w)["error"])
}

func TestServer_ClassifiedArticles(t *testing.T) {
	sentiment, category, model := -2, "Energy", "gpt-4o"
	ctrl := &mocks.ControllerMock{
		ListClassifiedFunc: func(ctx context.Context) ([]domain.Article, error) {
			return []domain.Article{{ID: 3, ExternalID: "9", Headline: "Oil slides", Published: 1700000000,
				Related: []string{"XOM"}, Sentiment: &sentiment, IndustryCategory: &category, ClassificationModel: &model,
				Classified: true}}, nil
		},
		CountsFunc: func(ctx context.Context) (domain.ArticleCounts, error) {
			return domain.ArticleCounts{Classified: 1, Unclassified: 12}, nil
		},
	}
	srv := New(Config{}, ctrl)

	w := doRequest(t, srv, "GET", "/classified_articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Articles          []map[string]any `json:"classified_articles"`
		UnclassifiedCount int64            `json:"unclassified_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.UnclassifiedCount)
	require.Len(t, resp.Articles, 1)
	assert.InDelta(t, -2, resp.Articles[0]["market_sentiment"], 0)
	assert.Equal(t, "Energy", resp.Articles[0]["industry_category"])
	assert.Equal(t, true, resp.Articles[0]["is_classified"])
	assert.InDelta(t, 1700000000, resp.Articles[0]["datetime"], 0)
}

func TestServer_ResetClassifications(t *testing.T) {
	ctrl := &mocks.ControllerMock{
		ResetAllClassificationsFunc: func(ctx context.Context) (int64, error) { return 5, nil },
	}
	srv := New(Config{}, ctrl)

	w := doRequest(t, srv, "GET", "/reset_classifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Classifications reset.", decodeBody(t, w)["message"])
	assert.Len(t, ctrl.ResetAllClassificationsCalls(), 1)

	ctrl.ResetAllClassificationsFunc = func(ctx context.Context) (int64, error) { return 0, errors.New("locked") }
	w = doRequest(t, srv, "GET", "/reset_classifications", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_Settings(t *testing.T) {
	weight := 0.5
	current := domain.Settings{LLMURL: "https://api.openai.com/v1", LLMAPIKey: "sk-secret", LLMModel: "gpt-4o",
		RouterQualityWeight: &weight}
	ctrl := &mocks.ControllerMock{
		SettingsFunc: func() domain.Settings { return current },
		UpdateSettingsFunc: func(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
			current = current.Apply(upd)
			return current, nil
		},
	}
	srv := New(Config{}, ctrl)

	w := doRequest(t, srv, "GET", "/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"llmUrl":"https://api.openai.com/v1","llmApiKey":"***","llmModel":"gpt-4o",
		"finnhubApiKey":null,"routerQualityWeight":0.5}`, w.Body.String())

	w = doRequest(t, srv, "POST", "/settings", `{"finnhubApiKey":"fh-new","llmUrl":null,"routerQualityWeight":0.9}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Settings updated successfully", decodeBody(t, w)["message"])

	calls := ctrl.UpdateSettingsCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Upd.FinnhubAPIKey)
	assert.Equal(t, "fh-new", *calls[0].Upd.FinnhubAPIKey)
	assert.Nil(t, calls[0].Upd.LLMURL, "null leaves the value unchanged")
	assert.Nil(t, calls[0].Upd.LLMAPIKey)

	w = doRequest(t, srv, "GET", "/settings", "")
	assert.JSONEq(t, `{"llmUrl":"https://api.openai.com/v1","llmApiKey":"***","llmModel":"gpt-4o",
		"finnhubApiKey":"***","routerQualityWeight":0.9}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "fh-new")
	assert.NotContains(t, w.Body.String(), "sk-secret")

	w = doRequest(t, srv, "POST", "/settings", `{"llmUrl":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, srv, "POST", "/settings", `{"routerQualityWeight":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ctrl.UpdateSettingsFunc = func(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
		return domain.Settings{}, errors.New("readonly database")
	}
	w = doRequest(t, srv, "POST", "/settings", `{"llmUrl":"http://x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, ctrl.UpdateSettingsCalls(), 2)
}

func TestServer_ClassifyBatch(t *testing.T) {
	ctrl := &mocks.ControllerMock{
		RunClassificationBatchFunc: func(ctx context.Context, batchSize int) (domain.BatchResult, error) {
			return domain.BatchResult{Fetched: 3, Classified: 2, Failed: 1}, nil
		},
	}
	srv := New(Config{}, ctrl)

	w := doRequest(t, srv, "POST", "/api/v1/classify?batch=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fetched":3,"classified":2,"failed":1,"aborted":false}`, w.Body.String())
	assert.Equal(t, 3, ctrl.RunClassificationBatchCalls()[0].BatchSize)

	w = doRequest(t, srv, "POST", "/api/v1/classify", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, ctrl.RunClassificationBatchCalls()[1].BatchSize, "zero means configured batch size")

	w = doRequest(t, srv, "POST", "/api/v1/classify?batch=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, srv, "POST", "/api/v1/classify?batch=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, ctrl.RunClassificationBatchCalls(), 2)

	ctrl.RunClassificationBatchFunc = func(ctx context.Context, batchSize int) (domain.BatchResult, error) {
		return domain.BatchResult{}, errors.New("fetch unclassified articles: locked")
	}
	w = doRequest(t, srv, "POST", "/api/v1/classify", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_ServiceStatus(t *testing.T) {
	ctrl := &mocks.ControllerMock{
		StatusFunc: func() domain.RunStatus { return domain.RunStatus{IngestionActive: true} },
		CountsFunc: func(ctx context.Context) (domain.ArticleCounts, error) {
			return domain.ArticleCounts{Classified: 2, Unclassified: 3}, nil
		},
	}
	srv := New(Config{Version: "1.2.3"}, ctrl)

	w := doRequest(t, srv, "GET", "/api/v1/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["uptime"])
	assert.Equal(t, map[string]any{"is_polling": true, "is_classifying": false}, status["run"])
	assert.Equal(t, map[string]any{"classified": float64(2), "unclassified": float64(3)}, status["articles"])

	w = doRequest(t, srv, "GET", "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, "newspulse", w.Header().Get("App-Name"))
}

func TestServer_StaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o600))

	ctrl := &mocks.ControllerMock{StatusFunc: func() domain.RunStatus { return domain.RunStatus{} }}
	srv := New(Config{WebDir: dir}, ctrl)

	w := doRequest(t, srv, "GET", "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")

	w = doRequest(t, srv, "GET", "/polling_status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	srv = New(Config{}, ctrl)
	w = doRequest(t, srv, "GET", "/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctrl := &mocks.ControllerMock{StatusFunc: func() domain.RunStatus { return domain.RunStatus{} }}
	srv := New(Config{Listen: addr, Timeout: time.Second}, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
}
