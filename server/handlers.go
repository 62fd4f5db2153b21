package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/umputun/newspulse/pkg/domain"
)

// response messages used by the dashboard
const (
	msgClassificationStarted = "Classification started in the background"
	msgClassificationRunning = "Classification already in progress"
	msgClassificationsReset  = "Classifications reset."
	msgSettingsUpdated       = "Settings updated successfully"
)

// classifiedArticle is the full article record returned by /classified_articles
type classifiedArticle struct {
	ID                  int64    `json:"id"`
	ExternalID          string   `json:"finnhub_id"`
	Category            string   `json:"category"`
	Datetime            int64    `json:"datetime"`
	Headline            string   `json:"headline"`
	Summary             string   `json:"summary"`
	URL                 string   `json:"url"`
	Image               string   `json:"image"`
	Related             []string `json:"related"`
	Provider            string   `json:"provider"`
	MarketSentiment     *int     `json:"market_sentiment"`
	IndustryCategory    *string  `json:"industry_category"`
	ClassificationModel *string  `json:"classification_model"`
	IsClassified        bool     `json:"is_classified"`
}

// settingsResponse is settings with secrets masked, unset secrets are null
type settingsResponse struct {
	LLMURL              string   `json:"llmUrl"`
	LLMAPIKey           *string  `json:"llmApiKey"`
	LLMModel            string   `json:"llmModel"`
	FinnhubAPIKey       *string  `json:"finnhubApiKey"`
	RouterQualityWeight *float64 `json:"routerQualityWeight"`
}

// GET /polling_status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.ctrl.Status())
}

// GET /start_polling
func (s *Server) startIngestionHandler(w http.ResponseWriter, r *http.Request) {
	_, status := s.ctrl.StartIngestion()
	renderJSON(w, r, http.StatusOK, status)
}

// GET /stop_polling
func (s *Server) stopIngestionHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.ctrl.StopIngestion())
}

// GET /start_classifying
func (s *Server) startClassificationHandler(w http.ResponseWriter, r *http.Request) {
	started, _ := s.ctrl.StartClassification()
	if !started {
		renderJSON(w, r, http.StatusOK, rest.JSON{"status": msgClassificationRunning})
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"status": msgClassificationStarted})
}

// GET /stop_classifying
func (s *Server) stopClassificationHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.ctrl.StopClassification())
}

// GET /reset_classifications
func (s *Server) resetClassificationsHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.ctrl.ResetAllClassifications(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to reset classifications: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"message": msgClassificationsReset, "count": n})
}

// GET /articles?classified=true|false|all
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseArticleFilter(r.URL.Query().Get("classified"))
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	articles, err := s.ctrl.ListArticles(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if articles == nil {
		articles = []domain.ArticleView{}
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"articles": articles})
}

// GET /classified_articles
func (s *Server) classifiedArticlesHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := s.ctrl.ListClassified(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list classified articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	counts, err := s.ctrl.Counts(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]classifiedArticle, 0, len(articles))
	for _, a := range articles {
		res = append(res, classifiedArticle{
			ID:                  a.ID,
			ExternalID:          a.ExternalID,
			Category:            a.Category,
			Datetime:            a.Published,
			Headline:            a.Headline,
			Summary:             a.Summary,
			URL:                 a.URL,
			Image:               a.Image,
			Related:             a.Related,
			Provider:            a.Provider,
			MarketSentiment:     a.Sentiment,
			IndustryCategory:    a.IndustryCategory,
			ClassificationModel: a.ClassificationModel,
			IsClassified:        a.Classified,
		})
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"classified_articles": res, "unclassified_count": counts.Unclassified})
}

// GET /settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	masked := s.ctrl.Settings().Masked()
	res := settingsResponse{
		LLMURL:              masked.LLMURL,
		LLMModel:            masked.LLMModel,
		RouterQualityWeight: masked.RouterQualityWeight,
	}
	if masked.LLMAPIKey != "" {
		res.LLMAPIKey = &masked.LLMAPIKey
	}
	if masked.FinnhubAPIKey != "" {
		res.FinnhubAPIKey = &masked.FinnhubAPIKey
	}
	renderJSON(w, r, http.StatusOK, res)
}

// POST /settings, fields absent or null in the body are left unchanged
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings: %w", err), http.StatusBadRequest)
		return
	}
	if upd.RouterQualityWeight != nil && *upd.RouterQualityWeight < 0 {
		renderError(w, r, fmt.Errorf("routerQualityWeight must be non-negative"), http.StatusBadRequest)
		return
	}

	if _, err := s.ctrl.UpdateSettings(r.Context(), upd); err != nil {
		lgr.Printf("[ERROR] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"message": msgSettingsUpdated})
}

// GET /api/v1/status
func (s *Server) serviceStatusHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.ctrl.Counts(r.Context())
	if err != nil {
		lgr.Printf("[WARN] failed to count articles: %v", err)
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"status":   "ok",
		"version":  s.cfg.Version,
		"uptime":   time.Since(s.started).Round(time.Second).String(),
		"time":     time.Now().UTC(),
		"run":      s.ctrl.Status(),
		"articles": counts,
	})
}

// POST /api/v1/classify?batch=N runs one classification batch synchronously
func (s *Server) classifyBatchHandler(w http.ResponseWriter, r *http.Request) {
	batch := 0
	if v := r.URL.Query().Get("batch"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("invalid batch size %q", v), http.StatusBadRequest)
			return
		}
		batch = n
	}

	res, err := s.ctrl.RunClassificationBatch(r.Context(), batch)
	if err != nil {
		lgr.Printf("[ERROR] classification batch failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}
