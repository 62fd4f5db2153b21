package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/umputun/newspulse/pkg/domain"
)

const instructions = `You are a news analyst for a financial news company. Analyze the following news article and provide the data in the specified JSON format.

**Instructions:**

- Return ONLY the JSON object. Do not include any text before or after the JSON.
- The JSON should have the following keys:
  - "sentiment_score": An integer from -5 (negative) to 5 (positive), with 0 being completely neutral.
  - "company_category": The company category if any specific company is mentioned; otherwise, set to null.
  - "company_ticker": The company's stock ticker symbol if applicable; otherwise, set to null.
  - "reasoning": A brief explanation of your sentiment score.

**Example JSON format:**

{
    "sentiment_score": 3,
    "company_category": "Technology",
    "company_ticker": "AAPL",
    "reasoning": "The article mentions a new product launch which is expected to drive revenue growth."
}

**Article:** `

// promptArticle is the article as the model sees it
type promptArticle struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// BuildPrompt makes the classification prompt, instructions followed by the article as JSON
func BuildPrompt(a domain.Article) (string, error) {
	data, err := json.Marshal(promptArticle{
		ID:       a.ID,
		Category: a.Category,
		Datetime: a.Published,
		Headline: a.Headline,
		Image:    a.Image,
		Related:  strings.Join(a.Related, ","),
		Source:   a.Provider,
		Summary:  a.Summary,
		URL:      a.URL,
	})
	if err != nil {
		return "", fmt.Errorf("marshal article %d: %w", a.ID, err)
	}
	return instructions + string(data), nil
}
