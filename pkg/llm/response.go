package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/umputun/newspulse/pkg/domain"
)

// sentiment range accepted from the model, values outside are clamped
const (
	MinSentiment = -5
	MaxSentiment = 5
)

// ErrNotJSONObject returned when the model reply is not a single JSON object
var ErrNotJSONObject = errors.New("response is not a json object")

// ParseResponse decodes model reply into classification. Missing sentiment_score means neutral (0),
// missing company_category means domain.NoCategory while explicit null means no category.
// Model field of the result is left empty, the caller sets the reported model.
func ParseResponse(content string) (domain.Classification, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return domain.Classification{}, ErrNotJSONObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return domain.Classification{}, fmt.Errorf("failed to parse json object response: %w", err)
	}

	res := domain.Classification{}

	if raw, ok := fields["sentiment_score"]; ok && !isNull(raw) {
		var score float64
		if err := json.Unmarshal(raw, &score); err != nil {
			return domain.Classification{}, fmt.Errorf("invalid sentiment_score %s: %w", raw, err)
		}
		if score != math.Trunc(score) {
			return domain.Classification{}, fmt.Errorf("sentiment_score %s is not an integer", raw)
		}
		res.Sentiment = clamp(score)
	}

	noCategory := domain.NoCategory
	res.IndustryCategory = &noCategory
	if raw, ok := fields["company_category"]; ok {
		var category *string
		if err := json.Unmarshal(raw, &category); err != nil {
			return domain.Classification{}, fmt.Errorf("invalid company_category %s: %w", raw, err)
		}
		res.IndustryCategory = category
	}

	// ticker and reasoning are informational, a malformed value is ignored
	if raw, ok := fields["company_ticker"]; ok {
		var ticker *string
		if err := json.Unmarshal(raw, &ticker); err == nil {
			res.Ticker = ticker
		}
	}
	if raw, ok := fields["reasoning"]; ok {
		_ = json.Unmarshal(raw, &res.Reasoning)
	}

	return res, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func clamp(score float64) int {
	switch {
	case score < MinSentiment:
		return MinSentiment
	case score > MaxSentiment:
		return MaxSentiment
	}
	return int(score)
}
