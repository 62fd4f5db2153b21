package domain

// Settings are runtime-adjustable values used by ingestion and classification loops
type Settings struct {
	LLMURL              string   `json:"llmUrl"`
	LLMAPIKey           string   `json:"llmApiKey"`
	LLMModel            string   `json:"llmModel"`
	FinnhubAPIKey       string   `json:"finnhubApiKey"`
	RouterQualityWeight *float64 `json:"routerQualityWeight"`
}

// SettingsUpdate is a partial settings change, nil fields are left as is
type SettingsUpdate struct {
	LLMURL              *string  `json:"llmUrl"`
	LLMAPIKey           *string  `json:"llmApiKey"`
	LLMModel            *string  `json:"llmModel"`
	FinnhubAPIKey       *string  `json:"finnhubApiKey"`
	RouterQualityWeight *float64 `json:"routerQualityWeight"`
}

// Apply returns settings with non-nil fields of the update applied
func (s Settings) Apply(u SettingsUpdate) Settings {
	if u.LLMURL != nil {
		s.LLMURL = *u.LLMURL
	}
	if u.LLMAPIKey != nil {
		s.LLMAPIKey = *u.LLMAPIKey
	}
	if u.LLMModel != nil {
		s.LLMModel = *u.LLMModel
	}
	if u.FinnhubAPIKey != nil {
		s.FinnhubAPIKey = *u.FinnhubAPIKey
	}
	if u.RouterQualityWeight != nil {
		w := *u.RouterQualityWeight
		s.RouterQualityWeight = &w
	}
	return s
}

// Merge combines two updates, fields set in next win
func (u SettingsUpdate) Merge(next SettingsUpdate) SettingsUpdate {
	if next.LLMURL != nil {
		u.LLMURL = next.LLMURL
	}
	if next.LLMAPIKey != nil {
		u.LLMAPIKey = next.LLMAPIKey
	}
	if next.LLMModel != nil {
		u.LLMModel = next.LLMModel
	}
	if next.FinnhubAPIKey != nil {
		u.FinnhubAPIKey = next.FinnhubAPIKey
	}
	if next.RouterQualityWeight != nil {
		u.RouterQualityWeight = next.RouterQualityWeight
	}
	return u
}

// Masked returns a copy safe to show to users, secrets replaced with "***"
func (s Settings) Masked() Settings {
	if s.LLMAPIKey != "" {
		s.LLMAPIKey = "***"
	}
	if s.FinnhubAPIKey != "" {
		s.FinnhubAPIKey = "***"
	}
	return s
}

// SettingRuntimeOverrides is the settings table key holding persisted runtime overrides
const SettingRuntimeOverrides = "runtime_overrides"
