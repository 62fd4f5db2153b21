package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks that every field of the config is known to the schema and that required
// values are set.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	defs, _ := schema["$defs"].(map[string]any)
	if err := checkKnownFields(configMap, resolve(schema, defs), defs, ""); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkKnownFields walks config values and reports fields missing from schema properties
func checkKnownFields(value map[string]any, def map[string]any, defs map[string]any, path string) error {
	props, _ := def["properties"].(map[string]any)
	if props == nil {
		return nil
	}

	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop, ok := props[k].(map[string]any)
		if !ok {
			return fmt.Errorf("unknown field %s", strings.TrimPrefix(path+"."+k, "."))
		}
		nested, ok := value[k].(map[string]any)
		if !ok {
			continue
		}
		if err := checkKnownFields(nested, resolve(prop, defs), defs, path+"."+k); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows local "#/$defs/Name" reference
func resolve(def map[string]any, defs map[string]any) map[string]any {
	ref, ok := def["$ref"].(string)
	if !ok {
		return def
	}
	if target, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any); ok {
		return target
	}
	return def
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}

	// check feed config
	if cfg.Feed.Provider == ProviderFinnhub && cfg.Feed.BaseURL == "" {
		return fmt.Errorf("feed.base_url is required for finnhub provider")
	}
	if len(cfg.Feed.Categories) == 0 {
		return fmt.Errorf("feed.categories is required")
	}

	// check llm config
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
