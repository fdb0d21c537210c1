package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// resolveConfig merges the optional config file under the given flag values.
// Flag values win over file values.
func resolveConfig(flags config.Config) (config.Config, error) {
	if configFile == "" {
		if err := flags.Validate(); err != nil {
			return flags, err
		}
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(configFile)
	if err != nil {
		return flags, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// buildEngine constructs a match engine from the resolved configuration.
// With no API key available the engine runs without a model client and
// every analysis uses the rule-based path.
func buildEngine(cfg config.Config) (*matching.Engine, func(), error) {
	opts := []matching.Option{}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, matching.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}

	client, err := newModelClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {}
	if client != nil {
		opts = append(opts, matching.WithClient(client))
		cleanup = func() { _ = client.Close() }
	}

	return matching.NewEngine(opts...), cleanup, nil
}

// newModelClient builds the provider client named by the config, reading
// the API key from the provider's conventional environment variable when
// the config carries none. A missing key is not an error; it selects the
// rule-based path.
func newModelClient(cfg config.Config) (llm.Client, error) {
	modelCfg := llm.DefaultGeminiConfig()
	if llm.Provider(cfg.Provider) == llm.ProviderOpenAI {
		modelCfg = llm.DefaultOpenAIConfig()
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		switch modelCfg.Provider {
		case llm.ProviderOpenAI:
			apiKey = os.Getenv("OPENAI_API_KEY")
		default:
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if apiKey == "" {
		return nil, nil
	}

	client, err := llm.NewClient(context.Background(), modelCfg, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", modelCfg.Provider, err)
	}
	return client, nil
}

// loadResume reads and validates a resume JSON file.
func loadResume(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume types.ResumeRecord
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}
	return &resume, nil
}

// writeJSON marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateAgainstSchema checks the written JSON against a repo schema.
// Schema lookup or load problems only warn; a real validation failure is
// returned as an error.
func validateAgainstSchema(schemaRelPath, jsonPath string) error {
	if jsonPath == "" {
		return nil
	}
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}
