// Package config loads and validates content configuration templates.
// The generation core consumes the validated ContentConfig it
// produces; this package owns all file and environment access for it.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/anilsoylu/contentforge/internal/models"
)

const (
	// DefaultConfigPath is the content template read when no -config
	// flag is given.
	DefaultConfigPath = "config.yaml"

	// DefaultModel is used when the template names no model.
	DefaultModel = "openai/gpt-4o-mini"

	// DefaultLanguage is the content language fallback.
	DefaultLanguage = "English"

	// apiKeyEnvVar names the OpenRouter credential variable.
	apiKeyEnvVar = "OPEN_ROUTER_API_KEY"

	// defaultSectionWords applies to sections that give no word target.
	defaultSectionWords = 100
)

// DefaultSystemPrompt is the system directive sent with every
// completion request unless the template overrides it. It is an
// explicit default applied here by the loader, never ambient state.
const DefaultSystemPrompt = `You are an experienced SEO content writer. You create content that meets Google E-E-A-T standards and provides value to readers.

CORE PRINCIPLES:
- Every sentence should provide concrete value to the reader
- Avoid filler phrases ("as everyone knows", "undoubtedly", "it goes without saying")
- Include concrete examples, numerical data, and practical tips
- Use natural keyword placement, avoid keyword stuffing
- Avoid exaggerated claims ("the best", "absolutely", "must")

FORMAT RULES:
- Only produce content in the requested format
- Do not add explanations, comments, or meta information
- Do not use HTML tags (unless specified otherwise)`

// ErrConfigNotFound indicates the content template file is missing
var ErrConfigNotFound = errors.New("config file not found")

// LoadAPIKey loads the OpenRouter API key, reading a .env file when
// one is present.
func LoadAPIKey() (string, error) {
	// Missing .env is fine; the variable may come from the environment
	_ = godotenv.Load()

	apiKey := os.Getenv(apiKeyEnvVar)
	if apiKey == "" {
		return "", fmt.Errorf("%s not found! Check your .env file", apiKeyEnvVar)
	}
	return apiKey, nil
}

// Load reads a YAML content template, applies defaults, and validates
// the result.
func Load(path string) (*models.ContentConfig, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg models.ContentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills the optional fields the template may omit
func applyDefaults(cfg *models.ContentConfig) {
	for i := range cfg.Sections {
		if cfg.Sections[i].Words <= 0 {
			cfg.Sections[i].Words = defaultSectionWords
		}
	}

	if cfg.Table.Enabled && len(cfg.Table.Columns) == 0 {
		cfg.Table.Columns = models.DefaultTableColumns()
	}
	for i := range cfg.Table.Columns {
		if cfg.Table.Columns[i].Type == "" {
			cfg.Table.Columns[i].Type = models.ColumnTypeText
		}
	}

	if cfg.Placeholders.ItemPrefix == "" {
		cfg.Placeholders.ItemPrefix = "ITEM"
	}
	if cfg.Placeholders.ValuePrefix == "" {
		cfg.Placeholders.ValuePrefix = "VALUE"
	}

	if cfg.SEO.KeywordDensity <= 0 {
		cfg.SEO.KeywordDensity = 2.0
	}
	if cfg.SEO.Tone == "" {
		cfg.SEO.Tone = "informative"
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Output == "" {
		cfg.Output = models.OutputFormatHTML
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
}

// Validate checks a content configuration against the struct rules:
// required title and section headings, positive word targets, output
// restricted to html|md.
func Validate(cfg *models.ContentConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid content config: %w", err)
	}
	return nil
}

// SaveDefault writes an example content template to path
func SaveDefault(path string) error {
	if path == "" {
		path = DefaultConfigPath
	}

	example := models.ContentConfig{
		Title:           "Example Title - Write Your Own Topic",
		IntroWords:      60,
		ConclusionWords: 50,
		Sections: []models.Section{
			{Heading: "First Section Heading", Words: 120},
			{Heading: "Second Section Heading", Words: 120},
			{Heading: "Third Section Heading", Words: 100},
		},
		Table: models.TableConfig{
			Enabled: true,
			Rows:    5,
			Columns: models.DefaultTableColumns(),
		},
		Model: DefaultModel,
		Placeholders: models.PlaceholderConfig{
			ItemPrefix:  "ITEM",
			ValuePrefix: "VALUE",
		},
		SEO: models.SEOConfig{
			PrimaryKeyword:    "main keyword",
			SecondaryKeywords: []string{"secondary keyword 1", "secondary keyword 2"},
			KeywordDensity:    2.0,
			Tone:              "informative",
			TargetAudience:    "Define your target audience",
		},
		Site: models.SiteConfig{
			Name:   "MySite",
			URL:    "https://example.com",
			Author: "Content Team",
		},
		Output:   models.OutputFormatHTML,
		Language: DefaultLanguage,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to encode example config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write example config %s: %w", path, err)
	}

	return nil
}
