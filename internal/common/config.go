package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Settings represents the application settings loaded from
// contentforge.toml. Content templates (what to write) live in their
// own YAML files under internal/config; this file only carries how the
// tool runs: logging, output locations, and OpenRouter request tuning.
type Settings struct {
	Logging    LoggingConfig    `toml:"logging"`
	Output     OutputConfig     `toml:"output"`
	OpenRouter OpenRouterConfig `toml:"openrouter"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// OutputConfig controls where and how generated documents are persisted
type OutputConfig struct {
	Dir         string `toml:"dir"`          // Directory for generated documents
	PreviewHTML bool   `toml:"preview_html"` // Also write a goldmark HTML preview for markdown output
}

// OpenRouterConfig tunes the completion client. MaxRetries and
// RetryDelay implement the linear backoff between attempts;
// RateLimit > 0 enables the optional outbound request limiter
// (0 keeps the original unbounded fan-out).
type OpenRouterConfig struct {
	Timeout    time.Duration `toml:"timeout"`     // Per-request timeout
	MaxRetries int           `toml:"max_retries"` // Attempts per task before giving up
	RetryDelay time.Duration `toml:"retry_delay"` // Base backoff; attempt k waits delay*k
	RateLimit  float64       `toml:"rate_limit"`  // Requests per second, 0 = unlimited
}

// NewDefaultSettings creates settings with default values.
// Technical parameters match the OpenRouter client defaults; only
// user-facing knobs should normally be touched in contentforge.toml.
func NewDefaultSettings() *Settings {
	return &Settings{
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Output: OutputConfig{
			Dir:         "./content",
			PreviewHTML: false,
		},
		OpenRouter: OpenRouterConfig{
			Timeout:    120 * time.Second,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
			RateLimit:  0,
		},
	}
}

// LoadSettings loads settings with priority: defaults -> file -> env.
// A missing file is not an error; defaults apply.
func LoadSettings(path string) (*Settings, error) {
	settings := NewDefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}

	applyEnvOverrides(settings)

	return settings, nil
}

// applyEnvOverrides applies CONTENTFORGE_* environment variable
// overrides on top of file settings.
func applyEnvOverrides(settings *Settings) {
	if level := os.Getenv("CONTENTFORGE_LOG_LEVEL"); level != "" {
		settings.Logging.Level = level
	}
	if dir := os.Getenv("CONTENTFORGE_OUTPUT_DIR"); dir != "" {
		settings.Output.Dir = dir
	}
	if timeout := os.Getenv("CONTENTFORGE_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			settings.OpenRouter.Timeout = d
		}
	}
	if retries := os.Getenv("CONTENTFORGE_MAX_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil && n > 0 {
			settings.OpenRouter.MaxRetries = n
		}
	}
	if limit := os.Getenv("CONTENTFORGE_RATE_LIMIT"); limit != "" {
		if f, err := strconv.ParseFloat(limit, 64); err == nil && f >= 0 {
			settings.OpenRouter.RateLimit = f
		}
	}
}
