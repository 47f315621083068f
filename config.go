package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".youtube-summarizer"

// Fallbacks applied when the settings file leaves a field unset.
const (
	defaultMinLength       = 100
	defaultMinCaptionChars = 10
	defaultErrorMarker     = "Error"
	defaultLanguage        = "en"
)

// Embedded configuration files
//
//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/summary-prompt.md
var defaultSummaryPrompt string

// ConfigOverrides allows overriding embedded defaults with file paths
type ConfigOverrides struct {
	SettingsPath *string
	PromptPath   *string
}

// Settings represents the YAML configuration structure
type Settings struct {
	Language   string `yaml:"language"`
	Transcript struct {
		MinLength       int    `yaml:"min_length"`
		ErrorMarker     string `yaml:"error_marker"`
		MinCaptionChars int    `yaml:"min_caption_chars"`
	} `yaml:"transcript"`
	Providers struct {
		YtDlpPath        string `yaml:"ytdlp_path"`
		TranscriptAPIURL string `yaml:"transcript_api_url"`
		TranscriptAPIKey string `yaml:"transcript_api_key"`
	} `yaml:"providers"`
	Summarizer struct {
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"summarizer"`
}

// Config holds configuration and overrides
type Config struct {
	Settings  *Settings
	Overrides *ConfigOverrides
}

// NewConfig creates a new Config with settings and overrides
func NewConfig(overrides *ConfigOverrides) (*Config, error) {
	if err := ensureConfigExists(); err != nil {
		return nil, fmt.Errorf("ensuring config files exist: %w", err)
	}

	settingsPath := getConfigPath("settings.yaml")
	if overrides != nil && overrides.SettingsPath != nil {
		settingsPath = *overrides.SettingsPath
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &Config{
		Settings:  settings,
		Overrides: overrides,
	}, nil
}

// GetSummaryPrompt returns the summarizer system prompt (from override file or embedded)
func (c *Config) GetSummaryPrompt() string {
	if c.Overrides != nil && c.Overrides.PromptPath != nil {
		if content, err := os.ReadFile(*c.Overrides.PromptPath); err == nil {
			return string(content)
		}
	}
	return defaultSummaryPrompt
}

// loadSettings loads settings from path and applies fallbacks
func loadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.Language == "" {
		settings.Language = defaultLanguage
	}
	if settings.Transcript.MinLength <= 0 {
		log.Printf("Warning: transcript.min_length is %d, defaulting to %d", settings.Transcript.MinLength, defaultMinLength)
		settings.Transcript.MinLength = defaultMinLength
	}
	if settings.Transcript.MinCaptionChars <= 0 {
		settings.Transcript.MinCaptionChars = defaultMinCaptionChars
	}
	if settings.Transcript.ErrorMarker == "" {
		settings.Transcript.ErrorMarker = defaultErrorMarker
	}

	// Environment overrides for the transcript API service
	if url := os.Getenv("YOUTUBE_TRANSCRIPT_API_URL"); url != "" {
		settings.Providers.TranscriptAPIURL = url
	}
	if key := os.Getenv("YOUTUBE_TRANSCRIPT_API_KEY"); key != "" {
		settings.Providers.TranscriptAPIKey = key
	}

	return &settings, nil
}

// getConfigPath returns the path to a config file in .youtube-summarizer directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// ensureConfigExists creates the config directory and default files if they don't exist
func ensureConfigExists() error {
	if _, err := os.Stat(defaultConfigDir); os.IsNotExist(err) {
		if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	settingsPath := getConfigPath("settings.yaml")
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	return nil
}
