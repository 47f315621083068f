package main

import (
	"fmt"
	"log"

	"github.com/aktagon/llmkit/anthropic"
	"github.com/aktagon/llmkit/anthropic/types"
)

// Summarizer turns a transcript into a short point-form summary using an AI agent
type Summarizer struct {
	config *Config
	apiKey string
}

// NewSummarizer creates a Summarizer with the given API key and config
func NewSummarizer(apiKey string, config *Config) *Summarizer {
	return &Summarizer{config: config, apiKey: apiKey}
}

// Summarize generates a summary of the transcript text
func (s *Summarizer) Summarize(transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("transcript is empty")
	}

	log.Printf("→ Summarizing (%d characters)...", len(transcript))
	systemPrompt := s.config.GetSummaryPrompt()

	settings := types.RequestSettings{
		Model:       s.config.Settings.Summarizer.Model,
		MaxTokens:   s.config.Settings.Summarizer.MaxTokens,
		Temperature: s.config.Settings.Summarizer.Temperature,
	}
	response, err := anthropic.PromptWithSettings(systemPrompt, transcript, "", s.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("summarizer agent failed: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	log.Printf("✓ Summary completed")
	return response.Content[0].Text, nil
}
