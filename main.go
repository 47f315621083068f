package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiKey         string
	transcriptOnly bool
	outputFile     string
	language       string
	settingsPath   string
	promptPath     string
	debugMode      bool
)

var rootCmd = &cobra.Command{
	Use:   "youtube-summarizer [video-url]",
	Short: "Summarize YouTube videos from their captions",
	Long: `Fetches a video transcript using yt-dlp caption downloads with a
transcript API fallback, then summarizes it using AI.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally
		if debugMode {
			SetDebugMode(true)
		}

		// Build config overrides
		overrides := &ConfigOverrides{}
		if settingsPath != "" {
			overrides.SettingsPath = &settingsPath
		}
		if promptPath != "" {
			overrides.PromptPath = &promptPath
		}

		config, err := NewConfig(overrides)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if language != "" {
			config.Settings.Language = language
		}

		videoID, err := extractVideoID(args[0])
		if err != nil {
			log.Fatalf("Invalid YouTube link: %v", err)
		}
		debugLog("resolved video %s (%s)", videoID, thumbnailURL(videoID))

		fetcher := NewTranscriptFetcher(config.Settings)
		transcript, err := fetcher.GetTranscript(videoID)
		if err != nil {
			log.Fatalf("Failed to fetch transcript: %v", err)
		}

		if transcriptOnly {
			writeResult(transcript)
			return
		}

		// Get API key
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			log.Fatal("API key required: use --api-key flag or ANTHROPIC_API_KEY environment variable")
		}

		summarizer := NewSummarizer(apiKey, config)
		summary, err := summarizer.Summarize(transcript)
		if err != nil {
			log.Fatalf("Failed to generate summary: %v", err)
		}

		writeResult(summary)
	},
}

func writeResult(text string) {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			log.Fatalf("Failed to write output file: %v", err)
		}
		return
	}
	fmt.Println(text)
}

func init() {
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key")
	rootCmd.Flags().BoolVar(&transcriptOnly, "transcript-only", false, "Print the transcript without summarizing")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&language, "lang", "", "Caption language code (overrides settings)")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to custom settings file")
	rootCmd.Flags().StringVar(&promptPath, "prompt", "", "Path to custom summary prompt file")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
