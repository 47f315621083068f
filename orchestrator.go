package main

import "strings"

// TranscriptFetcher retrieves a plain-text transcript for a video, trying the
// caption-download path first and the direct transcript API second.
type TranscriptFetcher struct {
	primary   Extractor
	secondary Extractor

	// Success heuristics for the caption-download path: real content is
	// longer than minLength and never starts with the error marker some
	// providers put in the document body.
	minLength   int
	errorMarker string
}

// NewTranscriptFetcher wires both extraction paths from settings.
func NewTranscriptFetcher(settings *Settings) *TranscriptFetcher {
	return &TranscriptFetcher{
		primary:     NewPrimaryExtractor(settings),
		secondary:   NewSecondaryExtractor(settings),
		minLength:   settings.Transcript.MinLength,
		errorMarker: settings.Transcript.ErrorMarker,
	}
}

// GetTranscript returns the transcript for videoID.
//
// The caption download goes first because it handles a superset of videos:
// auto-generated captions stay downloadable even when the transcript API
// reports transcripts disabled. The API is the safety net, cheaper when it
// works but tried only after the download path fails. Each call is
// stateless; nothing is cached between invocations.
func (f *TranscriptFetcher) GetTranscript(videoID string) (string, error) {
	text, primaryErr := f.primary.Extract(videoID)
	if primaryErr == nil && f.looksLikeTranscript(text) {
		return text, nil
	}
	if primaryErr != nil {
		debugLog("caption download failed for %s: %v", videoID, primaryErr)
	} else {
		debugLog("caption download output for %s rejected (%d chars)", videoID, len(text))
	}

	text, secondaryErr := f.secondary.Extract(videoID)
	if secondaryErr != nil {
		return "", secondaryErr
	}
	return text, nil
}

func (f *TranscriptFetcher) looksLikeTranscript(text string) bool {
	if len(text) <= f.minLength {
		return false
	}
	// An empty marker would prefix-match everything
	return f.errorMarker == "" || !strings.HasPrefix(text, f.errorMarker)
}
