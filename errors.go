package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a transcript extraction failure.
type ErrorKind string

const (
	// Locator resolution failures. Fatal to the whole call: without a
	// video ID neither extraction path can run.
	ErrInvalidLocator ErrorKind = "invalid_locator"
	ErrMissingVideoID ErrorKind = "missing_video_id"

	// Caption-download path failures. Always recovered by falling back
	// to the transcript API, never surfaced to the caller.
	ErrCaptionsUnavailable ErrorKind = "captions_unavailable"
	ErrProviderFailure     ErrorKind = "provider_failure"
	ErrEmptyTranscript     ErrorKind = "empty_transcript"

	// Transcript API failures. Surfaced only when the caption-download
	// path has already failed.
	ErrTranscriptsDisabled ErrorKind = "transcripts_disabled"
	ErrNoMatchingLanguage  ErrorKind = "no_matching_language"
	ErrVideoUnavailable    ErrorKind = "video_unavailable"
)

// ExtractError represents a transcript extraction failure with a classified kind
type ExtractError struct {
	Kind    ErrorKind
	VideoID string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (video %q): %v", e.Kind, e.VideoID, e.Err)
	}
	return fmt.Sprintf("%s (video %q)", e.Kind, e.VideoID)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

func extractErr(kind ErrorKind, videoID string, err error) *ExtractError {
	return &ExtractError{Kind: kind, VideoID: videoID, Err: err}
}

// KindOf returns the classified kind of err, or false if err carries none.
func KindOf(err error) (ErrorKind, bool) {
	var ee *ExtractError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}
