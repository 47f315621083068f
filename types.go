package main

// TranscriptTrack describes one caption track reported by the transcript API
type TranscriptTrack struct {
	LanguageCode  string `json:"language_code"`
	AutoGenerated bool   `json:"auto_generated"`
}

// CaptionSegment is one timed chunk of transcript text. Segments arrive in
// temporal order and are joined with single spaces to form the full text.
type CaptionSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Extractor produces a plain-text transcript for a video ID.
type Extractor interface {
	Extract(videoID string) (string, error)
}
