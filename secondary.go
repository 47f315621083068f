// secondary.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// TranscriptAPI is a client for the direct transcript service. The service
// lists the caption tracks of a video and serves their timed segments.
type TranscriptAPI struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewTranscriptAPI creates a transcript API client from settings.
func NewTranscriptAPI(settings *Settings) *TranscriptAPI {
	return &TranscriptAPI{
		BaseURL: settings.Providers.TranscriptAPIURL,
		APIKey:  settings.Providers.TranscriptAPIKey,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// apiError is the service's error envelope. The code field carries one of
// "transcripts_disabled", "video_unavailable" or "language_not_found".
type apiError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// ListTracks returns the caption tracks available for a video.
func (api *TranscriptAPI) ListTracks(videoID string) ([]TranscriptTrack, error) {
	var payload struct {
		Tracks []TranscriptTrack `json:"tracks"`
	}
	if err := api.get("/tracks", videoID, "", &payload); err != nil {
		return nil, err
	}
	return payload.Tracks, nil
}

// FetchSegments returns the ordered caption segments of a track.
func (api *TranscriptAPI) FetchSegments(videoID, lang string) ([]CaptionSegment, error) {
	var payload struct {
		Segments []CaptionSegment `json:"segments"`
	}
	if err := api.get("/transcript", videoID, lang, &payload); err != nil {
		return nil, err
	}
	return payload.Segments, nil
}

func (api *TranscriptAPI) get(path, videoID, lang string, out interface{}) error {
	req, err := http.NewRequest("GET", strings.TrimSuffix(api.BaseURL, "/")+path, nil)
	if err != nil {
		return extractErr(ErrProviderFailure, videoID, err)
	}

	q := req.URL.Query()
	q.Add("video_id", videoID)
	if lang != "" {
		q.Add("lang", lang)
	}
	if api.APIKey != "" {
		q.Add("api_key", api.APIKey)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := api.Client.Do(req)
	if err != nil {
		return extractErr(ErrProviderFailure, videoID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return extractErr(ErrProviderFailure, videoID, err)
	}
	debugLog("transcript API %s: status=%d", path, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return api.classify(videoID, resp.StatusCode, req.URL.String(), body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return extractErr(ErrProviderFailure, videoID, fmt.Errorf("decoding transcript API response: %w", err))
	}
	return nil
}

// classify maps the service's error envelope onto the extraction error kinds.
func (api *TranscriptAPI) classify(videoID string, status int, url string, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		switch apiErr.Code {
		case "transcripts_disabled":
			return extractErr(ErrTranscriptsDisabled, videoID, fmt.Errorf("%s", apiErr.Message))
		case "video_unavailable":
			return extractErr(ErrVideoUnavailable, videoID, fmt.Errorf("%s", apiErr.Message))
		case "language_not_found":
			return extractErr(ErrNoMatchingLanguage, videoID, fmt.Errorf("%s", apiErr.Message))
		}
	}
	return extractErr(ErrProviderFailure, videoID, &HTTPError{StatusCode: status, URL: url})
}

// SecondaryExtractor fetches a transcript from the direct transcript API:
// list the tracks, pick the one in the target language, fetch its segments
// and join their text. No filesystem use on this path.
type SecondaryExtractor struct {
	api      *TranscriptAPI
	language string
}

// NewSecondaryExtractor creates a transcript API extractor from settings.
func NewSecondaryExtractor(settings *Settings) *SecondaryExtractor {
	return &SecondaryExtractor{
		api:      NewTranscriptAPI(settings),
		language: settings.Language,
	}
}

// Extract fetches and joins the transcript segments for videoID.
func (s *SecondaryExtractor) Extract(videoID string) (string, error) {
	tracks, err := s.api.ListTracks(videoID)
	if err != nil {
		return "", err
	}

	found := false
	for _, track := range tracks {
		if track.LanguageCode == s.language {
			found = true
			break
		}
	}
	if !found {
		return "", extractErr(ErrNoMatchingLanguage, videoID, fmt.Errorf("no %q track among %d available", s.language, len(tracks)))
	}

	segments, err := s.api.FetchSegments(videoID, s.language)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		parts = append(parts, segment.Text)
	}
	return strings.Join(parts, " "), nil
}
