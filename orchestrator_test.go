package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockExtractor returns a canned result and counts its calls
type mockExtractor struct {
	text  string
	err   error
	calls int
}

func (m *mockExtractor) Extract(videoID string) (string, error) {
	m.calls++
	return m.text, m.err
}

func newTestFetcher(primary, secondary Extractor) *TranscriptFetcher {
	return &TranscriptFetcher{
		primary:     primary,
		secondary:   secondary,
		minLength:   100,
		errorMarker: "Error",
	}
}

func TestGetTranscriptPrimarySucceeds(t *testing.T) {
	primary := &mockExtractor{text: strings.Repeat("real transcript content ", 10)}
	secondary := &mockExtractor{text: "should not be used"}

	fetcher := newTestFetcher(primary, secondary)

	text, err := fetcher.GetTranscript("test123")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}
	if text != primary.text {
		t.Errorf("GetTranscript() = %q, want primary output", text)
	}
	if secondary.calls != 0 {
		t.Errorf("Secondary was called %d times, want 0", secondary.calls)
	}
}

func TestGetTranscriptFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		primary *mockExtractor
	}{
		{"primary error", &mockExtractor{err: extractErr(ErrProviderFailure, "test123", nil)}},
		{"primary too short", &mockExtractor{text: "short"}},
		{"primary error marker", &mockExtractor{text: "Error: " + strings.Repeat("something went wrong ", 10)}},
		{"primary empty captions", &mockExtractor{err: extractErr(ErrEmptyTranscript, "test123", nil)}},
		{"primary captions unavailable", &mockExtractor{err: extractErr(ErrCaptionsUnavailable, "test123", nil)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			secondary := &mockExtractor{text: "Hi there"}
			fetcher := newTestFetcher(test.primary, secondary)

			text, err := fetcher.GetTranscript("test123")
			if err != nil {
				t.Fatalf("GetTranscript() error = %v", err)
			}
			if text != "Hi there" {
				t.Errorf("GetTranscript() = %q, want secondary output", text)
			}
			if secondary.calls != 1 {
				t.Errorf("Secondary was called %d times, want exactly 1", secondary.calls)
			}
		})
	}
}

func TestGetTranscriptBoundaryLength(t *testing.T) {
	// Exactly minLength characters is not enough; one more is
	atLimit := strings.Repeat("x", 100)
	overLimit := strings.Repeat("x", 101)

	secondary := &mockExtractor{text: "fallback"}
	fetcher := newTestFetcher(&mockExtractor{text: atLimit}, secondary)
	if text, _ := fetcher.GetTranscript("test123"); text != "fallback" {
		t.Errorf("Output of exactly minLength chars should be rejected, got %q", text)
	}

	fetcher = newTestFetcher(&mockExtractor{text: overLimit}, &mockExtractor{text: "fallback"})
	text, err := fetcher.GetTranscript("test123")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}
	if text != overLimit {
		t.Errorf("Output over minLength chars should be accepted, got %q", text)
	}
}

func TestGetTranscriptEmptyErrorMarker(t *testing.T) {
	// An unset marker must not reject every primary result: every string
	// has the empty prefix
	primary := &mockExtractor{text: strings.Repeat("real transcript content ", 11)}
	secondary := &mockExtractor{text: "fallback"}

	fetcher := &TranscriptFetcher{
		primary:     primary,
		secondary:   secondary,
		minLength:   100,
		errorMarker: "",
	}

	text, err := fetcher.GetTranscript("test123")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}
	if text != primary.text {
		t.Errorf("GetTranscript() = %q, want primary output", text)
	}
	if secondary.calls != 0 {
		t.Errorf("Secondary was called %d times, want 0", secondary.calls)
	}
}

func TestGetTranscriptBothFail(t *testing.T) {
	primary := &mockExtractor{err: extractErr(ErrProviderFailure, "test123", nil)}
	secondary := &mockExtractor{err: extractErr(ErrTranscriptsDisabled, "test123", nil)}

	fetcher := newTestFetcher(primary, secondary)

	_, err := fetcher.GetTranscript("test123")
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	// The secondary path failed last, so its kind must be surfaced
	kind, ok := KindOf(err)
	if !ok {
		t.Fatalf("Expected ExtractError, got %T", err)
	}
	if kind != ErrTranscriptsDisabled {
		t.Errorf("Expected kind %q, got %q", ErrTranscriptsDisabled, kind)
	}
}

func TestGetTranscriptWithMinimalSettingsFile(t *testing.T) {
	// A settings file that leaves the heuristics unset must still let a
	// good caption download through
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("language: en\ntranscript:\n  min_length: 100\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}

	primary := &mockExtractor{text: strings.Repeat("real transcript content ", 11)}
	secondary := &mockExtractor{text: "fallback"}
	fetcher := &TranscriptFetcher{
		primary:     primary,
		secondary:   secondary,
		minLength:   settings.Transcript.MinLength,
		errorMarker: settings.Transcript.ErrorMarker,
	}

	text, err := fetcher.GetTranscript("test123")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}
	if text != primary.text {
		t.Errorf("GetTranscript() = %q, want primary output", text)
	}
	if secondary.calls != 0 {
		t.Errorf("Secondary was called %d times, want 0", secondary.calls)
	}
}

func TestGetTranscriptStateless(t *testing.T) {
	primary := &mockExtractor{text: strings.Repeat("real transcript content ", 10)}
	fetcher := newTestFetcher(primary, &mockExtractor{})

	for i := 0; i < 3; i++ {
		if _, err := fetcher.GetTranscript("test123"); err != nil {
			t.Fatalf("GetTranscript() call %d error = %v", i+1, err)
		}
	}
	// No caching: every call goes back to the extractors
	if primary.calls != 3 {
		t.Errorf("Primary was called %d times, want 3", primary.calls)
	}
}
