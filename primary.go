package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CaptionDownloader downloads a caption track for a video into dir and
// returns the path of the downloaded caption file. Implementations report
// os.ErrNotExist when the provider has no caption track in the requested
// language.
type CaptionDownloader interface {
	Download(videoID, lang, dir string) (string, error)
}

// YtDlpDownloader shells out to the yt-dlp executable for caption downloads.
// Manual captions are preferred; yt-dlp falls back to auto-generated ones on
// its own because both subtitle flags are set.
type YtDlpDownloader struct {
	Binary string
}

func (d *YtDlpDownloader) Download(videoID, lang, dir string) (string, error) {
	binary := d.Binary
	if binary == "" {
		binary = "yt-dlp"
	}

	cmd := exec.Command(binary,
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", lang,
		"--sub-format", "vtt",
		"--output", filepath.Join(dir, "%(id)s.%(ext)s"),
		watchURL(videoID),
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w: %s", binary, err, strings.TrimSpace(stderr.String()))
	}

	return findCaptionFile(dir, videoID, lang)
}

// findCaptionFile locates the downloaded caption file. yt-dlp names it
// <id>.<lang>.vtt, but regional variants like en-US produce a different
// suffix, so look for the requested language first and only then settle
// for any .vtt in the directory.
func findCaptionFile(dir, videoID, lang string) (string, error) {
	exact := filepath.Join(dir, fmt.Sprintf("%s.%s.vtt", videoID, lang))
	if _, err := os.Stat(exact); err == nil {
		return exact, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%s.%s*.vtt", videoID, lang)))
	if err == nil && len(matches) > 0 {
		return matches[0], nil
	}

	matches, err = filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil || len(matches) == 0 {
		return "", os.ErrNotExist
	}
	return matches[0], nil
}

// PrimaryExtractor downloads a video's caption track and normalizes it into
// plain text. Caption files only ever live in a per-call temporary directory
// that is removed before Extract returns, on every exit path.
type PrimaryExtractor struct {
	downloader CaptionDownloader
	language   string
	minChars   int
}

// NewPrimaryExtractor creates a caption-download extractor from settings.
func NewPrimaryExtractor(settings *Settings) *PrimaryExtractor {
	return &PrimaryExtractor{
		downloader: &YtDlpDownloader{Binary: settings.Providers.YtDlpPath},
		language:   settings.Language,
		minChars:   settings.Transcript.MinCaptionChars,
	}
}

// Extract downloads and normalizes the caption track for videoID.
func (p *PrimaryExtractor) Extract(videoID string) (string, error) {
	dir, err := os.MkdirTemp("", "captions-")
	if err != nil {
		return "", extractErr(ErrProviderFailure, videoID, err)
	}
	defer os.RemoveAll(dir)

	path, err := p.downloader.Download(videoID, p.language, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", extractErr(ErrCaptionsUnavailable, videoID, fmt.Errorf("no %s caption track", p.language))
		}
		return "", extractErr(ErrProviderFailure, videoID, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", extractErr(ErrProviderFailure, videoID, err)
	}

	text := normalizeVTT(string(raw))
	if len(text) < p.minChars {
		return "", extractErr(ErrEmptyTranscript, videoID, fmt.Errorf("normalized captions are only %d characters", len(text)))
	}
	return text, nil
}
