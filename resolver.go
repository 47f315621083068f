package main

import (
	"fmt"
	"net/url"
	"strings"
)

// extractVideoID resolves a YouTube locator into a video ID. It accepts the
// canonical watch URL, the youtu.be short form, and the mobile subdomain.
func extractVideoID(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", extractErr(ErrInvalidLocator, "", err)
	}

	host := strings.ToLower(parsed.Hostname())
	switch host {
	case "youtu.be":
		// Short format: https://youtu.be/VIDEO_ID
		videoID := strings.TrimPrefix(parsed.Path, "/")
		if i := strings.IndexByte(videoID, '/'); i >= 0 {
			videoID = videoID[:i]
		}
		if videoID == "" {
			return "", extractErr(ErrMissingVideoID, "", fmt.Errorf("no video ID in short link %q", rawURL))
		}
		return videoID, nil

	case "youtube.com", "www.youtube.com", "m.youtube.com":
		// Long format: https://www.youtube.com/watch?v=VIDEO_ID
		videoID := parsed.Query().Get("v")
		if videoID == "" {
			return "", extractErr(ErrMissingVideoID, "", fmt.Errorf("no v parameter in %q", rawURL))
		}
		return videoID, nil
	}

	return "", extractErr(ErrInvalidLocator, "", fmt.Errorf("not a YouTube URL: %q", rawURL))
}

// watchURL rebuilds the canonical watch URL for a video ID.
func watchURL(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}

// thumbnailURL returns the default thumbnail for a video ID.
func thumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", videoID)
}
