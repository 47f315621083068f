package main

import (
	"regexp"
	"strings"
)

// Patterns for the WEBVTT caption format: timing cues with optional trailing
// cue settings, inline markup tags, and the file header.
var (
	cueTimingRe     = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}[^\n]*`)
	markupTagRe     = regexp.MustCompile(`<[^>]+>`)
	vttHeaderRe     = regexp.MustCompile(`^WEBVTT[^\n]*\n\n?`)
	newlineRunRe    = regexp.MustCompile(`\n+`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// normalizeVTT converts a raw WEBVTT caption document into plain prose.
// The transforms run in a fixed order: drop timing cues, strip inline tags,
// drop the file header, then collapse newlines and remaining whitespace runs
// into single spaces. Applying it to already-normalized text is a no-op.
func normalizeVTT(raw string) string {
	text := cueTimingRe.ReplaceAllString(raw, "")
	text = markupTagRe.ReplaceAllString(text, "")
	text = vttHeaderRe.ReplaceAllString(text, "")
	text = newlineRunRe.ReplaceAllString(text, " ")
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
