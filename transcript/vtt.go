package transcript

import (
	"strings"

	"second-brain/normalizer"
)

// ParseVTT extracts the spoken text lines from a WEBVTT caption file:
// header and metadata blocks, cue timing lines and cue identifiers are
// dropped, then consecutive identical lines are collapsed to one. The
// adjacent collapse removes the rolling-caption repetition the subtitle
// renderer produces; the global dedup happens later in the normalizer.
func ParseVTT(vtt string) string {
	var lines []string
	inNoteBlock := false

	for _, line := range strings.Split(vtt, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			inNoteBlock = false
			continue
		}
		if inNoteBlock {
			continue
		}
		if strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") {
			continue
		}
		if strings.HasPrefix(line, "NOTE") || strings.HasPrefix(line, "STYLE") || strings.HasPrefix(line, "REGION") {
			inNoteBlock = true
			continue
		}
		// Cue timing lines: "00:00:01.000 --> 00:00:04.000 align:start"
		if strings.Contains(line, "-->") {
			continue
		}
		if isCueIdentifier(line) {
			continue
		}

		lines = append(lines, line)
	}

	lines = normalizer.CollapseAdjacentDuplicates(lines)
	return strings.Join(lines, "\n")
}

// isCueIdentifier reports whether the line is a bare numeric cue index.
func isCueIdentifier(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
