package normalizer

import (
	"regexp"
	"strings"
)

// Caption renderers interleave per-word timing tags (<00:00:01.000>,
// <c>...</c>) and non-speech markers ([Music], [Laughter]) with the
// spoken text. Both carry no semantic content and are stripped wholesale.
var (
	tagRE     = regexp.MustCompile(`<[^>]*>`)
	bracketRE = regexp.MustCompile(`\[[^\]]*\]`)
)

// Normalize turns a messy caption or ASR transcript into clean
// line-oriented prose. Pure and deterministic: same input, same output,
// and normalizing already-normalized text is a no-op.
//
// Lines are trimmed, empty lines dropped, and duplicate lines removed
// with a first-occurrence-wins policy on exact post-trim equality. The
// global dedup collapses the caption "build-up" artifact where a
// timestamp-tagged line is followed by the same line without tags.
func Normalize(raw string) string {
	text := tagRE.ReplaceAllString(raw, "")
	text = bracketRE.ReplaceAllString(text, "")

	seen := make(map[string]struct{})
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// CollapseAdjacentDuplicates removes consecutive identical lines,
// keeping the first of each run. This is the caption-specific rolling
// repetition collapse; unlike Normalize it lets a line reappear later
// in the text.
func CollapseAdjacentDuplicates(lines []string) []string {
	out := make([]string, 0, len(lines))
	last := ""
	for _, line := range lines {
		if line == last && line != "" {
			continue
		}
		out = append(out, line)
		last = line
	}
	return out
}
