package transcript

import (
	"regexp"

	"github.com/google/uuid"
)

// Known video URL shapes carrying a platform-assigned id.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=)([\w-]{6,})`),
	regexp.MustCompile(`(?:youtu\.be/)([\w-]{6,})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([\w-]{6,})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([\w-]{6,})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([\w-]{6,})`),
}

// VideoID extracts the platform-assigned video id from a URL of a known
// shape. The second return is false when the URL does not match any
// known pattern.
func VideoID(url string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); len(m) == 2 {
			return m[1], true
		}
	}
	return "", false
}

// SafeName returns a deterministic, collision-resistant identifier for
// the video URL, used for temp-file naming and as the persisted doc id.
// URLs without a recognizable id fall back to a random unique token.
func SafeName(url string) string {
	if id, ok := VideoID(url); ok {
		return id
	}
	return "video_" + uuid.NewString()
}
