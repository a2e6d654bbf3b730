package sdg

import "regexp"

// The accepted video URL shapes, tried in order.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^?]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^?]+)`),
}

var videoHostPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com|youtu\.be)`)

// VideoID extracts the canonical video ID from input, which may be a watch,
// youtu.be, or embed URL. Input matching none of the known URL shapes is
// returned unchanged and treated as an already-canonical ID. VideoID is a
// pure mapping and is idempotent on its own output.
func VideoID(input string) string {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return input
}

// IsVideoURL reports whether input refers to the video platform rather than
// a local file.
func IsVideoURL(input string) bool { return videoHostPattern.MatchString(input) }
