package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// Accepted YouTube URL shapes: full watch URLs and youtu.be short links.
var (
	watchURLPattern = regexp.MustCompile(`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`)
	shortURLPattern = regexp.MustCompile(`^https?://(www\.)?youtu\.be/[\w-]+`)
)

// ValidateURL reports whether raw looks like a supported YouTube video URL.
// Only youtube.com/watch?v= and youtu.be/ forms are accepted; extra query
// parameters after the video ID are fine.
func ValidateURL(raw string) bool {
	return watchURLPattern.MatchString(raw) || shortURLPattern.MatchString(raw)
}

// ExtractVideoID pulls the video ID out of a YouTube URL. It returns "" when
// no ID can be found. The URL is parsed structurally, so parameter order does
// not matter.
func ExtractVideoID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	case "youtube.com":
		return u.Query().Get("v")
	}
	return ""
}
