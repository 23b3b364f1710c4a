package youtube

import "errors"

// Sentinel errors for transcript lookup failures. Callers are expected to
// match these with errors.Is and translate them to API errors.
var (
	// ErrNoTranscript indicates no caption track exists for any of the
	// requested languages.
	ErrNoTranscript = errors.New("youtube: no transcript found for requested languages")

	// ErrTranscriptsDisabled indicates the video exists but has captions
	// turned off entirely.
	ErrTranscriptsDisabled = errors.New("youtube: transcripts are disabled for this video")

	// ErrVideoUnavailable indicates the video cannot be played at all
	// (private, deleted, or region-locked).
	ErrVideoUnavailable = errors.New("youtube: video is unavailable")
)
