package captions

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/skillsenselab/ytcaptions/errors"
	"github.com/skillsenselab/ytcaptions/logger"
	"github.com/skillsenselab/ytcaptions/youtube"
)

// Service extracts and formats captions for a video URL. It is stateless:
// every call stands alone and nothing is cached between requests.
type Service struct {
	client *youtube.Client
	log    *logger.Logger
}

// NewService creates a caption extraction service.
func NewService(client *youtube.Client, log *logger.Logger) *Service {
	return &Service{
		client: client,
		log:    log.WithComponent("captions"),
	}
}

// ExtractCaptions resolves the video ID from rawURL, fetches the best English
// transcript, and formats it into paragraphs. Transcript lookup failures map
// to a captions-unavailable error; anything else surfaces as-is for the
// handler to translate.
func (s *Service) ExtractCaptions(ctx context.Context, rawURL string) (string, error) {
	videoID := youtube.ExtractVideoID(rawURL)
	if videoID == "" {
		return "", apperrors.InvalidInput(
			"Invalid YouTube URL",
			"The provided URL does not appear to be a valid YouTube video URL")
	}

	start := time.Now()

	list, err := s.client.ListTranscripts(ctx, videoID)
	if err != nil {
		if isUnavailable(err) {
			return "", apperrors.CaptionsUnavailable().WithCause(err)
		}
		return "", err
	}

	// Plain English first; any failure falls through to the regional variants.
	transcript, err := list.FindTranscript("en")
	if err != nil {
		transcript, err = list.FindTranscript("en-US", "en-GB")
	}
	if err != nil {
		s.log.Info("No English transcript", map[string]interface{}{
			"video_id":  videoID,
			"available": list.Languages(),
		})
		return "", apperrors.CaptionsUnavailable().WithCause(err)
	}

	segments, err := transcript.Fetch(ctx)
	if err != nil {
		return "", err
	}

	texters := make([]Texter, len(segments))
	for i, seg := range segments {
		texters[i] = Adapt(seg)
	}

	formatted := Format(texters)
	if formatted == "" {
		return "", apperrors.CaptionsUnavailable()
	}

	s.log.Debug("Captions extracted", map[string]interface{}{
		"video_id":    videoID,
		"language":    transcript.LanguageCode,
		"segments":    len(segments),
		"length":      len(formatted),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return formatted, nil
}

// isUnavailable reports whether err is one of the transcript lookup
// sentinels that the API treats as "captions unavailable".
func isUnavailable(err error) bool {
	return errors.Is(err, youtube.ErrNoTranscript) ||
		errors.Is(err, youtube.ErrTranscriptsDisabled) ||
		errors.Is(err, youtube.ErrVideoUnavailable)
}
