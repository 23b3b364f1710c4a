package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/skillsenselab/ytcaptions/httpclient"
	"github.com/skillsenselab/ytcaptions/logger"
	"github.com/skillsenselab/ytcaptions/validation"
)

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// playerResponseMarker marks the start of the player response JSON
	// embedded in watch page HTML.
	playerResponseMarker = "ytInitialPlayerResponse = "
)

// DefaultLanguages is the caption language preference order: plain English
// first, then the regional variants.
func DefaultLanguages() []string {
	return []string{"en", "en-US", "en-GB"}
}

// Config holds transcript client configuration.
type Config struct {
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent      string        `yaml:"user_agent" mapstructure:"user_agent"`
	AcceptLanguage string        `yaml:"accept_language" mapstructure:"accept_language"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.AcceptLanguage == "" {
		c.AcceptLanguage = "en-US,en;q=0.9"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	v := validation.New().
		Pattern("youtube.base_url", c.BaseURL, `^https?://`).
		Custom(c.Timeout >= 0, "youtube.timeout",
			fmt.Sprintf("must be non-negative (got: %s)", c.Timeout))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Client lists and fetches caption tracks by scraping the watch page's
// embedded player response. No API key is required.
type Client struct {
	http *httpclient.Client
	log  *logger.Logger
}

// NewClient creates a transcript client.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"User-Agent":      cfg.UserAgent,
			"Accept-Language": cfg.AcceptLanguage,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http: hc,
		log:  log.WithComponent("youtube"),
	}, nil
}

// ListTranscripts fetches the watch page for videoID and returns the caption
// tracks it advertises. It distinguishes unavailable videos, disabled
// captions, and an empty track list via the package sentinel errors.
func (c *Client) ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error) {
	resp, err := c.http.Get(ctx, "/watch", httpclient.WithQueryParam("v", videoID))
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	pr, err := extractPlayerResponse(resp.Body)
	if err != nil {
		return nil, err
	}

	if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Status == "ERROR" {
		c.log.Warn("Video unavailable", map[string]interface{}{
			"video_id": videoID,
			"reason":   pr.PlayabilityStatus.Reason,
		})
		return nil, ErrVideoUnavailable
	}
	if pr.Captions == nil {
		return nil, ErrTranscriptsDisabled
	}

	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrNoTranscript
	}

	list := &TranscriptList{VideoID: videoID}
	for _, tr := range tracks {
		list.tracks = append(list.tracks, &Transcript{
			VideoID:      videoID,
			LanguageCode: tr.LanguageCode,
			LanguageName: tr.Name.SimpleText,
			IsGenerated:  tr.Kind == "asr",
			baseURL:      tr.BaseURL,
			client:       c,
		})
	}

	c.log.Debug("Caption tracks listed", map[string]interface{}{
		"video_id":  videoID,
		"languages": list.Languages(),
	})
	return list, nil
}

// get fetches an absolute URL (caption track base URLs are absolute).
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.http.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// playerResponse is the subset of ytInitialPlayerResponse we care about.
type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
}

// extractPlayerResponse locates and decodes the embedded player response JSON
// from watch page HTML.
func extractPlayerResponse(page []byte) (*playerResponse, error) {
	idx := strings.Index(string(page), playerResponseMarker)
	if idx < 0 {
		return nil, ErrVideoUnavailable
	}

	jsonData := extractJSON(page[idx+len(playerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("youtube: malformed player response JSON")
	}

	var pr playerResponse
	if err := json.Unmarshal(jsonData, &pr); err != nil {
		return nil, fmt.Errorf("youtube: decode player response: %w", err)
	}
	return &pr, nil
}

// extractJSON returns the first balanced JSON object at the start of data,
// tracking string literals and escapes so braces inside strings don't count.
func extractJSON(data []byte) []byte {
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i, b := range data {
		if escaped {
			escaped = false
			continue
		}
		switch b {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return data[:i+1]
				}
			}
		}
	}
	return nil
}
