package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

// Segment is a single caption line with its timing.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// GetText returns the caption text for the segment.
func (s Segment) GetText() string { return s.Text }

// Transcript is one caption track of a video. Fetch retrieves its segments.
type Transcript struct {
	VideoID      string
	LanguageCode string
	LanguageName string
	IsGenerated  bool

	baseURL string
	client  *Client
}

// Fetch downloads and decodes the track's timedtext XML into segments.
func (t *Transcript) Fetch(ctx context.Context) ([]Segment, error) {
	body, err := t.client.get(ctx, t.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := html.UnescapeString(line.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}
	return segments, nil
}

// timedText mirrors YouTube's caption XML: <transcript><text start dur>…</text></transcript>.
type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

// TranscriptList holds every caption track advertised for a video.
type TranscriptList struct {
	VideoID string
	tracks  []*Transcript
}

// Languages returns the language codes of all available tracks.
func (l *TranscriptList) Languages() []string {
	codes := make([]string, 0, len(l.tracks))
	for _, t := range l.tracks {
		codes = append(codes, t.LanguageCode)
	}
	return codes
}

// FindTranscript returns the first track matching the given language codes,
// in preference order. For each language a manually created track wins over
// an auto-generated one. Returns ErrNoTranscript when nothing matches.
func (l *TranscriptList) FindTranscript(languageCodes ...string) (*Transcript, error) {
	for _, code := range languageCodes {
		for _, t := range l.tracks {
			if t.LanguageCode == code && !t.IsGenerated {
				return t, nil
			}
		}
	}
	for _, code := range languageCodes {
		for _, t := range l.tracks {
			if t.LanguageCode == code {
				return t, nil
			}
		}
	}
	return nil, ErrNoTranscript
}
