package captions

import (
	"regexp"
	"strings"
)

// Placeholder is returned when segment text cannot be read in either
// supported shape.
const Placeholder = "Error: Unable to process captions from this video. Please try another video."

// sentencesPerParagraph is the fixed paragraph grouping size.
const sentencesPerParagraph = 5

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	missingSpace   = regexp.MustCompile(`\.([A-Z])`)
	sentenceBounds = regexp.MustCompile(`([.!?])\s+`)
)

// Format turns raw caption segments into readable text: segment texts are
// joined, whitespace is normalized, and sentences are grouped into
// paragraphs of five separated by blank lines. Empty input formats to "".
// If any segment fails to yield text, Placeholder is returned.
func Format(segments []Texter) string {
	if len(segments) == 0 {
		return ""
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text, ok := seg.CaptionText()
		if !ok {
			return Placeholder
		}
		texts = append(texts, text)
	}

	fullText := strings.Join(texts, " ")
	fullText = whitespaceRun.ReplaceAllString(fullText, " ")
	fullText = strings.TrimSpace(fullText)
	if fullText == "" {
		return ""
	}

	// Captions often run sentences together ("word.Next"); restore the space
	// so sentence splitting sees the boundary.
	fullText = missingSpace.ReplaceAllString(fullText, ". $1")

	// Mark sentence boundaries, then split on the marker. RE2 has no
	// lookbehind, so the terminator is kept via the capture group.
	marked := sentenceBounds.ReplaceAllString(fullText, "$1\n")
	rawSentences := strings.Split(marked, "\n")

	sentences := make([]string, 0, len(rawSentences))
	for _, s := range rawSentences {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	var paragraphs []string
	for i := 0; i < len(sentences); i += sentencesPerParagraph {
		end := i + sentencesPerParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		paragraphs = append(paragraphs, strings.Join(sentences[i:end], " "))
	}

	return strings.Join(paragraphs, "\n\n")
}

// FormatRaw adapts arbitrarily shaped segments and formats them.
func FormatRaw(segments []any) string {
	texters := make([]Texter, len(segments))
	for i, s := range segments {
		texters[i] = Adapt(s)
	}
	return Format(texters)
}
