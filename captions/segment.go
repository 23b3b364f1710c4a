package captions

// Texter yields the caption text of a single segment. Segments arrive in two
// shapes depending on the upstream decoder: mappings keyed by "text" and
// structs carrying a text field. One adapter per shape keeps the formatter
// free of reflection.
type Texter interface {
	CaptionText() (string, bool)
}

// MapSegment adapts decoded-JSON segments shaped as a map with a "text" key.
type MapSegment map[string]any

// CaptionText returns the "text" value if present and a string.
func (m MapSegment) CaptionText() (string, bool) {
	v, ok := m["text"]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// textGetter is the struct-shaped segment contract (youtube.Segment and
// friends expose their text through GetText).
type textGetter interface {
	GetText() string
}

// getterSegment adapts any value with a GetText method.
type getterSegment struct {
	inner textGetter
}

func (g getterSegment) CaptionText() (string, bool) {
	return g.inner.GetText(), true
}

// invalidSegment is the adapter of last resort: it never yields text, which
// makes the formatter fall back to its placeholder.
type invalidSegment struct{}

func (invalidSegment) CaptionText() (string, bool) { return "", false }

// Adapt selects the right Texter adapter for a raw segment value. The choice
// is made once here, at the decode boundary.
func Adapt(v any) Texter {
	switch s := v.(type) {
	case Texter:
		return s
	case map[string]any:
		return MapSegment(s)
	case textGetter:
		return getterSegment{inner: s}
	default:
		return invalidSegment{}
	}
}
