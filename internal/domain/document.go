package domain

// Fallback canvas size used when dimensions cannot be derived from the
// source markup or the imported document.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

// lottieVersion is the Lottie schema version emitted in the "v" key.
const lottieVersion = "5.5.2"

// Dimensions is a resolved canvas size. Resolved once per conversion and
// immutable afterward.
type Dimensions struct {
	Width  int
	Height int
}

// DefaultDimensions returns the fallback canvas size.
func DefaultDimensions() Dimensions {
	return Dimensions{Width: DefaultWidth, Height: DefaultHeight}
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Document is an animation document: canvas, frame rate, playback range and
// an ordered layer stack. A Document is request-local and must not be shared
// across concurrent conversions.
type Document struct {
	Name      string
	Width     int
	Height    int
	FrameRate int
	InPoint   int
	OutPoint  int
	Layers    []Layer
}

// Size returns the document's own canvas size when both sides are set and
// nonzero, and the fallback default otherwise.
func (d *Document) Size() Dimensions {
	own := Dimensions{Width: d.Width, Height: d.Height}
	if own.Valid() {
		return own
	}
	return DefaultDimensions()
}

// ToMap serializes the document into a JSON-compatible nested mapping.
// The layers array always serializes, empty documents included.
func (d *Document) ToMap() map[string]any {
	layers := make([]any, len(d.Layers))
	for i, l := range d.Layers {
		layers[i] = l.ToMap()
	}
	return map[string]any{
		"v":      lottieVersion,
		"nm":     d.Name,
		"w":      d.Width,
		"h":      d.Height,
		"fr":     d.FrameRate,
		"ip":     d.InPoint,
		"op":     d.OutPoint,
		"assets": []any{},
		"layers": layers,
	}
}
